package core

import "math/rand/v2"

// Float64Source is the random source consumed by the engines. *RNG and
// *rand.Rand both satisfy it, so tests can inject a deterministic sequence.
type Float64Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a pseudo-random number in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}
