// Package montecarlo estimates pi by sampling points in the unit square and
// counting those that land inside the inscribed circle.
package montecarlo

import (
	"time"

	"gridsim/internal/core"
)

// Point is a sample in the unit square.
type Point struct {
	X, Y   float64
	Inside bool
}

// InCircle reports whether (x, y) lies in the circle of radius 0.5 centred on
// (0.5, 0.5).
func InCircle(x, y float64) bool {
	dx := x - 0.5
	dy := y - 0.5
	return dx*dx+dy*dy <= 0.25
}

// Estimator accumulates samples.
type Estimator struct {
	points []Point
	inside int
}

// Add draws n new points from src. A nil src falls back to a time-seeded RNG.
// It returns the points that were added.
func (e *Estimator) Add(n int, src core.Float64Source) []Point {
	if n <= 0 {
		return nil
	}
	if src == nil {
		src = core.NewRNG(time.Now().UnixNano())
	}
	start := len(e.points)
	for i := 0; i < n; i++ {
		x := src.Float64()
		y := src.Float64()
		p := Point{X: x, Y: y, Inside: InCircle(x, y)}
		if p.Inside {
			e.inside++
		}
		e.points = append(e.points, p)
	}
	return e.points[start:]
}

// Total returns the number of samples.
func (e *Estimator) Total() int { return len(e.points) }

// Inside returns the number of samples inside the circle.
func (e *Estimator) Inside() int { return e.inside }

// Estimate returns 4 * inside / total, or 0 before any sample is drawn.
func (e *Estimator) Estimate() float64 {
	if len(e.points) == 0 {
		return 0
	}
	return 4 * float64(e.inside) / float64(len(e.points))
}

// Reset discards all samples.
func (e *Estimator) Reset() {
	e.points = nil
	e.inside = 0
}
