// Package life implements Conway's Game of Life on a toroidal grid.
//
// The engine functions are pure: Step reads one generation and returns a
// freshly allocated successor, so a renderer may keep reading the current
// grid while the next one is computed.
package life

import (
	"time"

	"gridsim/internal/core"
)

// DefaultAliveProbability is the share of live cells produced by Randomize
// when the caller does not override it.
const DefaultAliveProbability = 0.25

// CreateEmpty returns a rows x cols grid with every cell dead.
func CreateEmpty(rows, cols int) (*core.Grid, error) {
	return core.NewGrid(rows, cols)
}

// Randomize returns a grid where each cell is independently alive with the
// given probability, clamped to [0, 1]. A probability of 1 fills the grid
// and 0 leaves it empty. A nil src falls back to a time-seeded RNG.
func Randomize(rows, cols int, aliveProbability float64, src core.Float64Source) (*core.Grid, error) {
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = core.NewRNG(time.Now().UnixNano())
	}
	p := min(max(aliveProbability, 0), 1)
	threshold := 1 - p
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := src.Float64(); p == 1 || v > threshold {
				g.Set(i, j, true)
			}
		}
	}
	return g, nil
}

// Rule applies Conway's rule to a single cell.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// LiveNeighbors counts the live cells among the eight toroidal neighbours of (i, j).
func LiveNeighbors(g *core.Grid, i, j int) int {
	rows, cols := g.Rows(), g.Cols()
	neighbors := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ni := (i + dx + rows) % rows
			nj := (j + dy + cols) % cols
			if g.Alive(ni, nj) {
				neighbors++
			}
		}
	}
	return neighbors
}

// Step advances the grid by one generation and returns the new grid. The
// input grid is never modified.
func Step(g *core.Grid) *core.Grid {
	rows, cols := g.Rows(), g.Cols()
	next, _ := core.NewGrid(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if Rule(g.Alive(i, j), LiveNeighbors(g, i, j)) {
				next.Set(i, j, true)
			}
		}
	}
	return next
}

// Population returns the number of live cells.
func Population(g *core.Grid) int {
	total := 0
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			if g.Alive(i, j) {
				total++
			}
		}
	}
	return total
}
