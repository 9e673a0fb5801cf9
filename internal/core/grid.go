package core

import "fmt"

// Grid stores a rows x cols matrix of boolean cells in row-major order. The
// dimensions are fixed at creation and neighbour lookups wrap at the edges.
type Grid struct {
	rows, cols int
	data       []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, ErrInvalidDimension)
	}
	return &Grid{rows: rows, cols: cols, data: make([]bool, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Index returns the linear slice index for row i and column j.
func (g *Grid) Index(i, j int) int { return i*g.cols + j }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(i, j int) (int, int) {
	i = (i%g.rows + g.rows) % g.rows
	j = (j%g.cols + g.cols) % g.cols
	return i, j
}

// Alive reports the state of cell (i, j). Coordinates outside the grid wrap.
func (g *Grid) Alive(i, j int) bool {
	i, j = g.Wrap(i, j)
	return g.data[g.Index(i, j)]
}

// Set assigns the state of cell (i, j). It is meant for seeding and editing
// between generations; stepping never mutates a grid.
func (g *Grid) Set(i, j int, alive bool) {
	i, j = g.Wrap(i, j)
	g.data[g.Index(i, j)] = alive
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]bool, len(g.data))
	copy(data, g.data)
	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// FillBinary writes the grid into buf as 0/1 bytes. buf must hold at least
// Rows()*Cols() entries.
func (g *Grid) FillBinary(buf []uint8) {
	for i, alive := range g.data {
		if alive {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// String renders the grid with '#' for live cells and '.' for dead ones.
func (g *Grid) String() string {
	out := make([]byte, 0, g.rows*(g.cols+1))
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if g.data[g.Index(i, j)] {
				out = append(out, '#')
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
