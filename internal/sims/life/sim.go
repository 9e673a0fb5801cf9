package life

import (
	"image/color"

	"gridsim/internal/core"
)

// Life hosts a running Game of Life: it owns the current generation and
// replaces it wholesale on every Step.
type Life struct {
	cfg        Config
	grid       *core.Grid
	generation int
	display    []uint8
}

// New returns a Life host with an empty grid. Invalid dimensions fall back to
// the defaults.
func New(cfg Config) *Life {
	def := DefaultConfig()
	if cfg.Rows <= 0 {
		cfg.Rows = def.Rows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = def.Cols
	}
	grid, _ := CreateEmpty(cfg.Rows, cfg.Cols)
	l := &Life{cfg: cfg, grid: grid, display: make([]uint8, cfg.Rows*cfg.Cols)}
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions, columns as width.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Cols, H: l.cfg.Rows} }

// Grid returns the current generation. Callers must not mutate it.
func (l *Life) Grid() *core.Grid { return l.grid }

// SetGrid replaces the current generation. Grids of a different size are ignored.
func (l *Life) SetGrid(g *core.Grid) bool {
	if g == nil || g.Rows() != l.cfg.Rows || g.Cols() != l.cfg.Cols {
		return false
	}
	l.grid = g
	l.generation = 0
	return true
}

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() int { return l.generation }

// Cells exposes the current grid as a 0/1 buffer.
func (l *Life) Cells() []uint8 {
	l.grid.FillBinary(l.display)
	return l.display
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	grid, err := Randomize(l.cfg.Rows, l.cfg.Cols, l.cfg.AliveProbability, core.NewRNG(seed))
	if err != nil {
		return
	}
	l.grid = grid
	l.generation = 0
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.grid, _ = CreateEmpty(l.cfg.Rows, l.cfg.Cols)
	l.generation = 0
}

// Toggle flips cell (i, j) on a copy of the current grid.
func (l *Life) Toggle(i, j int) {
	next := l.grid.Clone()
	next.Set(i, j, !next.Alive(i, j))
	l.grid = next
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid = Step(l.grid)
	l.generation++
}

// Palette maps dead and live cells to the display colours.
func (l *Life) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
		{R: 0x2d, G: 0xd4, B: 0xbf, A: 0xff},
	}
}

// Parameters reports the configuration and live statistics.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", l.cfg.Rows),
				core.IntParam("cols", "Cols", l.cfg.Cols),
				core.FloatParam("alive", "Alive probability", l.cfg.AliveProbability),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.generation),
				core.IntParam("population", "Population", Population(l.grid)),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
