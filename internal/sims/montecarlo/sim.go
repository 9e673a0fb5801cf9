package montecarlo

import (
	"image/color"
	"math"

	"gridsim/internal/core"
)

const (
	cellEmpty   = 0
	cellInside  = 1
	cellOutside = 2
	cellCircle  = 3
)

// Sim rasterizes the estimator for the window and headless drivers. Every
// Step draws one batch of points.
type Sim struct {
	cfg   Config
	est   Estimator
	rng   *core.RNG
	cells []uint8
}

// New creates a Monte Carlo sim.
func New(cfg Config) *Sim {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Batch <= 0 {
		cfg.Batch = def.Batch
	}
	s := &Sim{cfg: cfg, cells: make([]uint8, cfg.Width*cfg.Height)}
	s.Reset(0)
	return s
}

// Name identifies the simulation.
func (s *Sim) Name() string { return "montecarlo" }

// Size returns the raster dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the raster buffer.
func (s *Sim) Cells() []uint8 { return s.cells }

// Estimator exposes the underlying sample set.
func (s *Sim) Estimator() *Estimator { return &s.est }

// Reset clears all samples and reseeds the point source.
func (s *Sim) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.est.Reset()
	for i := range s.cells {
		s.cells[i] = cellEmpty
	}
	s.drawCircle()
}

// Step draws one batch of points and plots them.
func (s *Sim) Step() {
	w, h := s.cfg.Width, s.cfg.Height
	for _, p := range s.est.Add(s.cfg.Batch, s.rng) {
		x := int(p.X * float64(w))
		y := int(p.Y * float64(h))
		if x >= w {
			x = w - 1
		}
		if y >= h {
			y = h - 1
		}
		if p.Inside {
			s.cells[y*w+x] = cellInside
		} else {
			s.cells[y*w+x] = cellOutside
		}
	}
}

func (s *Sim) drawCircle() {
	w, h := s.cfg.Width, s.cfg.Height
	steps := 4 * (w + h)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int((0.5 + 0.5*math.Cos(a)) * float64(w-1))
		y := int((0.5 + 0.5*math.Sin(a)) * float64(h-1))
		s.cells[y*w+x] = cellCircle
	}
}

var palette = []color.RGBA{
	cellEmpty:   {R: 0x11, G: 0x18, B: 0x27, A: 0xff},
	cellInside:  {R: 0x2d, G: 0xd4, B: 0xbf, A: 0xff},
	cellOutside: {R: 0xf4, G: 0x72, B: 0xb6, A: 0xff},
	cellCircle:  {R: 0x37, G: 0x41, B: 0x51, A: 0xff},
}

// Palette maps raster values to colours.
func (s *Sim) Palette() []color.RGBA { return palette }

// Parameters reports the running estimate.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name:   "Sampling",
			Params: []core.Parameter{core.IntParam("batch", "Batch", s.cfg.Batch)},
		},
		{
			Name: "Estimate",
			Params: []core.Parameter{
				core.IntParam("total", "Points", s.est.Total()),
				core.IntParam("inside", "Inside", s.est.Inside()),
				core.FloatParam("pi", "Pi", math.Round(s.est.Estimate()*1e4)/1e4),
			},
		},
	}}
}

func init() {
	core.Register("montecarlo", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
