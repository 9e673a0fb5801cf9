//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"gridsim/internal/core"
	"gridsim/internal/render"
	"gridsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type toggler interface {
	Toggle(i, j int)
}

type clearer interface {
	Clear()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim.Name(), cfg.HUDWidth, "space pause  n step", "r reset  s reseed  c clear", "click toggles when paused"),
		overlay: ui.NewOverlay(),
		timer:   core.NewFixedStep(cfg.Interval),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	if p, ok := sim.(core.PaletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.paused {
		if t, ok := g.sim.(toggler); ok {
			if i, j, inside := g.hoveredCell(); inside {
				t.Toggle(i, j)
			}
		}
	}

	if (!g.paused && g.timer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	if p, ok := g.sim.(core.ParameterProvider); ok {
		g.hud.Update(p.Parameters(), g.status())
	} else {
		g.hud.Update(core.ParameterSnapshot{}, g.status())
	}
	return nil
}

func (g *Game) status() string {
	if g.paused {
		return "Paused"
	}
	return fmt.Sprintf("Running every %s", g.timer.Interval())
}

func (g *Game) hoveredCell() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	col, row := mx/g.scale, my/g.scale
	if mx < 0 || my < 0 || col >= size.W || row >= size.H {
		return 0, 0, false
	}
	return row, col, true
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.palette != nil {
		g.painter.BlitPalette(screen, g.sim.Cells(), g.palette, g.scale)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), render.DefaultOn, render.DefaultOff, g.scale)
	}
	if _, ok := g.sim.(toggler); ok && g.paused {
		if i, j, inside := g.hoveredCell(); inside {
			s := float64(g.scale)
			g.overlay.DrawHighlight(screen, float64(j)*s, float64(i)*s, s, s)
		}
	}
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
