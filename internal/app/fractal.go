//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"gridsim/internal/core"
	"gridsim/internal/fractal"
	"gridsim/internal/render"
	"gridsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxIterStep = 50

// FractalGame is an ebiten.Game exploring the Mandelbrot set. Clicks zoom in
// and are ignored while a render is pending.
type FractalGame struct {
	ctx      context.Context
	cfg      fractal.Config
	renderer *fractal.Renderer
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay

	hasImage bool
	status   string
}

// NewFractal constructs the explorer and starts rendering the initial view.
func NewFractal(ctx context.Context, cfg fractal.Config, appCfg *Config) *FractalGame {
	g := &FractalGame{
		ctx:      ctx,
		cfg:      cfg,
		renderer: fractal.NewRenderer(cfg),
		hud:      ui.NewHUD("mandelbrot", appCfg.HUDWidth, "click zoom  r reset view", "+/- iterations  q quit"),
		overlay:  ui.NewOverlay(),
	}
	w, h := g.renderer.Size()
	g.painter = render.NewGridPainter(w, h)
	g.submit(g.renderer.ResetView(ctx))
	return g
}

func (g *FractalGame) submit(_ uint64, err error) {
	switch {
	case err == nil:
		g.status = "Rendering..."
	case errors.Is(err, fractal.ErrRenderInFlight):
	default:
		g.status = err.Error()
	}
}

// Update handles input and picks up finished renders.
func (g *FractalGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.submit(g.renderer.ResetView(g.ctx))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.submit(g.renderer.SetMaxIter(g.ctx, g.renderer.MaxIter()+maxIterStep))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		next := g.renderer.MaxIter() - maxIterStep
		if next < 1 {
			next = 1
		}
		g.submit(g.renderer.SetMaxIter(g.ctx, next))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if px, py, inside := g.cursor(); inside {
			g.submit(g.renderer.Zoom(g.ctx, float64(px), float64(py)))
		}
	}

	if res, ok := g.renderer.Poll(); ok {
		if res.Err != nil {
			g.status = "render failed: " + res.Err.Error()
			log.Printf("mandelbrot render %d failed: %v", res.Generation, res.Err)
		} else {
			res.Field.FillRGBA(g.painter.Buffer())
			g.hasImage = true
			g.status = fmt.Sprintf("Render #%d done", res.Generation)
		}
	}

	g.hud.Update(g.parameters(), g.status)
	return nil
}

func (g *FractalGame) cursor() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	w, h := g.renderer.Size()
	return mx, my, mx >= 0 && my >= 0 && mx < w && my < h
}

func (g *FractalGame) parameters() core.ParameterSnapshot {
	view := g.renderer.View()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "View",
			Params: []core.Parameter{
				viewParam("xmin", "x min", view.XMin),
				viewParam("xmax", "x max", view.XMax),
				viewParam("ymin", "y min", view.YMin),
				viewParam("ymax", "y max", view.YMax),
			},
		},
		{
			Name: "Render",
			Params: []core.Parameter{
				core.IntParam("max_iter", "Iterations", g.renderer.MaxIter()),
				core.FloatParam("zoom", "Zoom factor", g.cfg.Zoom),
				core.IntParam("workers", "Workers", g.cfg.Workers),
			},
		},
	}}
}

func viewParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', 8, 64)}
}

// Draw paints the last finished render, the zoom target and the busy veil.
func (g *FractalGame) Draw(screen *ebiten.Image) {
	w, h := g.renderer.Size()
	if g.hasImage {
		g.painter.Flush(screen, 1)
	}
	if g.renderer.Pending() {
		g.overlay.DrawBusy(screen, w, h, "Rendering...")
	} else if px, py, inside := g.cursor(); inside {
		zoom := g.cfg.Zoom
		g.overlay.DrawZoomTarget(screen, float64(px), float64(py), float64(w)/zoom, float64(h)/zoom)
	}
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *FractalGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.renderer.Size()
	return w + g.hud.Width(), h
}
