//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"gridsim/internal/app"
	"gridsim/internal/core"
	"gridsim/internal/fractal"
	_ "gridsim/internal/sims/life"
	_ "gridsim/internal/sims/montecarlo"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ebiten.SetTPS(cfg.TPS)

	var game ebiten.Game
	var w, h int
	if cfg.Sim == "mandelbrot" {
		fcfg := fractal.FromMap(cfg.Set.Map())
		fg := app.NewFractal(ctx, fcfg, cfg)
		game = fg
		w, h = fg.Layout(0, 0)
	} else {
		factory, ok := core.Sims()[cfg.Sim]
		if !ok {
			log.Fatalf("unknown sim %q", cfg.Sim)
		}
		sim := factory(cfg.Set.Map())
		sim.Reset(cfg.Seed)
		g := app.New(sim, cfg)
		game = g
		w, h = g.Layout(0, 0)
	}

	ebiten.SetWindowTitle("gridsim: " + cfg.Sim)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
