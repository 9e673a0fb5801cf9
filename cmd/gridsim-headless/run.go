package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gridsim/internal/core"
	"gridsim/internal/driver"
	"gridsim/internal/fractal"
	"gridsim/internal/render"
	"gridsim/internal/sims/life"
	"gridsim/internal/sims/montecarlo"
	"gridsim/internal/stats"
)

func run(ctx context.Context, w io.Writer, opts options) error {
	switch opts.Sim {
	case "mandelbrot":
		return runFractal(ctx, w, opts)
	case "stats":
		return runStats(w, opts)
	}
	factory, ok := core.Sims()[opts.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", opts.Sim)
	}
	sim := factory(opts.Set.Map())
	sim.Reset(opts.Seed)
	return runSim(ctx, w, sim, opts)
}

func runSim(ctx context.Context, w io.Writer, sim core.Sim, opts options) error {
	loop := driver.New(driver.Config{Interval: opts.Interval, Steps: opts.steps})
	if !opts.quiet {
		report(w, sim)
	}
	err := driver.RunSim(ctx, loop, sim, func(s core.Sim) error {
		if !opts.quiet {
			report(w, s)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		return err
	}
	if opts.quiet {
		report(w, sim)
	}
	if opts.out != "" {
		if werr := render.WritePNG(opts.out, render.SimImage(sim, opts.Scale)); werr != nil {
			return werr
		}
		fmt.Fprintf(w, "wrote %s\n", opts.out)
	}
	return err
}

func report(w io.Writer, sim core.Sim) {
	switch s := sim.(type) {
	case *life.Life:
		fmt.Fprintf(w, "generation %d population %d\n%s\n", s.Generation(), life.Population(s.Grid()), s.Grid())
	case *montecarlo.Sim:
		est := s.Estimator()
		fmt.Fprintf(w, "points %d inside %d pi %.6f\n", est.Total(), est.Inside(), est.Estimate())
	default:
		fmt.Fprintf(w, "%s stepped\n", sim.Name())
	}
}

func runFractal(ctx context.Context, w io.Writer, opts options) error {
	cfg := fractal.FromMap(opts.Set.Map())
	view := cfg.View
	for _, c := range opts.clicks {
		next, err := fractal.Zoom(view, c[0], c[1], cfg.Width, cfg.Height, cfg.Zoom)
		if err != nil {
			return err
		}
		view = next
	}
	field, err := fractal.RenderParallel(ctx, cfg.Width, cfg.Height, view, cfg.MaxIter, cfg.Workers)
	if err != nil {
		return err
	}
	inside := 0
	for _, n := range field.Counts {
		if n == field.MaxIter {
			inside++
		}
	}
	fmt.Fprintf(w, "view x[%g, %g] y[%g, %g] %dx%d max_iter %d inside %d/%d\n",
		view.XMin, view.XMax, view.YMin, view.YMax, cfg.Width, cfg.Height, cfg.MaxIter, inside, len(field.Counts))
	if opts.out != "" {
		if err := render.WritePNG(opts.out, field.Image()); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", opts.out)
	}
	return nil
}

func runStats(w io.Writer, opts options) error {
	data := stats.Generate(opts.samples, core.NewRNG(opts.Seed))
	s, err := stats.Summarize(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "n %d mean %.3f median %.3f variance %.3f std %.3f min %.3f max %.3f\n",
		s.Count, s.Mean, s.Median, s.Variance, s.StdDev, s.Min, s.Max)

	counts := stats.Histogram(data, opts.bins)
	peak := 0
	for _, c := range counts {
		peak = max(peak, c)
	}
	width := (s.Max - s.Min) / float64(len(counts))
	for i, c := range counts {
		bar := 0
		if peak > 0 {
			bar = c * 40 / peak
		}
		fmt.Fprintf(w, "%8.2f %4d %s\n", s.Min+float64(i)*width, c, strings.Repeat("#", bar))
	}
	return nil
}
