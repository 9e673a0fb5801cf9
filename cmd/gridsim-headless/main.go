package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"gridsim/internal/app"
)

type clickList [][2]float64

func (l *clickList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = fmt.Sprintf("%g,%g", c[0], c[1])
	}
	return strings.Join(parts, " ")
}

func (l *clickList) Set(value string) error {
	xs, ys, ok := strings.Cut(value, ",")
	if !ok {
		return fmt.Errorf("click %q: want x,y", value)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fmt.Errorf("click %q: %w", value, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fmt.Errorf("click %q: %w", value, err)
	}
	*l = append(*l, [2]float64{x, y})
	return nil
}

type options struct {
	app.Config
	steps   uint64
	out     string
	samples int
	bins    int
	quiet   bool
	clicks  clickList
}

func main() {
	base := app.NewConfig()
	opts := options{Config: *base}
	opts.Scale = 4
	opts.Bind(flag.CommandLine)
	flag.Uint64Var(&opts.steps, "steps", 20, "number of steps to run (0 runs until interrupted)")
	flag.StringVar(&opts.out, "out", "", "write the final frame as PNG to this path")
	flag.IntVar(&opts.samples, "samples", 500, "sample size for the stats dashboard")
	flag.IntVar(&opts.bins, "bins", 20, "histogram bins for the stats dashboard")
	flag.BoolVar(&opts.quiet, "quiet", false, "only print the final state")
	flag.Var(&opts.clicks, "click", "zoom click x,y applied to the mandelbrot view before rendering (repeatable)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err := run(ctx, os.Stdout, opts)
	if errors.Is(err, context.Canceled) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s finished in %s", opts.Sim, time.Since(start).Round(time.Millisecond))
}
