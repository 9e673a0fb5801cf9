package app

import (
	"flag"
	"testing"
	"time"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-sim", "mandelbrot",
		"-interval", "250ms",
		"-set", "max_iter=300",
		"-set", "w = 400",
		"-set", "verbose",
		"-set", "=skipped",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "mandelbrot" || cfg.Interval != 250*time.Millisecond {
		t.Fatalf("unexpected config %+v", cfg)
	}
	m := cfg.Set.Map()
	if m["max_iter"] != "300" || m["w"] != "400" || m["verbose"] != "true" {
		t.Fatalf("overrides = %v", m)
	}
	if len(m) != 3 {
		t.Fatalf("expected 3 overrides, got %v", m)
	}
	if cfg.Set.String() != "max_iter=300,w = 400,verbose,=skipped" {
		t.Fatalf("String() = %q", cfg.Set.String())
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Sim != "life" || cfg.Interval != 100*time.Millisecond || cfg.Seed != 42 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}
