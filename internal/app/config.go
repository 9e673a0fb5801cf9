package app

import (
	"flag"
	"strings"
	"time"

	"gridsim/internal/core"
)

// Overrides collects repeatable key=value flags into a sim configuration map.
type Overrides []string

// String implements flag.Value.
func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set implements flag.Value.
func (o *Overrides) Set(value string) error {
	*o = append(*o, value)
	return nil
}

// Map returns the overrides as a key/value map. Entries without '=' are
// treated as boolean switches set to "true"; later entries win.
func (o Overrides) Map() map[string]string {
	out := make(map[string]string, len(o))
	for _, kv := range o {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !ok {
			value = "true"
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Interval time.Duration
	HUDWidth int
	Set      Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Scale:    12,
		TPS:      60,
		Seed:     42,
		Interval: core.DefaultStepInterval,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, montecarlo, mandelbrot)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for grid sims")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between simulation steps")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the side panel in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}
