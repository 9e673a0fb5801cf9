package montecarlo

import "strconv"

// Config controls the Monte Carlo raster and batch size.
type Config struct {
	Width  int
	Height int
	Batch  int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 200, Height: 200, Batch: 100}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["batch"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Batch = parsed
		}
	}
	return c
}
