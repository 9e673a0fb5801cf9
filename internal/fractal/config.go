package fractal

import (
	"runtime"
	"strconv"
)

// Config controls the fractal explorer.
type Config struct {
	Width   int
	Height  int
	MaxIter int
	Zoom    float64
	Workers int
	View    ViewWindow
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   600,
		Height:  600,
		MaxIter: DefaultMaxIter,
		Zoom:    DefaultZoomFactor,
		Workers: runtime.NumCPU(),
		View:    DefaultView(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// A view override that would leave an axis empty is discarded as a whole.
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
	if v, ok := cfg["max_iter"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxIter = parsed
		}
	}
	if v, ok := cfg["zoom"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Zoom = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	view := c.View
	for key, dst := range map[string]*float64{
		"xmin": &view.XMin,
		"xmax": &view.XMax,
		"ymin": &view.YMin,
		"ymax": &view.YMax,
	} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	if view.Validate() == nil {
		c.View = view
	}
	return c
}
