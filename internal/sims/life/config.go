package life

import "strconv"

// Config holds parameters for the Game of Life host.
type Config struct {
	Rows             int
	Cols             int
	AliveProbability float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rows: 30, Cols: 50, AliveProbability: DefaultAliveProbability}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["alive"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AliveProbability = parsed
		}
	}
	return c
}
