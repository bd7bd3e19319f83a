package telemetry

import (
	"os"
	"strconv"
)

// Config holds telemetry adapter settings.
type Config struct {
	TimeoutMs int
}

// DefaultConfig returns the stock telemetry settings.
func DefaultConfig() Config {
	return Config{
		TimeoutMs: 2000,
	}
}

// LoadConfig reads telemetry configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BMADCOACH_TELEMETRY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
