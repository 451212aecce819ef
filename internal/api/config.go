package api

import (
	"os"
	"strconv"
)

// Config holds settings for the FitFinder API client.
type Config struct {
	BaseURL   string
	TimeoutMs int
	PageSize  int
	LogCalls  bool
}

// DefaultConfig returns a Config pointing at the production service.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://api.sspots.site",
		TimeoutMs: 10000,
		PageSize:  20,
	}
}

// LoadConfig reads client configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FITFINDER_API_BASE"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FITFINDER_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FITFINDER_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("FITFINDER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
