package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL   = "http://ubaya.cloud/react/160422148/uas"
	defaultSeatPrice = 50000
	defaultTimeout   = 12 * time.Second
)

// Config is resolved once at startup, before any screen renders.
type Config struct {
	BaseURL     string
	RequireAuth bool
	SeatPrice   int64
	HTTPTimeout time.Duration
}

// Load reads an optional .env file and the BIOSKOPI_* environment
// variables. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:     defaultBaseURL,
		RequireAuth: true,
		SeatPrice:   defaultSeatPrice,
		HTTPTimeout: defaultTimeout,
	}

	if v := strings.TrimSpace(os.Getenv("BIOSKOPI_BASE_URL")); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("BIOSKOPI_REQUIRE_AUTH")); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.RequireAuth = parsed
		}
	}
	if v := strings.TrimSpace(os.Getenv("BIOSKOPI_SEAT_PRICE")); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			cfg.SeatPrice = parsed
		}
	}
	if v := strings.TrimSpace(os.Getenv("BIOSKOPI_HTTP_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			cfg.HTTPTimeout = parsed
		}
	}
	return cfg
}
