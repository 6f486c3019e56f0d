package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all crawler configuration.
type Config struct {
	Browser BrowserConfig
	Session SessionConfig
	Store   StoreConfig
	Log     LogConfig
}

// BrowserConfig controls the rod browser instance.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string
}

// SessionConfig controls navigation retry and session recycling.
type SessionConfig struct {
	// MaxRetries is the number of navigation attempts per URL.
	MaxRetries int // default: 3

	// RetryDelay is the sleep between failed navigation attempts.
	RetryDelay time.Duration // default: 5s

	// NavTimeout bounds a single navigation attempt (until DOMContentLoaded).
	NavTimeout time.Duration // default: 30s

	// RestartDelay is the pause between quit and relaunch on a periodic
	// session restart.
	RestartDelay time.Duration // default: 3s
}

// StoreConfig controls where output and retry files are written.
type StoreConfig struct {
	// OutputDir is the directory holding the per-source JSON files.
	OutputDir string // default: "outputs"
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:   envBoolOr("FACTCRAWL_HEADLESS", true),
			NoSandbox:  envBoolOr("FACTCRAWL_NO_SANDBOX", false),
			BrowserBin: os.Getenv("FACTCRAWL_BROWSER_BIN"),
		},
		Session: SessionConfig{
			MaxRetries:   envIntOr("FACTCRAWL_NAV_RETRIES", 3),
			RetryDelay:   envDurationOr("FACTCRAWL_NAV_RETRY_DELAY", 5*time.Second),
			NavTimeout:   envDurationOr("FACTCRAWL_NAV_TIMEOUT", 30*time.Second),
			RestartDelay: envDurationOr("FACTCRAWL_RESTART_DELAY", 3*time.Second),
		},
		Store: StoreConfig{
			OutputDir: envOr("FACTCRAWL_OUTPUT_DIR", "outputs"),
		},
		Log: LogConfig{
			Level:  envOr("FACTCRAWL_LOG_LEVEL", "info"),
			Format: envOr("FACTCRAWL_LOG_FORMAT", "text"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
