// Package config loads the demo host's settings. The library itself is
// configured only through the two Install arguments; everything here belongs
// to the host process around it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"aspectlock/internal/infrastructure/errors"
)

// Config holds the demo host configuration
type Config struct {
	// Target aspect ratio passed to Install
	AspectWidth  float64 `toml:"aspect_width"`
	AspectHeight float64 `toml:"aspect_height"`

	// Verbose enables debug-level logging
	Verbose bool `toml:"verbose"`

	// Install retry policy: the window only exists some time after the
	// host starts, so the host retries Install until the locator sees it.
	InstallAttempts int `toml:"install_attempts"`
	InstallDelayMS  int `toml:"install_delay_ms"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		AspectWidth:     16,
		AspectHeight:    9,
		Verbose:         false,
		InstallAttempts: 20,
		InstallDelayMS:  100,
	}
}

// Load reads the TOML file at path (skipped when path is empty or the file
// does not exist), applies environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides file values from the environment:
// ASPECTLOCK_RATIO ("16:9" or "16x9") and ASPECTLOCK_VERBOSE.
func applyEnv(cfg *Config) {
	if ratio := os.Getenv("ASPECTLOCK_RATIO"); ratio != "" {
		if w, h, err := ParseRatio(ratio); err == nil {
			cfg.AspectWidth = w
			cfg.AspectHeight = h
		}
	}

	if verbose, present := parseBoolEnv("ASPECTLOCK_VERBOSE"); present {
		cfg.Verbose = verbose
	}
}

// parseBoolEnv reads an environment variable and parses it as a boolean.
// Returns the parsed value and a boolean indicating if the variable was present.
// Supports common boolean representations: true/false, 1/0, yes/no, on/off (case-insensitive).
func parseBoolEnv(key string) (bool, bool) {
	value := os.Getenv(key)
	if value == "" {
		return false, false
	}

	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed, true
	}

	switch strings.ToLower(value) {
	case "yes", "y", "on":
		return true, true
	case "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// ParseRatio parses "W:H" or "WxH" into its two components.
func ParseRatio(s string) (width, height float64, err error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "x"
	}
	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("ratio %q must look like 16:9", s)
	}

	width, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("ratio %q: bad width: %w", s, err)
	}
	height, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("ratio %q: bad height: %w", s, err)
	}
	return width, height, nil
}

func (c Config) validate() error {
	if c.AspectWidth <= 0 || c.AspectHeight <= 0 {
		return fmt.Errorf("aspect ratio components must be positive, got %g:%g", c.AspectWidth, c.AspectHeight)
	}
	if c.InstallAttempts < 1 {
		return fmt.Errorf("install_attempts must be at least 1, got %d", c.InstallAttempts)
	}
	if c.InstallDelayMS < 0 {
		return fmt.Errorf("install_delay_ms must not be negative, got %d", c.InstallDelayMS)
	}
	return nil
}

// RetryConfig translates the install retry settings for errors.WithRetry.
func (c Config) RetryConfig() *errors.RetryConfig {
	return &errors.RetryConfig{
		MaxAttempts:   c.InstallAttempts,
		InitialDelay:  time.Duration(c.InstallDelayMS) * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 1.5,
	}
}
