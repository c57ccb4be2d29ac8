// Package config reads host settings from the environment.
//
// Nothing is persisted; every value has a default so the editor starts with
// an empty environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"notepad0/internal/logging"
)

// Environment variable names.
const (
	EnvLogLevel        = "NOTEPAD0_LOG_LEVEL"
	EnvLogFormat       = "NOTEPAD0_LOG_FORMAT"
	EnvWidth           = "NOTEPAD0_WIDTH"
	EnvHeight          = "NOTEPAD0_HEIGHT"
	EnvShutdownTimeout = "NOTEPAD0_SHUTDOWN_TIMEOUT"
)

const (
	DefaultWidth           = 800
	DefaultHeight          = 600
	MinWidth               = 400
	MinHeight              = 300
	DefaultShutdownTimeout = 2 * time.Second
)

// Config holds the host settings.
type Config struct {
	LogLevel        zerolog.Level
	LogFormat       logging.Format
	Width           int
	Height          int
	ShutdownTimeout time.Duration
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		LogLevel:        zerolog.InfoLevel,
		LogFormat:       logging.FormatConsole,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load reads the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads settings through getenv, which returns "" for unset keys.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv(EnvLogLevel); v != "" {
		level, err := logging.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v := getenv(EnvLogFormat); v != "" {
		format, err := logging.ParseFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogFormat, err)
		}
		cfg.LogFormat = format
	}

	var err error
	if cfg.Width, err = intVar(getenv, EnvWidth, DefaultWidth, MinWidth); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intVar(getenv, EnvHeight, DefaultHeight, MinHeight); err != nil {
		return Config{}, err
	}

	if v := getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvShutdownTimeout, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("%s: must not be negative", EnvShutdownTimeout)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func intVar(getenv func(string) string, key string, def, min int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < min {
		return 0, fmt.Errorf("%s: %d is below the minimum of %d", key, n, min)
	}
	return n, nil
}
