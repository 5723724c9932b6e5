// Package config loads the airnet TOML configuration and sets up logging.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output modes for rendered query results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of an airnet session.
type Config struct {
	LogLevel string `toml:"log_level"`
	// LogFile enables rotated file logging; empty keeps stderr.
	LogFile string `toml:"log_file"`

	Currency string `toml:"currency"`
	// MinConnection is offered when the layover prompt is left blank.
	MinConnection float64 `toml:"min_connection"`
	Output        string  `toml:"output"`

	SeedDemo bool   `toml:"seed_demo"`
	SeedFile string `toml:"seed_file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		Currency:      "R$",
		MinConnection: 1.0,
		Output:        OutputText,
		SeedDemo:      true,
	}
}

// Load reads the TOML file at path over the defaults.
// An empty path yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// Keys present but empty fall back to defaults.
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Output == "" {
		cfg.Output = OutputText
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidConfig, OutputText, OutputJSON, c.Output)
	}
	if c.MinConnection < 0 || math.IsNaN(c.MinConnection) || math.IsInf(c.MinConnection, 0) {
		return fmt.Errorf("%w: min_connection must be a finite non-negative number, got %v", ErrInvalidConfig, c.MinConnection)
	}
	return nil
}

// SetupLogger configures the standard logrus logger from cfg.
// With LogFile set, entries go to a lumberjack-rotated file; otherwise, or
// when the log directory cannot be created, to stderr. The returned writer
// is the active output; callers close it when it is an io.Closer.
func SetupLogger(cfg *Config) io.Writer {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'info'", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			log.WithError(err).Warnf("cannot create log directory for %s, logging to stderr", cfg.LogFile)
			log.SetOutput(out)
			return out
		}
		out = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		}
	}
	log.SetOutput(out)

	return out
}
