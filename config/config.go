// Package config loads udproj settings from defaults, an optional YAML file,
// UDPROJ_ environment variables and command line flags.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultFile is loaded from the working directory when no file is given.
	DefaultFile = "udproj.yaml"

	EnvPrefix = "UDPROJ_"

	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the settings shared by all commands.
type Config struct {
	Workers       int    `koanf:"workers"`
	SkipMalformed bool   `koanf:"skip_malformed"`
	LogLevel      string `koanf:"log_level"`
	LogFormat     string `koanf:"log_format"`
	Progress      bool   `koanf:"progress"`
	TreebankPath  string `koanf:"treebank_path"`

	// file the config was read from, empty if none
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"workers":        runtime.NumCPU(),
		"skip_malformed": false,
		"log_level":      "info",
		"log_format":     FormatText,
		"progress":       true,
		"treebank_path":  "",
	}
}

// Load builds the configuration.
// Precedence (highest to lowest): overrides > env vars > config file > defaults
//
// overrides carries the flags set on the command line, keyed like the YAML
// file (e.g. "workers").
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := path
	if used == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			used = DefaultFile
		}
	}

	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// UDPROJ_SKIP_MALFORMED -> skip_malformed
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log_format %q (allowed: %s, %s)", c.LogFormat, FormatText, FormatJSON)
	}

	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("unknown log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger returns a logger writing to w in the configured format and level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
