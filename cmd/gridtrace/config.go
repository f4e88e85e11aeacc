// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// builtinIEEE13 names the bundled IEEE 13-bus feeder in place of a path.
const builtinIEEE13 = "ieee13"

// Config is the gridtrace configuration. Values come from defaults, then
// the --config file, then explicitly set flags.
type Config struct {
	// Network is a description path or "ieee13".
	Network string `yaml:"network" validate:"required"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// MaxDepth bounds trace branches; -1 disables the limit.
	MaxDepth int `yaml:"max_depth" validate:"gte=-1"`

	// Output is text or json.
	Output string `yaml:"output" validate:"oneof=text json"`
}

var errConfig = errors.New("gridtrace: invalid configuration")

var validate = validator.New()

func defaultConfig() Config {
	return Config{
		LogLevel: "warn",
		MaxDepth: -1,
		Output:   "text",
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("gridtrace: read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("gridtrace: parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}

	return l
}
