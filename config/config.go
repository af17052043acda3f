// SPDX-License-Identifier: MIT

// Package config provides configuration for the waypath CLI.
//
// Precedence, lowest first: Default(), a TOML file (Load), WAYPATH_*
// environment variables (ApplyEnv), then command-line flags applied by the
// caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Supported graph input formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// ErrInvalid indicates a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds CLI configuration.
type Config struct {
	// Input is the path of the graph file ("-" for stdin).
	Input string `toml:"input"`
	// Format is the input format: "table" or "yaml".
	Format string `toml:"format"`
	// Delimiter separates columns in table rows.
	Delimiter string `toml:"delimiter"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Render controls SVG output.
	Render Render `toml:"render"`
}

// Render holds settings for the render command.
type Render struct {
	// Output is the SVG destination path.
	Output string `toml:"output"`
	// Highlight draws the computed route on the rendered graph.
	Highlight bool `toml:"highlight"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:     "-",
		Format:    FormatTable,
		Delimiter: ";",
		LogLevel:  "info",
		Render: Render{
			Output:    "graph.svg",
			Highlight: true,
		},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// defaults; unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from WAYPATH_* environment variables.
func (c *Config) ApplyEnv() {
	c.Input = getEnv("WAYPATH_INPUT", c.Input)
	c.Format = getEnv("WAYPATH_FORMAT", c.Format)
	c.Delimiter = getEnv("WAYPATH_DELIMITER", c.Delimiter)
	c.LogLevel = getEnv("WAYPATH_LOG_LEVEL", c.LogLevel)
	c.Render.Output = getEnv("WAYPATH_RENDER_OUTPUT", c.Render.Output)
	c.Render.Highlight = getEnvBool("WAYPATH_RENDER_HIGHLIGHT", c.Render.Highlight)
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatTable, FormatYAML)
	}
	if c.Delimiter == "" {
		return fmt.Errorf("%w: empty delimiter", ErrInvalid)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	if c.Input == "" {
		return fmt.Errorf("%w: empty input path", ErrInvalid)
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
