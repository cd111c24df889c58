package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// FormatText reads plain text, one Line per raw line
	FormatText = "text"
	// FormatJSONL reads JSON lines, one Line per extracted field
	FormatJSONL = "jsonl"
)

// Config holds the settings for a halfsort run
type Config struct {
	Input             string `yaml:"input"`
	Output            string `yaml:"output"`
	Format            string `yaml:"format"`
	Field             string `yaml:"field"`
	Compress          bool   `yaml:"compress"`
	IgnoreParseErrors bool   `yaml:"ignore_parse_errors"`
	MaxLineBytes      int    `yaml:"max_line_bytes"`
	LogLevel          string `yaml:"log_level"`
}

// Default returns a Config with every optional setting filled in
func Default() *Config {
	return &Config{
		Format:       FormatText,
		MaxLineBytes: 64 * 1024,
		LogLevel:     "info",
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: unable to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting which cannot be used
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("config: an input path is required")
	}
	switch c.Format {
	case FormatText:
		if c.Field != "" {
			return fmt.Errorf("config: field %q is only valid with format %q", c.Field, FormatJSONL)
		}
	case FormatJSONL:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("config: max_line_bytes must be positive, was %d", c.MaxLineBytes)
	}
	if c.Compress && c.Output == "" {
		return fmt.Errorf("config: compress requires an output path")
	}
	return nil
}
