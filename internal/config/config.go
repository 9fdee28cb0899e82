package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cn-nm/options"
)

// Config holds the CLI defaults that can be stored in a YAML file.
type Config struct {
	Version        string `yaml:"version"`
	Mode           string `yaml:"mode,omitempty"`
	Signed         bool   `yaml:"signed,omitempty"`
	FullWidth      bool   `yaml:"full_width,omitempty"`
	LenientDecimal bool   `yaml:"lenient_decimal,omitempty"`
	// Workers bounds how many suite cases run at once.
	Workers int `yaml:"workers,omitempty"`
}

const defaultWorkers = 8

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if _, ok := options.ParseMode(cfg.Mode); !ok {
		return nil, fmt.Errorf("unknown mode %q, want plain or money", cfg.Mode)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config

	applyDefaults(&cfg)

	return &cfg
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Mode == "" {
		cfg.Mode = options.ModePlain.String()
	}

	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
}

// Flags returns the conversion flags selected by the config.
func (c *Config) Flags() options.FlagEnum {
	flags := options.FlagEnum(options.FlagNone)

	if c.Signed {
		flags |= options.FlagSigned
	}

	if c.FullWidth {
		flags |= options.FlagFullWidth
	}

	if c.LenientDecimal {
		flags |= options.FlagLenientDecimal
	}

	return flags
}

// ModeEnum returns the configured conversion mode.
func (c *Config) ModeEnum() options.ModeEnum {
	m, _ := options.ParseMode(c.Mode)
	return m
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
