package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "ynabfmt.yaml"

// Config represents the ynabfmt.yaml configuration.
type Config struct {
	// Bank is used when convert is run without --bank.
	Bank   string       `yaml:"bank,omitempty" env:"YNABFMT_BANK"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Report ReportConfig `yaml:"report"`
}

// OutputConfig controls where converted files go and how they are named.
type OutputConfig struct {
	Suffix string `yaml:"suffix" env:"YNABFMT_OUTPUT_SUFFIX"`
	Format string `yaml:"format" env:"YNABFMT_OUTPUT_FORMAT"` // csv or xlsx
	Dir    string `yaml:"dir,omitempty" env:"YNABFMT_OUTPUT_DIR"`
}

// LogConfig sets the logrus level.
type LogConfig struct {
	Level string `yaml:"level" env:"YNABFMT_LOG_LEVEL"`
}

// ReportConfig turns the diagnostics report on.
type ReportConfig struct {
	Enabled bool `yaml:"enabled" env:"YNABFMT_REPORT"`
}

// Load reads a ynabfmt.yaml file from disk. Keys missing from the file take
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := mergo.Merge(&cfg, *Default()); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}
	return &cfg, nil
}

// Resolve loads path if it exists, falls back to defaults otherwise, then
// applies YNABFMT_* environment overrides.
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Suffix: ".ynab",
			Format: "csv",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
