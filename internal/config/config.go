package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "spendlens.yaml"

// Config represents the top-level spendlens.yaml configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Statement StatementConfig `yaml:"statement"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StatementConfig points at the default statement export.
type StatementConfig struct {
	Path string `yaml:"path"`
}

// DashboardConfig holds dashboard request defaults.
type DashboardConfig struct {
	TopN           int     `yaml:"top_n"`
	WithdrawalRate float64 `yaml:"withdrawal_rate"`
}

// Load reads a spendlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8000",
		},
		Statement: StatementConfig{
			Path: "data/statement.xls",
		},
		Dashboard: DashboardConfig{
			TopN:           10,
			WithdrawalRate: 0.04,
		},
	}
}
