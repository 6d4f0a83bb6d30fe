package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Database  DatabaseConfig  `toml:"database"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Forecast  ForecastConfig  `toml:"forecast"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type DashboardConfig struct {
	// Color forces ANSI output on ("always"), off ("never"), or leaves it
	// to terminal detection ("auto").
	Color string `toml:"color"`
}

type ForecastConfig struct {
	HorizonDays int `toml:"horizon_days"`
}

func DefaultConfig() Config {
	return Config{
		Dashboard: DashboardConfig{Color: "auto"},
		Forecast:  ForecastConfig{HorizonDays: 7},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "harmonia"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultDBPath is used when neither the config file nor the environment
// names a database location.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".harmonia", "harmonia.db"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, falling back to defaults when the file
// does not exist. Environment overrides apply last.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HARMONIA_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("HARMONIA_COLOR"); v != "" {
		cfg.Dashboard.Color = v
	}
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
