package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the application settings. Values come from the config file
// when present, overridden by environment variables; flags override both.
type Config struct {
	ProfileFile string `yaml:"profile_file" env:"FPL_PROFILE_FILE"`
	Currency    string `yaml:"currency" env:"FPL_CURRENCY"`
	// Horizon is the default horizon in years for the series command.
	Horizon int `yaml:"horizon" env:"FPL_HORIZON"`
}

func defaultConfig() Config {
	return Config{ProfileFile: "profile.json", Currency: "USD", Horizon: 30}
}

// configPath returns the location of the optional config file,
// e.g. ~/.config/fpl/config.yaml.
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fpl", "config.yaml")
}

// loadConfig reads the config file if present and applies environment
// overrides.
func loadConfig() (Config, error) {
	cfg := defaultConfig()
	if path := configPath(); path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("could not parse config file %q: %w", path, err)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("could not parse environment overrides: %w", err)
	}
	return cfg, nil
}

var appConfig *Config

// getConfig loads the configuration once; a broken config file degrades to
// defaults with a warning rather than blocking every command.
func getConfig() Config {
	if appConfig == nil {
		cfg, err := loadConfig()
		if err != nil {
			log.Println("warning, ignoring configuration:", err)
		}
		appConfig = &cfg
	}
	return *appConfig
}
