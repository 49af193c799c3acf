package main

import (
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type config struct {
	// Directory holding dex.json, or the raw source tables as a fallback
	DataDir           string `yaml:"data_dir"`
	DefaultGeneration string `yaml:"default_generation"`
	Debug             bool   `yaml:"debug"`
}

func defaultConfig() config {
	return config{
		DataDir:           "data",
		DefaultGeneration: "IX",
	}
}

// loadConfig reads the yaml config, falling back to defaults when the file
// is missing or unreadable. A half-filled file keeps defaults for whatever
// it leaves out.
func loadConfig(path string, logger zerolog.Logger) config {
	cfg := defaultConfig()

	contents, err := os.ReadFile(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("no config file, using defaults")
		return cfg
	}

	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		logger.Err(err).Str("path", path).Msg("could not parse config file, using defaults")
		return defaultConfig()
	}

	return populateConfig(cfg)
}

func populateConfig(cfg config) config {
	defaults := defaultConfig()
	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.DefaultGeneration == "" {
		cfg.DefaultGeneration = defaults.DefaultGeneration
	}

	return cfg
}
