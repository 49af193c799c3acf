// Command pokegpt is a console prompt over the battle-math engine: look
// creatures up by name, then evaluate single move uses against them with
// full audit output.
package main

import (
	"flag"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	pokegpt "github.com/tacowhisperer/pokeGPT"
	"github.com/tacowhisperer/pokeGPT/dex"
)

func main() {
	configPath := flag.String("config", "pokegpt.yaml", "path to the config file")
	dataDir := flag.String("data", "", "override the configured data directory")
	debug := flag.Bool("debug", false, "enable verbose engine logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := loadConfig(*configPath, logger)
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *debug {
		cfg.Debug = true
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	// Bridge the structured logger into the engine and the dataset loader
	engineLogger := zerologr.New(&logger)
	pokegpt.SetInternalLogger(engineLogger)
	dex.SetInternalLogger(engineLogger)

	registry, err := loadRegistry(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("could not load creature dataset")
	}
	logger.Info().Int("count", registry.Len()).Msg("loaded creature dataset")

	gen, err := pokegpt.ParseGeneration(cfg.DefaultGeneration)
	if err != nil {
		logger.Fatal().Err(err).Str("value", cfg.DefaultGeneration).Msg("bad default generation in config")
	}

	if _, err := tea.NewProgram(newPrompt(registry, gen), tea.WithAltScreen()).Run(); err != nil {
		logger.Fatal().Err(err).Msg("error running program")
	}
}

// loadRegistry prefers the prepared dataset and falls back to merging the
// raw source tables in place when it is absent.
func loadRegistry(dataDir string) (*dex.Registry, error) {
	datasetBytes, err := os.ReadFile(filepath.Join(dataDir, dex.DatasetFile))
	if err == nil {
		records, err := dex.LoadDataset(datasetBytes)
		if err != nil {
			return nil, err
		}

		return dex.NewRegistry(records), nil
	}

	return dex.DefaultLoader(os.DirFS(dataDir))
}
