package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), zerolog.Nop())
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokegpt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0644))

	cfg := loadConfig(path, zerolog.Nop())
	assert.True(t, cfg.Debug)
	// Unset keys keep their defaults
	assert.Equal(t, defaultConfig().DataDir, cfg.DataDir)
	assert.Equal(t, defaultConfig().DefaultGeneration, cfg.DefaultGeneration)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokegpt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	cfg := loadConfig(path, zerolog.Nop())
	assert.Equal(t, defaultConfig(), cfg)
}
