package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Model.Seed)
	assert.Equal(t, 1000, cfg.Model.TrainingSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 500000.0, cfg.Defaults.Funding)
	assert.Equal(t, 10.0, cfg.Defaults.TeamSize)
	assert.Equal(t, 15.0, cfg.Defaults.GrowthRate)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "launchlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model:
  seed: 7
  training_size: 300
logging:
  level: debug
defaults:
  funding: 100000
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Model.Seed)
	assert.Equal(t, 300, cfg.Model.TrainingSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 100000.0, cfg.Defaults.Funding)
	// Unset values keep their defaults.
	assert.Equal(t, 25000.0, cfg.Defaults.Revenue)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_RejectsBadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "launchlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
defaults:
  funding: -5
`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Funding cannot be negative")
}

func TestValidate_RejectsTinyTrainingSize(t *testing.T) {
	cfg := &Config{Model: ModelConfig{TrainingSize: 2}}
	assert.Error(t, cfg.Validate())
}
