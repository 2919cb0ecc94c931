package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.NotEmpty(t, cfg.App.DataDir)
}

func TestLoad_FromEnvironment(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "crewdesk-data")
	t.Setenv("CREWDESK_DATA_DIR", dir)
	t.Setenv("CREWDESK_ENV", "production")
	t.Setenv("CREWDESK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.App.DataDir)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}
