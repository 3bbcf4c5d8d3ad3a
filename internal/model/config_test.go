package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabasePath(), cfg.Database.Path)
	assert.False(t, cfg.Sync.AutoOnStart)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &AppConfig{
		Database: DatabaseConfig{Path: "/tmp/planner-test.db"},
		Sync:     SyncConfig{AutoOnStart: true},
		Log:      LogConfig{Level: "debug"},
	}
	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
