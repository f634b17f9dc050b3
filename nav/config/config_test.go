package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav", "walknav.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Walk.Speed)
	assert.Equal(t, 10.0, cfg.Walk.SpeedIncrement)
	assert.Equal(t, 50.0, cfg.Mouse.Speed)
	assert.Equal(t, 5.0, cfg.Mouse.SpeedIncrement)
	assert.True(t, cfg.Mouse.Active)
	assert.Equal(t, 300*time.Millisecond, time.Duration(cfg.Features.ToggleCooldown))

	// The defaults must have been written back for the user to edit.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadMergesExistingFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walknav.yaml")
	content := `
walk:
  speed: 250
features:
  toggle_cooldown: 1s
  vertical_move_uses_elevation: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Walk.Speed)
	assert.Equal(t, time.Second, time.Duration(cfg.Features.ToggleCooldown))
	assert.True(t, cfg.Features.VerticalMoveUsesElevation)

	// Untouched sections keep their defaults.
	assert.Equal(t, 10.0, cfg.Walk.SpeedIncrement)
	assert.Equal(t, 50.0, cfg.Mouse.Speed)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walknav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("walk: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walknav.yaml")

	cfg := DefaultConfig()
	cfg.Walk.Speed = 42
	cfg.Journal.Enabled = true
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42.0, loaded.Walk.Speed)
	assert.True(t, loaded.Journal.Enabled)
}
