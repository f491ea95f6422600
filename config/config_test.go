package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arcadia.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 101, cfg.Registry.Capacity)
	assert.Equal(t, 4, cfg.Leaderboard.MaxLevel)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
registry:
  capacity: 211
leaderboard:
  seed: 42
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 211, cfg.Registry.Capacity)
	assert.Equal(t, 4, cfg.Leaderboard.MaxLevel)
	assert.Equal(t, int64(42), cfg.Leaderboard.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "registry:\n  capacity: 211\n")
	t.Setenv("ARCADIA_REGISTRY_CAPACITY", "53")
	t.Setenv("ARCADIA_LEADERBOARD_MAX_LEVEL", "8")
	t.Setenv("ARCADIA_LOG_LEVEL", "warn")
	t.Setenv("ARCADIA_REGISTRY_GROW", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 53, cfg.Registry.Capacity)
	assert.True(t, cfg.Registry.Grow)
	assert.Equal(t, 8, cfg.Leaderboard.MaxLevel)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestBadEnvValue(t *testing.T) {
	t.Setenv("ARCADIA_LEADERBOARD_SEED", "not-a-number")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ARCADIA_LEADERBOARD_SEED")
}

func TestValidationFailures(t *testing.T) {
	cases := map[string]string{
		"tiny capacity":  "registry:\n  capacity: 1\n",
		"zero max level": "leaderboard:\n  max_level: 0\n",
		"huge max level": "leaderboard:\n  max_level: 64\n",
		"bad log level":  "log:\n  level: loud\n",
		"bad format":     "log:\n  format: xml\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMalformedYAML(t *testing.T) {
	_, err := Load(writeFile(t, "registry: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
