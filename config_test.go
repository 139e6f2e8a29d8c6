package volcanium

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volcanium.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
minutes: 30
agents: 1
prune: true
log_level: debug
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	want := DefaultConfig()
	want.Minutes = 30
	want.Agents = 1
	want.Prune = true
	want.LogLevel = "debug"
	assert.Equal(t, want, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	o := cfg.options()
	assert.Equal(t, 30, o.minutes)
	assert.Equal(t, 1, o.agents)
	assert.True(t, o.prune)
	assert.Equal(t, "AA", o.start)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"too many agents", "agents: 5"},
		{"no agents", "agents: 0"},
		{"negative minutes", "minutes: -1"},
		{"negative workers", "workers: -2"},
		{"bad level", "log_level: loud"},
		{"empty start", `start: ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))
			_, err := LoadConfig(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agents: [1"), 0644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
