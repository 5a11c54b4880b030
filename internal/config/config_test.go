package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/layout"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "", cfg.Dataset.Path)
	assert.Equal(t, -1, cfg.Dataset.Count)
	assert.Equal(t, 2*time.Second, cfg.Transition.Duration)
	assert.Equal(t, layout.NameTable, cfg.Transition.Initial)
	assert.Equal(t, "exponential-in-out", cfg.Transition.Easing)
	assert.Equal(t, 2000.0, cfg.Transition.Scatter)
	assert.Equal(t, 60, cfg.Frame.TPS)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative duration", func(c *Config) { c.Transition.Duration = -time.Second }, "transition.duration"},
		{"unknown layout", func(c *Config) { c.Transition.Initial = "cube" }, "transition.initial"},
		{"unknown easing", func(c *Config) { c.Transition.Easing = "bounce" }, "transition.easing"},
		{"negative scatter", func(c *Config) { c.Transition.Scatter = -1 }, "transition.scatter"},
		{"zero tps", func(c *Config) { c.Frame.TPS = 0 }, "frame.tps"},
		{"zero rate", func(c *Config) { c.Server.RateLimit = 0 }, "server.rate_limit"},
		{"zero burst", func(c *Config) { c.Server.Burst = 0 }, "server.burst"},
		{"zero scenes", func(c *Config) { c.Server.MaxScenes = 0 }, "server.max_scenes"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeConfiguration))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "periodix.yaml")
	doc := `
transition:
  duration: 750ms
  initial: helix
  seed: 99
frame:
  tps: 30
dataset:
  count: 20
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.Transition.Duration)
	assert.Equal(t, layout.NameHelix, cfg.Transition.Initial)
	assert.Equal(t, uint64(99), cfg.Transition.Seed)
	assert.Equal(t, 30, cfg.Frame.TPS)
	assert.Equal(t, 20, cfg.Dataset.Count)
	assert.Equal(t, time.Second/30, cfg.Frame.Interval())

	// Untouched keys keep their defaults.
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "periodix.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\naddr = \":9999\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "missing file: %v", err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("transition:\n  initial: cube\n"), 0o644))
	_, err = Load(invalid)
	assert.True(t, errors.Is(err, errors.ErrCodeConfiguration), "invalid value: %v", err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PERIODIX_TRANSITION_INITIAL", "grid")
	t.Setenv("PERIODIX_SERVER_BURST", "9")

	v := NewViper()
	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, layout.NameGrid, cfg.Transition.Initial)
	assert.Equal(t, 9, cfg.Server.Burst)
}

func TestNewScene(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("dataset.count", 12)
	v.Set("transition.seed", 5)
	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)

	s, err := cfg.NewScene()
	require.NoError(t, err)
	assert.Equal(t, 12, s.Len())

	other, err := cfg.NewScene()
	require.NoError(t, err)
	assert.Equal(t, s.Elements(), other.Elements(), "same seed should scatter identically")
}

func TestNewSceneCountTooLarge(t *testing.T) {
	cfg := Default()
	cfg.Dataset.Count = 500
	_, err := cfg.NewScene()
	assert.True(t, errors.Is(err, errors.ErrCodeConfiguration))
}
