package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/composition/internal/levels"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"COMPOSITION_LEVEL", "COMPOSITION_SEED", "COMPOSITION_PLAIN", "COMPOSITION_LOG"} {
		t.Setenv(k, "")
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, t.TempDir(), "level: hard\nseed: 42\nplain: true\nlog_file: /tmp/composition.log\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Config{Level: "hard", Seed: 42, Plain: true, LogFile: "/tmp/composition.log"}, cfg)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_DefaultPathMissingIsFine(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_DefaultPathUsed(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "composition")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeConfig(t, dir, "level: normal\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "normal", cfg.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, t.TempDir(), "level: [unterminated\n")

	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, t.TempDir(), "level: hard\nseed: 1\n")
	t.Setenv("COMPOSITION_LEVEL", "easy")
	t.Setenv("COMPOSITION_SEED", "99")
	t.Setenv("COMPOSITION_PLAIN", "true")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Level)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.Plain)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad seed", map[string]string{"COMPOSITION_SEED": "abc"}},
		{"negative seed", map[string]string{"COMPOSITION_SEED": "-1"}},
		{"bad plain", map[string]string{"COMPOSITION_PLAIN": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ApplyEnv(func(k string) string { return tt.env[k] })
			assert.Error(t, err)
		})
	}
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "composition", "config.yaml"), p)
}

func TestResolveLevel(t *testing.T) {
	_, ok, err := Config{}.ResolveLevel()
	require.NoError(t, err)
	assert.False(t, ok)

	level, ok, err := Config{Level: " Hard "}.ResolveLevel()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, levels.LevelHard, level)

	_, _, err = Config{Level: "impossible"}.ResolveLevel()
	var cfgErr *levels.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
