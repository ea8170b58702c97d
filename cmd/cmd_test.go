package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsTable(t *testing.T) {
	tbl, err := levelsTable()
	require.NoError(t, err)

	out := tbl.Render()
	for _, want := range []string{"test", "easy", "normal", "hard", "00:08", "01:00", "90%"} {
		assert.Contains(t, out, want)
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.True(t, strings.HasPrefix(buf.String(), "composition "))
}

// newFlagCmd returns a fresh command with the session flags parsed from args.
func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addSessionFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	for _, k := range []string{"COMPOSITION_LEVEL", "COMPOSITION_SEED", "COMPOSITION_PLAIN", "COMPOSITION_LOG"} {
		t.Setenv(k, "")
	}
	t.Setenv("COMPOSITION_SEED", "5")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: hard\nplain: true\nseed: 1\n"), 0o644))

	c := newFlagCmd(t, "--config", path, "--level", "easy")
	cfg, err := loadConfig(c)
	require.NoError(t, err)

	assert.Equal(t, "easy", cfg.Level, "flag beats file")
	assert.True(t, cfg.Plain, "file value kept without a flag")
	assert.Equal(t, uint64(5), cfg.Seed, "env beats file")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	c := newFlagCmd(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := loadConfig(c)
	assert.Error(t, err)
}
