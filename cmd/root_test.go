package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCmd(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("config", "", "")
	c.Flags().String("db", "", "")
	c.Flags().String("endpoint", "", "")
	return c
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANTOJO_ENDPOINT", "")
	t.Setenv("ANTOJO_DB", "")

	c := newFlagCmd(t)
	require.NoError(t, c.Flags().Set("endpoint", "http://example.test/api/recommend"))
	require.NoError(t, c.Flags().Set("db", "/tmp/antojo-test.db"))

	cfg, err := loadConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api/recommend", cfg.Client.Endpoint)
	assert.Equal(t, "/tmp/antojo-test.db", cfg.Store.Path)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANTOJO_ENDPOINT", "")

	cfg, err := loadConfig(newFlagCmd(t))
	require.NoError(t, err)
	assert.Equal(t, "/recommend", cfg.Client.Endpoint)
}

func TestResolveDBPathCreatesParent(t *testing.T) {
	c := newFlagCmd(t)
	t.Chdir(t.TempDir())
	p := filepath.Join(t.TempDir(), "nested", "antojo.db")
	require.NoError(t, c.Flags().Set("db", p))

	cfg, err := loadConfig(c)
	require.NoError(t, err)

	got, err := resolveDBPath(cfg)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"play", "serve", "history", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}
