package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfglint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFlags() *pflag.FlagSet {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String("repo", "", "")
	f.Bool("verbose", false, "")
	return f
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Cleanup(ResetConfig)
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", newFlags())
	require.NoError(t, err)

	wd, _ := os.Getwd()
	assert.Equal(t, wd, cfg.Repo)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Plugins)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Cleanup(ResetConfig)
	path := writeConfig(t, `
repo: /repos/cfg
verbose: true
plugins:
  - duplicates
  - validate
errors:
  stale-path: silent
`)

	cfg, err := LoadConfig(path, newFlags())
	require.NoError(t, err)

	assert.Equal(t, "/repos/cfg", cfg.Repo)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"duplicates", "validate"}, cfg.Plugins)
	assert.Equal(t, map[string]string{"stale-path": "silent"}, cfg.Errors)
	assert.Equal(t, path, GetConfigFileUsed())
	require.NotNil(t, GetCurrentConfig())
	assert.Equal(t, cfg.Repo, GetCurrentConfig().Repo)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Cleanup(ResetConfig)
	path := writeConfig(t, "repo: /from/file\n")
	t.Setenv("CFGLINT_REPO", "/from/env")

	cfg, err := LoadConfig(path, newFlags())
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Repo)
}

func TestLoadConfigFlagOverridesEnv(t *testing.T) {
	t.Cleanup(ResetConfig)
	t.Setenv("CFGLINT_REPO", "/from/env")

	flags := newFlags()
	require.NoError(t, flags.Set("repo", "/from/flag"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Repo)
}

func TestLoadConfigUnsetFlagDoesNotOverride(t *testing.T) {
	t.Cleanup(ResetConfig)
	path := writeConfig(t, "repo: /from/file\n")

	cfg, err := LoadConfig(path, newFlags())
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.Repo)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Cleanup(ResetConfig)
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), newFlags())
	require.Error(t, err)
}

func TestFindConfigFileAutodetect(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("cfglint.yml", []byte("verbose: true\n"), 0o644))

	cfg, err := LoadConfig("", newFlags())
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "cfglint.yml", GetConfigFileUsed())
}

func TestGetLoggerFallback(t *testing.T) {
	logger := GetLogger(context.Background())
	require.NotNil(t, logger)
	// The fallback logger discards; it must not panic when used.
	logger.Info("discarded")
}
