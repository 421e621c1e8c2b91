package commands

import (
	"strings"
	"testing"

	"github.com/driftlock/cfglint/internal/cli/config"
	"github.com/driftlock/cfglint/pkg/lint"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommandFlags(t *testing.T) {
	cmd := NewCheckCommand()
	assert.NotNil(t, cmd.Flags().Lookup("plugins"))
	assert.NotNil(t, cmd.Flags().Lookup("stdin"))
	assert.NotNil(t, cmd.Flags().Lookup("list-errors"))
}

func TestSeverityOverrides(t *testing.T) {
	cfg := &config.Config{Errors: map[string]string{
		"stale-path":      "error",
		"duplicate-group": "warning",
		"unused-bundle":   "silent",
	}}

	overrides := severityOverrides(cfg)
	assert.Equal(t, lint.SeverityError, overrides["stale-path"])
	assert.Equal(t, lint.SeverityWarning, overrides["duplicate-group"])
	assert.Equal(t, lint.SeveritySilent, overrides["unused-bundle"])

	assert.Nil(t, severityOverrides(&config.Config{}))
}

func TestGatherFilesFromArgs(t *testing.T) {
	cmd := &cobra.Command{}

	files, err := gatherFiles(cmd, &CheckOptions{}, []string{"a.yaml", "b.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, files)
}

func TestGatherFilesNoRestriction(t *testing.T) {
	cmd := &cobra.Command{}

	files, err := gatherFiles(cmd, &CheckOptions{}, nil)
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestGatherFilesFromStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("a.yaml\n\nb.yaml\n"))

	files, err := gatherFiles(cmd, &CheckOptions{Stdin: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, files)
}

func TestGatherFilesEmptyStdinIsNonNil(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(""))

	files, err := gatherFiles(cmd, &CheckOptions{Stdin: true}, nil)
	require.NoError(t, err)
	require.NotNil(t, files)
	assert.Empty(t, files)
}
