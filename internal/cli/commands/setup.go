// Package commands contains the cfglint CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/driftlock/cfglint/internal/cli/config"
	"github.com/driftlock/cfglint/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext carries the pieces every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext assembles the command context from the resolved
// configuration and the logger stored by the root command.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	}, nil
}
