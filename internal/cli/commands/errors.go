package commands

import (
	"github.com/driftlock/cfglint/internal/cli/output"
	"github.com/driftlock/cfglint/pkg/lint"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewErrorsCommand creates the errors command.
func NewErrorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "List known error kinds and how they are handled",
		Long: `List every error kind the registered plugins can raise, together
with the handler it resolves to after applying the config file's errors
section: error, warn, or debug.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			registry := lint.NewRegistry(severityOverrides(cmdCtx.Cfg))
			handler := lint.NewHandler(registry, lint.NewWrapper(0), nil)
			for _, info := range lint.AllPlugins() {
				handler.RegisterKinds(info.Errors)
			}

			renderKinds(cmdCtx.Renderer, handler.Kinds())
			return nil
		},
	}
	return cmd
}

// renderKinds prints the kind table shared by "errors" and "check
// --list-errors".
func renderKinds(r *output.Renderer, kinds []lint.KindInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Error kind", "Handler"})
	for _, k := range kinds {
		t.AppendRow(table.Row{k.Kind, k.Action.HandlerName()})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
