package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/driftlock/cfglint/internal/cli/config"
	"github.com/driftlock/cfglint/internal/cli/output"
	"github.com/driftlock/cfglint/internal/server"
	"github.com/driftlock/cfglint/pkg/lint"
	"github.com/spf13/cobra"

	// Built-in plugins register themselves on import.
	_ "github.com/driftlock/cfglint/pkg/lint/plugins"
)

// CheckOptions holds the flags for the check command.
type CheckOptions struct {
	Plugins    []string
	Stdin      bool
	ListErrors bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Run lint plugins against the repository",
		Long: `Run lint plugins against the configuration repository and report
findings. With file arguments (or --stdin), plugins restrict their checks
to the listed files; without them the whole repository is checked.

The exit code reports the outcome: 0 clean, 1 no plugins loaded, 2 errors
found, 3 warnings found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runCheck(cmd, cmdCtx, opts, args)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Plugins, "plugins", nil, "Plugins to run (default: all, or the config file's plugins list)")
	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "Read the file list from standard input, one path per line")
	cmd.Flags().BoolVar(&opts.ListErrors, "list-errors", false, "List the error kinds the selected plugins can raise, then exit")

	return cmd
}

func runCheck(cmd *cobra.Command, cmdCtx *CommandContext, opts *CheckOptions, args []string) error {
	cfg, logger := cmdCtx.Cfg, cmdCtx.Logger

	selection := opts.Plugins
	if len(selection) == 0 {
		selection = cfg.Plugins
	}

	var plugins []lint.PluginInfo
	var err error
	if len(selection) > 0 {
		plugins, err = lint.PluginsByName(selection)
		if err != nil {
			return err
		}
	} else {
		plugins = lint.AllPlugins()
	}

	files, err := gatherFiles(cmd, opts, args)
	if err != nil {
		return err
	}

	runner := lint.NewRunner(lint.RunnerConfig{
		Plugins:   plugins,
		Overrides: severityOverrides(cfg),
		Files:     files,
		Root:      cfg.Repo,
		Width:     lint.TerminalWidth(os.Stdout),
		Verbose:   cfg.Verbose,
		Out:       cmdCtx.Renderer.Writer(),
		Sink:      output.NewConsoleSink(cmdCtx.Renderer, cfg.Verbose),
		Logger:    logger,
		Acquire: func() (lint.ServerHandle, error) {
			return server.Acquire(server.Config{Repo: cfg.Repo, Logger: logger})
		},
	})

	if opts.ListErrors {
		renderKinds(cmdCtx.Renderer, runner.Kinds())
		return nil
	}

	logger.Debug("starting lint run", "repo", cfg.Repo, "plugins", len(plugins))
	if code := runner.Run(); code != lint.ExitClean {
		return &lint.ExitError{Code: code}
	}
	return nil
}

// severityOverrides converts the config file's errors section into resolved
// severities.
func severityOverrides(cfg *config.Config) map[string]lint.Severity {
	if len(cfg.Errors) == 0 {
		return nil
	}
	overrides := make(map[string]lint.Severity, len(cfg.Errors))
	for kind, action := range cfg.Errors {
		overrides[kind] = lint.ParseSeverity(action)
	}
	return overrides
}

// gatherFiles resolves the file restriction for the run. A nil return means
// no restriction; a non-nil empty slice restricts to nothing.
func gatherFiles(cmd *cobra.Command, opts *CheckOptions, args []string) ([]string, error) {
	if opts.Stdin {
		files := []string{}
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				files = append(files, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading file list from stdin: %w", err)
		}
		return files, nil
	}
	if len(args) > 0 {
		return args, nil
	}
	return nil, nil
}
