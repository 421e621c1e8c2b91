package lint

import (
	"fmt"
	"io"
	"log/slog"
)

// RunnerConfig configures one lint run.
type RunnerConfig struct {
	// Plugins is the resolved plugin selection, in execution order.
	Plugins []PluginInfo

	// Overrides are configured per-kind severity overrides.
	Overrides map[string]Severity

	// Files optionally restricts the run to an explicit path list.
	Files []string

	// Root is the repository root.
	Root string

	// Width is the output column width; 0 or less disables wrapping.
	Width int

	// Verbose forces the summary to print even on a clean run.
	Verbose bool

	// Out receives the run summary and phase notices.
	Out io.Writer

	// Sink receives rendered findings.
	Sink Sink

	Logger *slog.Logger

	// Acquire starts the server phase: it returns a ready handle or fails
	// fatally for the whole phase.
	Acquire func() (ServerHandle, error)
}

// Runner executes a lint run: serverless plugins first, server-requiring
// plugins only when the first phase recorded no errors, then the summary and
// exit code. Plugins run strictly sequentially.
type Runner struct {
	handler    *Handler
	ctx        *Context
	serverless []PluginInfo
	server     []PluginInfo
	acquire    func() (ServerHandle, error)
	verbose    bool
	out        io.Writer
	logger     *slog.Logger
}

// NewRunner builds a runner: it creates the shared Handler, pre-registers
// every selected plugin's declared kinds so first-dispatch classification and
// introspection agree, and partitions the selection into the two phases.
func NewRunner(cfg RunnerConfig) *Runner {
	handler := NewHandler(NewRegistry(cfg.Overrides), NewWrapper(cfg.Width), cfg.Sink)

	r := &Runner{
		handler: handler,
		ctx:     NewContext(handler, cfg.Logger, cfg.Root, cfg.Files),
		acquire: cfg.Acquire,
		verbose: cfg.Verbose,
		out:     cfg.Out,
		logger:  cfg.Logger,
	}
	for _, info := range cfg.Plugins {
		handler.RegisterKinds(info.Errors)
		if info.RequiresServer() {
			r.server = append(r.server, info)
		} else {
			r.serverless = append(r.serverless, info)
		}
	}
	return r
}

// Handler returns the shared error handler.
func (r *Runner) Handler() *Handler { return r.handler }

// Kinds returns every registered error kind with its resolved action.
func (r *Runner) Kinds() []KindInfo { return r.handler.Kinds() }

// Run executes the two phases and returns the process exit code.
func (r *Runner) Run() int {
	if len(r.serverless) == 0 && len(r.server) == 0 {
		r.logger.Error("no lint plugins loaded")
		return ExitNoPlugins
	}

	r.runServerless()

	if len(r.server) > 0 {
		if r.handler.Errors() > 0 {
			// A repository that failed structural checks cannot be assumed
			// to produce a server that starts reliably.
			fmt.Fprintln(r.out, "serverless plugins encountered errors, skipping server plugins")
		} else {
			r.runServer()
		}
	}

	errors, warnings := r.handler.Errors(), r.handler.Warnings()
	if errors > 0 || warnings > 0 || r.verbose {
		fmt.Fprintf(r.out, "%d errors\n", errors)
		fmt.Fprintf(r.out, "%d warnings\n", warnings)
	}

	switch {
	case errors > 0:
		return ExitErrors
	case warnings > 0:
		return ExitWarnings
	default:
		return ExitClean
	}
}

func (r *Runner) runServerless() {
	for _, info := range r.serverless {
		r.logger.Debug("running serverless plugin", "plugin", info.Name)
		r.runPlugin(info.NewServerless(r.ctx))
	}
}

func (r *Runner) runServer() {
	handle, err := r.acquire()
	if err != nil {
		r.logger.Error("failed to acquire server handle, skipping server plugins", "err", err)
		return
	}
	defer func() {
		if err := handle.Release(); err != nil {
			r.logger.Warn("failed to release server handle", "err", err)
		}
	}()

	for _, info := range r.server {
		r.logger.Debug("running server plugin", "plugin", info.Name)
		r.runPlugin(info.NewServer(handle, r.ctx))
	}
}

// runPlugin is the fault boundary: a fault (error return or panic) aborts
// only this plugin and is logged without being counted as a finding, since
// severity classification covers declared kinds only.
func (r *Runner) runPlugin(p Plugin) {
	defer func() {
		if v := recover(); v != nil {
			r.logger.Error("plugin panicked", "plugin", p.Name(), "panic", v)
		}
	}()
	if err := p.Run(); err != nil {
		r.logger.Error("plugin failed", "plugin", p.Name(), "err", err)
	}
}
