package lint

import (
	"log/slog"
	"path/filepath"
)

// Plugin is one self-contained check. Run performs the check and raises
// findings through the shared Handler; a non-nil return is a fault (input the
// plugin cannot interpret), not a finding, and aborts only that plugin.
type Plugin interface {
	Name() string
	Run() error
}

// MetadataView is read access to the resolved metadata of a running server,
// exposed to server-requiring plugins through their handle.
type MetadataView interface {
	// GroupNames returns the names of all defined groups.
	GroupNames() []string
	// ClientNames returns the names of all known clients.
	ClientNames() []string
	// BundleNames returns the names of all defined bundles.
	BundleNames() []string
	// GroupBundles returns the bundles a group references.
	GroupBundles(group string) []string
}

// ServerHandle is the opaque handle to a live server, acquired once for the
// server phase and shared by every server-requiring plugin.
type ServerHandle interface {
	Metadata() MetadataView
	Release() error
}

// Context carries the construction-time dependencies shared by all plugins in
// a run: the handler findings go to, the repository root, and the optional
// file filter.
type Context struct {
	Handler *Handler
	Logger  *slog.Logger

	// Root is the repository root checks resolve paths against.
	Root string

	// Files restricts the run to an explicit path list. Nil means the whole
	// repository is in scope; an empty non-nil list matches nothing.
	Files []string
}

// NewContext creates a plugin context.
func NewContext(handler *Handler, logger *slog.Logger, root string, files []string) *Context {
	return &Context{Handler: handler, Logger: logger, Root: root, Files: files}
}

// LintError raises a finding. The kind should be one the plugin declared.
func (c *Context) LintError(kind, msg string) {
	c.Handler.Dispatch(kind, msg)
}

// HandlesFile reports whether fname is in scope for this run. Callers supply
// paths in inconsistent forms, so fname matches the filter when any of its
// four spellings does: as given, joined to the repository root, absolute, or
// absolute after joining to the root.
func (c *Context) HandlesFile(fname string) bool {
	if c.Files == nil {
		return true
	}
	joined := filepath.Join(c.Root, fname)
	abs, _ := filepath.Abs(fname)
	absJoined, _ := filepath.Abs(joined)
	for _, f := range c.Files {
		if f == fname || f == joined || f == abs || f == absJoined {
			return true
		}
	}
	return false
}
