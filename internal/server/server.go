// Package server provides the live-server collaborator for server-requiring
// lint plugins: it loads the repository's resolved metadata once and exposes
// it behind the opaque handle the lint package defines.
package server

import (
	"fmt"
	"log/slog"

	"github.com/driftlock/cfglint/pkg/lint"
)

// Config configures server acquisition.
type Config struct {
	// Repo is the repository root to load metadata from.
	Repo string

	Logger *slog.Logger
}

// Handle is the acquired server, scoped to one server phase. It implements
// lint.ServerHandle.
type Handle struct {
	meta   *Metadata
	logger *slog.Logger
}

// Acquire loads the repository metadata and returns a ready handle. A
// metadata load failure is fatal for the whole server phase.
func Acquire(cfg Config) (*Handle, error) {
	meta, err := LoadMetadata(cfg.Repo)
	if err != nil {
		return nil, fmt.Errorf("loading server metadata: %w", err)
	}
	cfg.Logger.Debug("server metadata loaded",
		"groups", len(meta.groups),
		"clients", len(meta.clients),
		"bundles", len(meta.bundles))
	return &Handle{meta: meta, logger: cfg.Logger}, nil
}

// Metadata returns read access to the resolved metadata.
func (h *Handle) Metadata() lint.MetadataView {
	return h.meta
}

// Release shuts the handle down. The runner calls it exactly once, whatever
// the outcome of the server phase.
func (h *Handle) Release() error {
	h.logger.Debug("server handle released")
	h.meta = nil
	return nil
}
