package lint

import "fmt"

// Handler classifies and counts findings dispatched by plugins. It owns one
// Registry and one Wrapper, and emits every rendered line through its Sink.
// Runs are single-threaded, so the counters need no locking.
type Handler struct {
	registry *Registry
	wrapper  *Wrapper
	sink     Sink

	errors   int
	warnings int
}

// NewHandler creates a handler around the given registry, wrapper and sink.
func NewHandler(registry *Registry, wrapper *Wrapper, sink Sink) *Handler {
	return &Handler{registry: registry, wrapper: wrapper, sink: sink}
}

// RegisterKinds forwards each kind/action pair to the registry.
func (h *Handler) RegisterKinds(kinds map[string]Severity) {
	for kind, action := range kinds {
		h.registry.Register(kind, action)
	}
}

// Kinds returns the registry's snapshot of registered kinds.
func (h *Handler) Kinds() []KindInfo {
	return h.registry.Kinds()
}

// Errors returns the number of error-classified findings so far.
func (h *Handler) Errors() int { return h.errors }

// Warnings returns the number of warning-classified findings so far.
func (h *Handler) Warnings() int { return h.warnings }

// Dispatch classifies a finding and routes it to the matching handler. A kind
// nobody registered is counted as an error, and an extra "unknown error kind"
// diagnostic is logged at warning level without touching the warning counter.
// The kind trailer is logged at debug level after every message, whatever the
// severity. Dispatch never fails; classification problems degrade to the
// error default instead of aborting the run.
func (h *Handler) Dispatch(kind, msg string) {
	action, known := h.registry.Resolve(kind)
	switch action {
	case SeverityError:
		h.error(msg)
	case SeverityWarning:
		h.warn(msg)
	default:
		h.debug(msg)
	}
	if !known {
		h.sink.Warn(fmt.Sprintf("unknown error kind %s", kind))
	}
	h.sink.Debug(fmt.Sprintf("    (%s)", kind))
}

func (h *Handler) error(msg string) {
	h.errors++
	h.log(msg, h.sink.Error, "ERROR: ")
}

func (h *Handler) warn(msg string) {
	h.warnings++
	h.log(msg, h.sink.Warn, "WARNING: ")
}

func (h *Handler) debug(msg string) {
	h.log(msg, h.sink.Debug, "")
}

func (h *Handler) log(msg string, emit func(string), prefix string) {
	for _, line := range h.wrapper.Wrap(prefix, msg) {
		emit(line)
	}
}
