package lint

import "sort"

// Registry maps error kinds to severity actions. Registration is first-wins:
// once a kind has an action, later registrations are ignored. Configured
// overrides take precedence over the default a plugin declares.
type Registry struct {
	kinds     map[string]Severity
	overrides map[string]Severity
}

// KindInfo is a snapshot entry of a registered error kind.
type KindInfo struct {
	Kind   string
	Action Severity
}

// NewRegistry creates a registry with the given per-kind severity overrides.
// Overrides may be nil.
func NewRegistry(overrides map[string]Severity) *Registry {
	return &Registry{
		kinds:     make(map[string]Severity),
		overrides: overrides,
	}
}

// Register records the action for a kind. The first registration (or a
// configured override) sticks; registering the same kind again never
// overwrites the existing mapping. Registration cannot fail.
func (r *Registry) Register(kind string, action Severity) {
	if _, ok := r.kinds[kind]; ok {
		return
	}
	if override, ok := r.overrides[kind]; ok {
		r.kinds[kind] = override
		return
	}
	r.kinds[kind] = action
}

// Resolve returns the action for a kind. An unregistered kind resolves to
// SeverityError with ok=false so the caller can report the missing
// registration.
func (r *Registry) Resolve(kind string) (action Severity, ok bool) {
	if action, ok := r.kinds[kind]; ok {
		return action, true
	}
	return SeverityError, false
}

// Kinds returns all registered kinds sorted by name.
func (r *Registry) Kinds() []KindInfo {
	infos := make([]KindInfo, 0, len(r.kinds))
	for kind, action := range r.kinds {
		infos = append(infos, KindInfo{Kind: kind, Action: action})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Kind < infos[j].Kind })
	return infos
}
