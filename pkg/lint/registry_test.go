package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFirstRegistrationWins(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("stale-path", SeverityWarning)
	r.Register("stale-path", SeverityError)

	action, ok := r.Resolve("stale-path")
	require.True(t, ok)
	assert.Equal(t, SeverityWarning, action)
}

func TestRegistryOverrideTakesPrecedence(t *testing.T) {
	r := NewRegistry(map[string]Severity{"stale-path": SeveritySilent})
	r.Register("stale-path", SeverityWarning)

	action, ok := r.Resolve("stale-path")
	require.True(t, ok)
	assert.Equal(t, SeveritySilent, action)

	// The override sticks across repeated registrations too.
	r.Register("stale-path", SeverityError)
	action, _ = r.Resolve("stale-path")
	assert.Equal(t, SeveritySilent, action)
}

func TestRegistryResolveUnknown(t *testing.T) {
	r := NewRegistry(nil)
	action, ok := r.Resolve("never-registered")
	assert.False(t, ok)
	assert.Equal(t, SeverityError, action)
}

func TestRegistryOverrideForUnregisteredKind(t *testing.T) {
	// An override alone does not register the kind.
	r := NewRegistry(map[string]Severity{"ghost": SeverityWarning})
	_, ok := r.Resolve("ghost")
	assert.False(t, ok)
}

func TestRegistryKindsSorted(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("zeta", SeverityError)
	r.Register("alpha", SeverityWarning)
	r.Register("mid", SeveritySilent)

	kinds := r.Kinds()
	require.Len(t, kinds, 3)
	assert.Equal(t, "alpha", kinds[0].Kind)
	assert.Equal(t, "mid", kinds[1].Kind)
	assert.Equal(t, "zeta", kinds[2].Kind)
	assert.Equal(t, SeverityWarning, kinds[0].Action)
}
