package plugins

import (
	"fmt"
	"sort"

	"github.com/driftlock/cfglint/pkg/lint"
)

func init() {
	lint.RegisterPlugin(lint.PluginInfo{
		Name: "bundles",
		Errors: map[string]lint.Severity{
			"bundle-not-found": lint.SeverityError,
			"unused-bundle":    lint.SeverityWarning,
		},
		NewServer: func(handle lint.ServerHandle, ctx *lint.Context) lint.Plugin {
			return &bundles{handle: handle, ctx: ctx}
		},
	})
}

// bundles cross-checks group definitions against the bundles the running
// server resolved: groups must not reference undefined bundles, and a defined
// bundle no group references is dead weight.
type bundles struct {
	handle lint.ServerHandle
	ctx    *lint.Context
}

func (b *bundles) Name() string { return "bundles" }

func (b *bundles) Run() error {
	meta := b.handle.Metadata()

	defined := make(map[string]bool)
	for _, name := range meta.BundleNames() {
		defined[name] = true
	}

	referenced := make(map[string]bool)
	for _, group := range meta.GroupNames() {
		for _, bundle := range meta.GroupBundles(group) {
			referenced[bundle] = true
			if !defined[bundle] {
				b.ctx.LintError("bundle-not-found",
					fmt.Sprintf("group %q references undefined bundle %q", group, bundle))
			}
		}
	}

	var unused []string
	for name := range defined {
		if !referenced[name] {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)
	for _, name := range unused {
		b.ctx.LintError("unused-bundle",
			fmt.Sprintf("bundle %q is not referenced by any group", name))
	}
	return nil
}
