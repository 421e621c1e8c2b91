package plugins

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/driftlock/cfglint/pkg/lint"
)

func init() {
	lint.RegisterPlugin(lint.PluginInfo{
		Name: "duplicates",
		Errors: map[string]lint.Severity{
			"duplicate-group":         lint.SeverityError,
			"duplicate-client":        lint.SeverityError,
			"multiple-default-groups": lint.SeverityError,
		},
		NewServerless: func(ctx *lint.Context) lint.Plugin {
			return &duplicates{ctx: ctx}
		},
	})
}

// duplicates checks the metadata definitions for names defined more than
// once, and for more than one group marked as the default.
type duplicates struct {
	ctx *lint.Context
}

func (d *duplicates) Name() string { return "duplicates" }

func (d *duplicates) Run() error {
	if err := d.checkGroups(); err != nil {
		return err
	}
	return d.checkClients()
}

func (d *duplicates) checkGroups() error {
	path := filepath.Join(d.ctx.Root, groupsFile)
	if !d.ctx.HandlesFile(groupsFile) {
		return nil
	}
	doc, err := loadDocument(path)
	if err != nil || doc == nil {
		return err
	}

	seen := make(map[string]bool)
	var defaults []string
	for _, entry := range entries(doc, "groups") {
		name, ok := scalarField(entry, "name")
		if !ok {
			continue
		}
		if seen[name] {
			d.ctx.LintError("duplicate-group",
				fmt.Sprintf("duplicate group %q:\n%s", name, lint.RenderNode(entry, false)))
		}
		seen[name] = true
		if boolField(entry, "default") {
			defaults = append(defaults, name)
		}
	}
	if len(defaults) > 1 {
		d.ctx.LintError("multiple-default-groups",
			fmt.Sprintf("%d groups marked default: %s",
				len(defaults), strings.Join(defaults, ", ")))
	}
	return nil
}

func (d *duplicates) checkClients() error {
	path := filepath.Join(d.ctx.Root, clientsFile)
	if !d.ctx.HandlesFile(clientsFile) {
		return nil
	}
	doc, err := loadDocument(path)
	if err != nil || doc == nil {
		return err
	}

	seen := make(map[string]bool)
	for _, entry := range entries(doc, "clients") {
		name, ok := scalarField(entry, "name")
		if !ok {
			continue
		}
		if seen[name] {
			d.ctx.LintError("duplicate-client",
				fmt.Sprintf("duplicate client %q:\n%s", name, lint.RenderNode(entry, false)))
		}
		seen[name] = true
	}
	return nil
}
