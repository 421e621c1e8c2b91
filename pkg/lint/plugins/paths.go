package plugins

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/driftlock/cfglint/pkg/lint"
	"gopkg.in/yaml.v3"
)

func init() {
	lint.RegisterPlugin(lint.PluginInfo{
		Name: "paths",
		Errors: map[string]lint.Severity{
			"stale-path": lint.SeverityWarning,
		},
		NewServerless: func(ctx *lint.Context) lint.Plugin {
			return &paths{ctx: ctx}
		},
	})
}

// bundleDef is one bundle definition file under bundles/.
type bundleDef struct {
	Name  string   `yaml:"name"`
	Paths []string `yaml:"paths"`
}

// paths checks that every path a bundle references still exists in the
// repository.
type paths struct {
	ctx *lint.Context
}

func (p *paths) Name() string { return "paths" }

func (p *paths) Run() error {
	files, err := bundleFiles(p.ctx.Root)
	if err != nil {
		return err
	}
	for _, file := range files {
		rel, relErr := filepath.Rel(p.ctx.Root, file)
		if relErr != nil {
			rel = file
		}
		if !p.ctx.HandlesFile(rel) {
			continue
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		var def bundleDef
		if err := yaml.Unmarshal(data, &def); err != nil {
			// Malformed bundle input this plugin cannot interpret.
			return fmt.Errorf("%s: %w", rel, err)
		}
		if def.Name == "" {
			def.Name = trimYAMLExt(filepath.Base(file))
		}
		for _, entry := range def.Paths {
			target := filepath.Join(p.ctx.Root, entry)
			if _, err := os.Stat(target); os.IsNotExist(err) {
				p.ctx.LintError("stale-path",
					fmt.Sprintf("bundle %q references nonexistent path %s", def.Name, entry))
			}
		}
	}
	return nil
}

func trimYAMLExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
