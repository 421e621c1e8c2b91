package plugins

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/driftlock/cfglint/pkg/lint"
	"gopkg.in/yaml.v3"
)

func init() {
	lint.RegisterPlugin(lint.PluginInfo{
		Name: "validate",
		Errors: map[string]lint.Severity{
			"yaml-failed-to-parse": lint.SeverityError,
		},
		NewServerless: func(ctx *lint.Context) lint.Plugin {
			return &validate{ctx: ctx}
		},
	})
}

// validate checks that every YAML file in the repository parses. Parse
// failures here are findings, not faults: a broken repository file is exactly
// what this plugin exists to report.
type validate struct {
	ctx *lint.Context
}

func (v *validate) Name() string { return "validate" }

func (v *validate) Run() error {
	return filepath.WalkDir(v.ctx.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if ext := filepath.Ext(path); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		rel, relErr := filepath.Rel(v.ctx.Root, path)
		if relErr != nil {
			rel = path
		}
		if !v.ctx.HandlesFile(rel) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var out any
		if err := yaml.Unmarshal(data, &out); err != nil {
			v.ctx.LintError("yaml-failed-to-parse",
				fmt.Sprintf("failed to parse %s:\n%s", rel, indentError(err)))
		}
		return nil
	})
}

// indentError renders a parse error as an indented block so the multi-line
// messages yaml.v3 produces survive wrapping as separate paragraphs.
func indentError(err error) string {
	lines := strings.Split(err.Error(), "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
