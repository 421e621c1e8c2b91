// Package plugins contains the built-in cfglint check plugins. Each plugin
// registers itself with the lint package via init(); importing this package
// for side effects makes the full set available:
//
//	import _ "github.com/driftlock/cfglint/pkg/lint/plugins"
//
// The plugins read the repository layout directly: group and client
// definitions under metadata/, bundle definitions under bundles/.
package plugins

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	groupsFile  = "metadata/groups.yaml"
	clientsFile = "metadata/clients.yaml"
	bundlesDir  = "bundles"
)

// loadDocument parses the file at path and returns its root document node.
// A missing file is not a fault: it returns (nil, nil) so plugins can skip
// checks that have nothing to look at.
func loadDocument(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &doc, nil
}

// entries returns the mapping nodes of the sequence stored under key at the
// top level of doc. Returns nil when the key is absent or shaped differently.
func entries(doc *yaml.Node, key string) []*yaml.Node {
	if doc == nil || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != key {
			continue
		}
		seq := root.Content[i+1]
		if seq.Kind != yaml.SequenceNode {
			return nil
		}
		var out []*yaml.Node
		for _, item := range seq.Content {
			if item.Kind == yaml.MappingNode {
				out = append(out, item)
			}
		}
		return out
	}
	return nil
}

// scalarField returns the scalar value stored under key in a mapping entry.
func scalarField(entry *yaml.Node, key string) (string, bool) {
	for i := 0; i+1 < len(entry.Content); i += 2 {
		if entry.Content[i].Value == key && entry.Content[i+1].Kind == yaml.ScalarNode {
			return entry.Content[i+1].Value, true
		}
	}
	return "", false
}

// boolField returns the boolean value stored under key in a mapping entry.
func boolField(entry *yaml.Node, key string) bool {
	v, ok := scalarField(entry, key)
	return ok && (v == "true" || v == "yes" || v == "on")
}

// bundleFiles returns the bundle definition files under root, sorted so runs
// are deterministic.
func bundleFiles(root string) ([]string, error) {
	pattern := filepath.Join(root, bundlesDir, "*.yaml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
