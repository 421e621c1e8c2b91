package server

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Group is one group definition from metadata/groups.yaml.
type Group struct {
	Name    string   `yaml:"name"`
	Default bool     `yaml:"default"`
	Bundles []string `yaml:"bundles"`
}

// Client is one client definition from metadata/clients.yaml.
type Client struct {
	Name    string `yaml:"name"`
	Profile string `yaml:"profile"`
}

// Bundle is one bundle definition file from bundles/.
type Bundle struct {
	Name  string   `yaml:"name"`
	Paths []string `yaml:"paths"`
}

type groupsDoc struct {
	Groups []Group `yaml:"groups"`
}

type clientsDoc struct {
	Clients []Client `yaml:"clients"`
}

// Metadata is the server's resolved view of the repository: groups, clients
// and bundles. It implements lint.MetadataView.
type Metadata struct {
	groups  []Group
	clients []Client
	bundles map[string]Bundle
}

// LoadMetadata reads the metadata definitions under root. The group file is
// required; clients and bundles may be absent.
func LoadMetadata(root string) (*Metadata, error) {
	meta := &Metadata{bundles: make(map[string]Bundle)}

	groupsPath := filepath.Join(root, "metadata", "groups.yaml")
	data, err := os.ReadFile(groupsPath)
	if err != nil {
		return nil, fmt.Errorf("reading group definitions: %w", err)
	}
	var groups groupsDoc
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", groupsPath, err)
	}
	meta.groups = groups.Groups

	clientsPath := filepath.Join(root, "metadata", "clients.yaml")
	if data, err := os.ReadFile(clientsPath); err == nil {
		var clients clientsDoc
		if err := yaml.Unmarshal(data, &clients); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", clientsPath, err)
		}
		meta.clients = clients.Clients
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading client definitions: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(root, "bundles", "*.yaml"))
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading bundle definition: %w", err)
		}
		var bundle Bundle
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		if bundle.Name == "" {
			base := filepath.Base(file)
			bundle.Name = base[:len(base)-len(filepath.Ext(base))]
		}
		meta.bundles[bundle.Name] = bundle
	}

	return meta, nil
}

// GroupNames returns the names of all defined groups, sorted.
func (m *Metadata) GroupNames() []string {
	names := make([]string, 0, len(m.groups))
	for _, g := range m.groups {
		names = append(names, g.Name)
	}
	sort.Strings(names)
	return names
}

// ClientNames returns the names of all known clients, sorted.
func (m *Metadata) ClientNames() []string {
	names := make([]string, 0, len(m.clients))
	for _, c := range m.clients {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// BundleNames returns the names of all defined bundles, sorted.
func (m *Metadata) BundleNames() []string {
	names := make([]string, 0, len(m.bundles))
	for name := range m.bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupBundles returns the bundles the named group references.
func (m *Metadata) GroupBundles(group string) []string {
	for _, g := range m.groups {
		if g.Name == group {
			return g.Bundles
		}
	}
	return nil
}
