package lint

import (
	"fmt"
	"sort"
	"sync"
)

// PluginInfo describes a registered check plugin: its declared error kinds
// and exactly one of the two constructors. A plugin with NewServer set
// requires a live server handle and runs in the second phase.
type PluginInfo struct {
	Name string

	// Errors maps each kind the plugin can raise to its default action.
	Errors map[string]Severity

	NewServerless func(*Context) Plugin
	NewServer     func(ServerHandle, *Context) Plugin
}

// RequiresServer reports whether the plugin runs in the server phase.
func (p PluginInfo) RequiresServer() bool {
	return p.NewServer != nil
}

// globalPlugins is the single process-wide plugin registry.
var globalPlugins = &pluginRegistry{
	plugins: make(map[string]PluginInfo),
}

type pluginRegistry struct {
	mu      sync.RWMutex
	plugins map[string]PluginInfo
}

// RegisterPlugin adds a plugin to the global registry.
// Call this from init() functions in plugin packages.
func RegisterPlugin(info PluginInfo) {
	globalPlugins.mu.Lock()
	defer globalPlugins.mu.Unlock()
	globalPlugins.plugins[info.Name] = info
}

// AllPlugins returns every registered plugin, sorted by name.
func AllPlugins() []PluginInfo {
	globalPlugins.mu.RLock()
	defer globalPlugins.mu.RUnlock()

	infos := make([]PluginInfo, 0, len(globalPlugins.plugins))
	for _, info := range globalPlugins.plugins {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// PluginsByName resolves a requested name list in order. An unknown name is
// an orchestration fault and fails the whole selection.
func PluginsByName(names []string) ([]PluginInfo, error) {
	globalPlugins.mu.RLock()
	defer globalPlugins.mu.RUnlock()

	infos := make([]PluginInfo, 0, len(names))
	for _, name := range names {
		info, ok := globalPlugins.plugins[name]
		if !ok {
			return nil, fmt.Errorf("unknown lint plugin %q", name)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ClearPlugins removes all registered plugins. Used for testing.
func ClearPlugins() {
	globalPlugins.mu.Lock()
	defer globalPlugins.mu.Unlock()
	globalPlugins.plugins = make(map[string]PluginInfo)
}
