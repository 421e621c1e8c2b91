package plugins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/driftlock/cfglint/internal/testutil"
	"github.com/driftlock/cfglint/pkg/lint"
	"github.com/stretchr/testify/require"
)

// recordSink captures emitted lines per channel for assertions.
type recordSink struct {
	errs   []string
	warns  []string
	debugs []string
}

func (s *recordSink) Error(line string) { s.errs = append(s.errs, line) }
func (s *recordSink) Warn(line string)  { s.warns = append(s.warns, line) }
func (s *recordSink) Debug(line string) { s.debugs = append(s.debugs, line) }

// newTestContext builds a plugin context over root with all built-in kinds
// registered.
func newTestContext(t *testing.T, root string, files []string) (*lint.Context, *lint.Handler, *recordSink) {
	t.Helper()
	sink := &recordSink{}
	handler := lint.NewHandler(lint.NewRegistry(nil), lint.NewWrapper(0), sink)
	for _, info := range lint.AllPlugins() {
		handler.RegisterKinds(info.Errors)
	}
	return lint.NewContext(handler, testutil.NewTestLogger(t), root, files), handler, sink
}

// writeRepo materializes a repository fixture: path -> file content.
func writeRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// newPlugin constructs the named registered serverless plugin over ctx.
func newPlugin(t *testing.T, name string, ctx *lint.Context) lint.Plugin {
	t.Helper()
	infos, err := lint.PluginsByName([]string{name})
	require.NoError(t, err)
	return infos[0].NewServerless(ctx)
}

func TestBuiltinPluginsRegistered(t *testing.T) {
	var names []string
	for _, info := range lint.AllPlugins() {
		names = append(names, info.Name)
	}
	require.Equal(t, []string{"bundles", "duplicates", "paths", "validate"}, names)
}
