package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadParsesTopology(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topo.yaml")
	contents := `
nodes: ["a", "b", "c"]
edges:
  - id: 0
    a: "a"
    b: "b"
    metric: 2
  - id: 1
    a: "b"
    b: "c"
    metric: 3
ticks: 5
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	top, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, top.Nodes)
	require.Len(t, top.Edges, 2)
	require.Equal(t, 5, top.Ticks)
}

func TestLoadDefaultsTicksWhenUnset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`nodes: ["a"]`), 0o644))

	top, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 20, top.Ticks)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
