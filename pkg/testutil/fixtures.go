package testutil

import (
	"path/filepath"
	"testing"

	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/stretchr/testify/require"
)

// NewPackageFS returns an in-memory filesystem where dir exists and holds
// one file per name. Each file's content is its own name.
func NewPackageFS(t *testing.T, dir string, names ...string) filesystem.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	AddFiles(t, fsys, dir, names...)
	return fsys
}

// AddFiles creates dir and writes one file per name into it.
func AddFiles(t *testing.T, fsys filesystem.FS, dir string, names ...string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, fsys.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
}

// ListNames returns the base names of the entries in dir.
func ListNames(t *testing.T, fsys filesystem.FS, dir string) []string {
	t.Helper()
	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
