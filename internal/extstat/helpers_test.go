package extstat

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected failure")

// writeTree creates files of the given sizes below root.
func writeTree(t *testing.T, fsys afero.Fs, root string, files map[string]int) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(root, 0o755))

	for name, size := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fsys, path, []byte(strings.Repeat("x", size)), 0o644))
	}
}

// faultyFs fails Open and Remove for the configured paths.
type faultyFs struct {
	afero.Fs
	openFails   map[string]bool
	removeFails map[string]bool
}

func (f faultyFs) Open(name string) (afero.File, error) {
	if f.openFails[name] {
		return nil, errInjected
	}

	return f.Fs.Open(name)
}

func (f faultyFs) Remove(name string) error {
	if f.removeFails[name] {
		return errInjected
	}

	return f.Fs.Remove(name)
}
