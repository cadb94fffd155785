package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
)

// CreateFile creates a file with content under dir, creating parents.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates a directory under parent.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test on error
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// MakeSnapshots creates empty snapshot directories named names under root
func MakeSnapshots(t *testing.T, fs afero.Fs, root string, names ...string) {
	t.Helper()

	if err := fs.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create snapshot root %s: %v", root, err)
	}
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := fs.MkdirAll(path, 0755); err != nil {
			t.Fatalf("Failed to create snapshot %s: %v", path, err)
		}
	}
}

// ListTree returns every path below root (root excluded), sorted
func ListTree(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()

	var paths []string
	err := afero.Walk(fs, root, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path != root {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("Failed to walk %s: %v", root, err)
	}
	sort.Strings(paths)
	return paths
}
