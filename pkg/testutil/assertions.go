package testutil

import (
	"os"
	"testing"
)

func stat(t *testing.T, path string) os.FileInfo {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return info
}

// SameFile reports whether a and b are the same inode
func SameFile(t *testing.T, a, b string) bool {
	t.Helper()
	return os.SameFile(stat(t, a), stat(t, b))
}

// AssertHardLinked fails the test unless a and b share an inode
func AssertHardLinked(t *testing.T, a, b string) {
	t.Helper()

	if !SameFile(t, a, b) {
		t.Errorf("Expected %s and %s to be hard links of the same file", a, b)
	}
}

// AssertNotHardLinked fails the test if a and b share an inode
func AssertNotHardLinked(t *testing.T, a, b string) {
	t.Helper()

	if SameFile(t, a, b) {
		t.Errorf("Expected %s and %s to be distinct files", a, b)
	}
}
