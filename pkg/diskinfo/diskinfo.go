// Package diskinfo reports the space left on the filesystem holding the
// snapshots.
package diskinfo

import (
	"os"
	"path/filepath"

	"github.com/docker/go-units"
)

// Usage describes the filesystem containing Path
type Usage struct {
	Path string
	// Total is the size of the filesystem in bytes
	Total uint64
	// Available is what an unprivileged user may still write
	Available uint64
}

// Used returns the percentage of the filesystem in use
func (u Usage) Used() float64 {
	if u.Total == 0 {
		return 0
	}
	return 100 * float64(u.Total-u.Available) / float64(u.Total)
}

// String formats the usage for humans, e.g. "12.5GB free of 100GB"
func (u Usage) String() string {
	return units.HumanSize(float64(u.Available)) + " free of " + units.HumanSize(float64(u.Total))
}

// nearestExisting walks up from path until it finds something that exists,
// so the usage of a snapshot root that is not created yet can be reported.
func nearestExisting(path string) string {
	path = filepath.Clean(path)
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}
