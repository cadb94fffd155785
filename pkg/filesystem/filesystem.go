package filesystem

import (
	"github.com/spf13/afero"
)

// NewOS creates the OS filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// ForRun returns base unchanged, or a read-only view of it for a dry-run
func ForRun(base afero.Fs, dryRun bool) afero.Fs {
	if base == nil {
		base = NewOS()
	}
	if dryRun {
		return afero.NewReadOnlyFs(base)
	}
	return base
}
