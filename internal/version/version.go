// Package version holds build metadata injected at link time.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/smbsnap/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/smbsnap/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/smbsnap/internal/version.Date={{.Date}}
)

// String renders the build information on three lines
func String() string {
	return fmt.Sprintf("smbsnap version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
