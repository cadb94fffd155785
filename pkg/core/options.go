package core

import (
	"time"

	"github.com/arthur-debert/smbsnap/pkg/diskinfo"
	"github.com/arthur-debert/smbsnap/pkg/executor"
	"github.com/arthur-debert/smbsnap/pkg/strategy"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options contains everything a snapshot run consumes
type Options struct {
	// Shares are share names, relative to SharesRoot, processed in order
	Shares     []string
	SharesRoot string
	SnapRoot   string
	// Keep is the number of prior snapshots kept per share
	Keep int

	// PreExec and PostExec are optional; a zero Command is not run
	PreExec  types.Command
	PostExec types.Command
	// Shell interprets shell-line commands
	Shell string

	Sync strategy.Options
	// KeepPartial leaves the directory of a failed sync in place
	KeepPartial bool

	DryRun bool

	// FS defaults to the OS filesystem
	FS afero.Fs
	// Runner defaults to os/exec
	Runner executor.Runner
	// Now defaults to time.Now
	Now func() time.Time
	// DiskUsage, when set, reports free space on the snapshot filesystem
	DiskUsage func(path string) (diskinfo.Usage, error)
	Logger *zerolog.Logger
}
