// Package strategy chooses how a new snapshot is populated and runs the
// sync that does it.
//
// A share without a snapshot root is bootstrapped with a full recursive
// copy. Otherwise rsync copies the share into the new snapshot and hard
// links every file that is unchanged relative to the newest existing
// snapshot (or the share itself when the root holds no snapshot yet).
package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/arthur-debert/smbsnap/pkg/logging"
	"github.com/arthur-debert/smbsnap/pkg/snapshot"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// DefaultRsync is the rsync binary used for incremental syncs
	DefaultRsync = "rsync"

	// DefaultCp is the cp binary used for bootstrap copies
	DefaultCp = "cp"

	// snapRootPermissions are the permissions of a newly created snapshot root
	snapRootPermissions = 0755

	linkDestFlagFormat = "--link-dest=%s"
	excludeFlagFormat  = "--exclude=%s"
)

var (
	// DefaultRsyncFlags preserve permissions, ACLs and extended attributes
	DefaultRsyncFlags = []string{"-aAX"}

	// DefaultCpFlags preserve attributes, links and permissions
	DefaultCpFlags = []string{"-a"}
)

// CommandRunner runs a command, honoring dry-run
type CommandRunner interface {
	Run(ctx context.Context, cmd types.Command) (types.CommandOutcome, error)
	DryRun() bool
}

// Options configures the sync tools
type Options struct {
	Rsync      string
	RsyncFlags []string
	Cp         string
	CpFlags    []string
	// Exclude patterns are passed to rsync; cp has no equivalent
	Exclude []string
	Logger  *zerolog.Logger
}

// Plan is the decision made for one share in one run
type Plan struct {
	Mode types.SyncMode
	// Dest is the new snapshot directory
	Dest string
	// LinkDest is the source of truth unchanged files are linked against.
	// Empty for a bootstrap copy.
	LinkDest string
	Command  types.Command
	// CreateRoot is set when the share's snapshot root must be created first
	CreateRoot bool
	SnapRoot   string
}

// Selector plans and runs snapshot syncs
type Selector struct {
	opts   Options
	fs     afero.Fs
	runner CommandRunner
	logger zerolog.Logger
}

// New creates a selector. fs is used to create snapshot roots.
func New(fs afero.Fs, runner CommandRunner, opts Options) *Selector {
	if opts.Rsync == "" {
		opts.Rsync = DefaultRsync
	}
	if opts.RsyncFlags == nil {
		opts.RsyncFlags = DefaultRsyncFlags
	}
	if opts.Cp == "" {
		opts.Cp = DefaultCp
	}
	if opts.CpFlags == nil {
		opts.CpFlags = DefaultCpFlags
	}

	logger := logging.GetLogger("strategy")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Selector{opts: opts, fs: fs, runner: runner, logger: logger}
}

// Plan decides between bootstrap and incremental for share, given the
// snapshots that existed before this run.
func (s *Selector) Plan(share types.Share, set snapshot.Set, snapshotName string) Plan {
	dest := share.SnapshotPath(snapshotName)

	if !set.Exists {
		// First snapshot: nothing to link against, copy everything
		return Plan{
			Mode:       types.SyncBootstrap,
			Dest:       dest,
			CreateRoot: true,
			SnapRoot:   share.SnapRoot,
			Command:    s.copyCommand(share.Source, dest),
		}
	}

	source := share.Source
	if latest, ok := set.Latest(); ok {
		source = share.SnapshotPath(latest)
	}

	return Plan{
		Mode:     types.SyncIncremental,
		Dest:     dest,
		LinkDest: source,
		SnapRoot: share.SnapRoot,
		Command:  s.rsyncCommand(source, share.Source, dest),
	}
}

// Sync creates the snapshot root when needed and runs the plan's command.
// A failed command is reported in the outcome; the error is reserved for a
// root that could not be created or a malformed command.
func (s *Selector) Sync(ctx context.Context, plan Plan) (types.CommandOutcome, error) {
	s.logger.Debug().
		Str("mode", string(plan.Mode)).
		Str("dest", plan.Dest).
		Str("link_dest", plan.LinkDest).
		Msg("Syncing snapshot")

	if plan.CreateRoot && !s.runner.DryRun() {
		if err := s.fs.MkdirAll(plan.SnapRoot, snapRootPermissions); err != nil {
			return types.CommandOutcome{Command: plan.Command}, errors.Wrapf(err, errors.ErrDirCreate,
				"cannot create snapshot root %s", plan.SnapRoot).WithDetail("path", plan.SnapRoot)
		}
		s.logger.Info().Str("path", plan.SnapRoot).Msg("Created snapshot root")
	}

	return s.runner.Run(ctx, plan.Command)
}

func (s *Selector) copyCommand(source, dest string) types.Command {
	args := []string{s.opts.Cp}
	args = append(args, s.opts.CpFlags...)
	args = append(args, withTrailingSlash(source)+".", withTrailingSlash(dest))
	return types.Argv(args...)
}

func (s *Selector) rsyncCommand(linkDest, source, dest string) types.Command {
	args := []string{s.opts.Rsync}
	args = append(args, s.opts.RsyncFlags...)
	for _, pattern := range s.opts.Exclude {
		args = append(args, fmt.Sprintf(excludeFlagFormat, pattern))
	}
	args = append(args, fmt.Sprintf(linkDestFlagFormat, linkDest), withTrailingSlash(source), dest)
	return types.Argv(args...)
}

func withTrailingSlash(path string) string {
	return strings.TrimRight(path, "/") + "/"
}
