// Package retention prunes the oldest snapshots of a share.
package retention

import (
	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/arthur-debert/smbsnap/pkg/logging"
	"github.com/arthur-debert/smbsnap/pkg/snapshot"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// Select returns the snapshots to remove from names (sorted oldest first)
// so that at most keep remain. The snapshot created by the current run is
// not part of names, so a share ends up with keep+1 snapshots.
func Select(names []string, keep int) []string {
	if keep < 0 {
		keep = 0
	}
	excess := len(names) - keep
	if excess <= 0 {
		return nil
	}
	return append([]string(nil), names[:excess]...)
}

// Options configures a Pruner
type Options struct {
	DryRun bool
	Logger *zerolog.Logger
}

// Pruner removes snapshots beyond the retention count
type Pruner struct {
	fs     afero.Fs
	dryRun bool
	logger zerolog.Logger
}

// New creates a pruner removing directories from fs
func New(fs afero.Fs, opts Options) *Pruner {
	logger := logging.GetLogger("retention")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Pruner{fs: fs, dryRun: opts.DryRun, logger: logger}
}

// Prune removes the oldest snapshots of set beyond keep. It returns the
// snapshots removed (or that would be removed under dry-run). A snapshot
// that cannot be removed does not stop the others; all failures are
// combined in the returned error.
func (p *Pruner) Prune(share types.Share, set snapshot.Set, keep int) ([]string, error) {
	p.logger.Debug().
		Str("share", share.Name).
		Int("count", set.Len()).
		Int("max", keep).
		Msg("Snapshots count")

	var (
		removed []string
		errs    error
	)
	for _, name := range Select(set.Names, keep) {
		path := share.SnapshotPath(name)
		p.logger.Info().
			Str("share", share.Name).
			Bool("dry_run", p.dryRun).
			Msgf("Removing old snapshot '%s'.", path)

		if p.dryRun {
			removed = append(removed, name)
			continue
		}

		if err := p.fs.RemoveAll(path); err != nil {
			p.logger.Error().Err(err).Str("path", path).Msg("Could not remove old snapshot")
			errs = multierr.Append(errs, errors.Wrapf(err, errors.ErrSnapshotRemove,
				"cannot remove snapshot %s", path))
			continue
		}
		removed = append(removed, name)
	}

	return removed, errs
}
