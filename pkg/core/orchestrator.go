package core

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/arthur-debert/smbsnap/pkg/executor"
	"github.com/arthur-debert/smbsnap/pkg/filesystem"
	"github.com/arthur-debert/smbsnap/pkg/logging"
	"github.com/arthur-debert/smbsnap/pkg/retention"
	"github.com/arthur-debert/smbsnap/pkg/snapshot"
	"github.com/arthur-debert/smbsnap/pkg/strategy"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Orchestrator runs the snapshot workflow for a batch of shares
type Orchestrator struct {
	opts   Options
	fs     afero.Fs
	now    func() time.Time
	logger zerolog.Logger
}

// New validates opts and creates an orchestrator
func New(opts Options) (*Orchestrator, error) {
	if opts.SharesRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "shares root is required")
	}
	if opts.SnapRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "snapshot root is required")
	}
	if opts.Keep < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "snapshot count must not be negative, got %d", opts.Keep)
	}
	for _, hook := range []types.Command{opts.PreExec, opts.PostExec} {
		if !hook.IsSet() {
			continue
		}
		if err := hook.Validate(); err != nil {
			return nil, err
		}
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logger := logging.GetLogger("core")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Orchestrator{
		opts:   opts,
		fs:     filesystem.ForRun(opts.FS, opts.DryRun),
		now:    now,
		logger: logger,
	}, nil
}

// RunSnapshots is a convenience wrapper creating an orchestrator and running it once
func RunSnapshots(ctx context.Context, opts Options) (*types.RunResult, error) {
	o, err := New(opts)
	if err != nil {
		return nil, err
	}
	return o.Run(ctx)
}

// run holds the collaborators of a single invocation
type run struct {
	result   *types.RunResult
	logger   zerolog.Logger
	executor *executor.Executor
	index    *snapshot.Index
	selector *strategy.Selector
	pruner   *retention.Pruner
}

// Run performs one snapshot run. The overall outcome is result.Success().
func (o *Orchestrator) Run(ctx context.Context) (*types.RunResult, error) {
	started := o.now()
	runID := ulid.MustNew(ulid.Timestamp(started), ulid.Monotonic(rand.Reader, 0)).String()
	snapName := snapshot.Name(started)

	r := o.newRun(runID, snapName, started)
	defer logging.LogOperationStart(r.logger, "snapshot run")()

	r.logger.Info().
		Str("snapshot", snapName).
		Strs("shares", o.opts.Shares).
		Int("count", o.opts.Keep).
		Bool("dry_run", o.opts.DryRun).
		Msg("Starting smb-snapshots")
	o.logDiskUsage(r.logger)

	if o.opts.PreExec.IsSet() {
		outcome, err := r.executor.Run(ctx, o.opts.PreExec)
		if err != nil {
			return o.finish(r), err
		}
		if !r.result.RecordCommand(outcome) {
			r.logger.Error().Msg("Could not run PRE_EXEC command!")
			r.result.Aborted = true
			return o.finish(r), nil
		}
	}

	for _, name := range o.opts.Shares {
		if ctx.Err() != nil {
			r.logger.Warn().Str("share", name).Msg("Run interrupted, skipping share")
			r.result.AddShare(types.ShareResult{
				Share:   types.NewShare(name, o.opts.SharesRoot, o.opts.SnapRoot),
				Status:  types.ShareSkipped,
				Message: "interrupted",
			})
			continue
		}
		shareResult, err := o.processShare(ctx, r, name)
		r.result.AddShare(shareResult)
		if err != nil {
			return o.finish(r), err
		}
	}

	if err := ctx.Err(); err != nil {
		r.result.RecordError(errors.Wrap(err, errors.ErrInterrupted, "run interrupted"))
	}

	// post_exec usually undoes pre_exec, so it runs even after an interrupt
	if o.opts.PostExec.IsSet() {
		outcome, err := r.executor.Run(context.WithoutCancel(ctx), o.opts.PostExec)
		if err != nil {
			return o.finish(r), err
		}
		r.result.RecordCommand(outcome)
	}

	return o.finish(r), nil
}

func (o *Orchestrator) newRun(runID, snapName string, started time.Time) *run {
	logger := o.logger.With().Str("run_id", runID).Logger()
	execLogger := logger.With().Str("component", "executor").Logger()
	syncLogger := logger.With().Str("component", "strategy").Logger()
	pruneLogger := logger.With().Str("component", "retention").Logger()

	exec := executor.New(executor.Options{
		Runner: o.opts.Runner,
		DryRun: o.opts.DryRun,
		Shell:  o.opts.Shell,
		Logger: &execLogger,
	})

	syncOpts := o.opts.Sync
	syncOpts.Logger = &syncLogger

	return &run{
		result:   types.NewRunResult(runID, snapName, o.opts.DryRun, started),
		logger:   logger,
		executor: exec,
		index:    snapshot.NewIndex(o.fs),
		selector: strategy.New(o.fs, exec, syncOpts),
		pruner:   retention.New(o.fs, retention.Options{DryRun: o.opts.DryRun, Logger: &pruneLogger}),
	}
}

// processShare runs the per-share state machine. Only a malformed command
// is returned as an error; everything else lands in the share result.
func (o *Orchestrator) processShare(ctx context.Context, r *run, name string) (types.ShareResult, error) {
	share := types.NewShare(name, o.opts.SharesRoot, o.opts.SnapRoot)
	sr := types.ShareResult{Share: share, Snapshot: r.result.Snapshot}
	logger := r.logger.With().Str("share", name).Logger()

	exists, err := afero.Exists(o.fs, share.Source)
	if err != nil || !exists {
		logger.Error().Err(err).Msgf("Share %s not found! Ignoring...", share.Source)
		logger.Info().Msg("Skipping share")
		sr.Status = types.ShareMissing
		sr.Message = "share not found"
		return sr, nil
	}

	set, err := r.index.List(share.SnapRoot)
	if err != nil {
		logger.Error().Err(err).Msg("Cannot list snapshots")
		r.result.RecordError(err)
		sr.Status = types.ShareError
		sr.Message = err.Error()
		return sr, nil
	}
	sr.PriorCount = set.Len()

	// A second run within the same second would sync into, link against
	// and possibly clean up a complete snapshot.
	if set.Contains(r.result.Snapshot) {
		err := errors.Newf(errors.ErrSnapshotExists, "snapshot %s already exists for share %s",
			r.result.Snapshot, name).WithDetail("path", share.SnapshotPath(r.result.Snapshot))
		logger.Error().Str("snapshot", r.result.Snapshot).Msg("Snapshot already exists, skipping share")
		r.result.RecordError(err)
		sr.Status = types.ShareError
		sr.Message = "snapshot already exists"
		return sr, nil
	}

	plan := r.selector.Plan(share, set, r.result.Snapshot)
	sr.Mode = plan.Mode
	sr.LinkDest = plan.LinkDest

	outcome, err := r.selector.Sync(ctx, plan)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrCommandInvalid) {
			sr.Status = types.ShareError
			return sr, err
		}
		logger.Error().Err(err).Msg("Cannot prepare snapshot")
		r.result.RecordError(err)
		sr.Status = types.ShareError
		sr.Message = err.Error()
		return sr, nil
	}

	if !r.result.RecordCommand(outcome) {
		logger.Error().Msg("Sync failed, will not remove old snapshots.")
		sr.Status = types.ShareSyncFailed
		sr.Message = "sync failed"
		sr.PartialRemoved = o.removePartial(logger, plan.Dest)
		return sr, nil
	}
	sr.Status = types.ShareSynced

	removed, err := r.pruner.Prune(share, set, o.opts.Keep)
	sr.Removed = removed
	if err != nil {
		r.result.RecordError(err)
		sr.Message = err.Error()
	}

	return sr, nil
}

// removePartial deletes what a failed sync left behind, so a half written
// directory is never presented as a shadow copy or used as a link source.
func (o *Orchestrator) removePartial(logger zerolog.Logger, dest string) bool {
	if o.opts.KeepPartial || o.opts.DryRun {
		return false
	}

	exists, err := afero.DirExists(o.fs, dest)
	if err != nil || !exists {
		return false
	}

	if err := o.fs.RemoveAll(dest); err != nil {
		logger.Error().Err(err).Str("path", dest).Msg("Could not remove partial snapshot")
		return false
	}
	logger.Info().Str("path", dest).Msg("Removed partial snapshot")
	return true
}

func (o *Orchestrator) logDiskUsage(logger zerolog.Logger) {
	if o.opts.DiskUsage == nil {
		return
	}
	usage, err := o.opts.DiskUsage(o.opts.SnapRoot)
	if err != nil {
		logger.Debug().Err(err).Msg("Cannot read snapshot filesystem usage")
		return
	}
	logger.Debug().
		Str("path", usage.Path).
		Uint64("available", usage.Available).
		Uint64("total", usage.Total).
		Msgf("Snapshot filesystem usage: %s", usage)
}

func (o *Orchestrator) finish(r *run) *types.RunResult {
	r.result.Duration = o.now().Sub(r.result.StartedAt)

	if r.result.Success() {
		r.logger.Info().Dur("duration", r.result.Duration).Msg("smb-snapshots finished!")
	} else {
		r.logger.Error().
			Dur("duration", r.result.Duration).
			Strs("errors", r.result.Errors).
			Msg("smb-snapshots finished with errors!")
	}
	return r.result
}
