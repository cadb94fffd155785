package types

import "time"

// SyncMode is the strategy used to populate a new snapshot
type SyncMode string

const (
	// SyncBootstrap is a full copy, used when a share has no snapshot root yet
	SyncBootstrap SyncMode = "bootstrap"
	// SyncIncremental syncs against the newest snapshot, hard-linking unchanged files
	SyncIncremental SyncMode = "incremental"
)

// ShareStatus is the terminal state of one share within a run
type ShareStatus string

const (
	ShareSkipped    ShareStatus = "skipped"
	ShareMissing    ShareStatus = "missing"
	ShareSynced     ShareStatus = "synced"
	ShareSyncFailed ShareStatus = "sync_failed"
	ShareError      ShareStatus = "error"
)

// CommandOutcome records one executed (or dry-run) command
type CommandOutcome struct {
	Command  Command       `json:"command"`
	Success  bool          `json:"success"`
	DryRun   bool          `json:"dryRun"`
	Output   string        `json:"output,omitempty"`
	ExitCode int           `json:"exitCode"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// ShareResult holds what happened to a single share
type ShareResult struct {
	Share    Share       `json:"share"`
	Status   ShareStatus `json:"status"`
	Mode     SyncMode    `json:"mode,omitempty"`
	Snapshot string      `json:"snapshot,omitempty"`
	// LinkDest is the directory unchanged files were hard-linked against
	LinkDest   string   `json:"linkDest,omitempty"`
	PriorCount int      `json:"priorCount"`
	Removed    []string `json:"removed,omitempty"`
	// PartialRemoved is set when a failed sync left a directory that was cleaned up
	PartialRemoved bool   `json:"partialRemoved,omitempty"`
	Message        string `json:"message,omitempty"`
}

// Retained returns how many snapshots the share holds after the run
func (r ShareResult) Retained() int {
	n := r.PriorCount - len(r.Removed)
	if r.Status == ShareSynced {
		n++
	}
	return n
}

// RunResult accumulates the outcome of one invocation.
// The failure flag only ever moves from false to true.
type RunResult struct {
	RunID     string           `json:"runId"`
	Snapshot  string           `json:"snapshot"`
	DryRun    bool             `json:"dryRun"`
	StartedAt time.Time        `json:"startedAt"`
	Duration  time.Duration    `json:"duration"`
	Commands  []CommandOutcome `json:"commands"`
	Shares    []ShareResult    `json:"shares"`
	Aborted   bool             `json:"aborted"`
	Errors    []string         `json:"errors,omitempty"`

	failed bool
}

// NewRunResult starts an empty result for a run
func NewRunResult(runID, snapshot string, dryRun bool, startedAt time.Time) *RunResult {
	return &RunResult{
		RunID:     runID,
		Snapshot:  snapshot,
		DryRun:    dryRun,
		StartedAt: startedAt,
	}
}

// RecordCommand appends a command outcome and returns its success
func (r *RunResult) RecordCommand(o CommandOutcome) bool {
	r.Commands = append(r.Commands, o)
	if !o.Success {
		r.failed = true
	}
	return o.Success
}

// RecordError marks the run failed for a reason other than a command exit status
func (r *RunResult) RecordError(err error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, err.Error())
	r.failed = true
}

// AddShare appends a finished share result
func (r *RunResult) AddShare(s ShareResult) {
	r.Shares = append(r.Shares, s)
}

// Failed reports whether anything failed during the run
func (r *RunResult) Failed() bool {
	return r.failed
}

// Success is the overall boolean outcome of the run
func (r *RunResult) Success() bool {
	return !r.failed
}
