// Package core drives a snapshot run across all configured shares.
//
// # Run Lifecycle
//
// A run moves through Idle, PreHook, one PerShare step for every share in
// configuration order, PostHook and Done:
//
//  1. PreHook runs the optional pre-exec command, typically remounting the
//     snapshot filesystem read-write. If it fails nothing else happens, not
//     even the post-exec command, because the precondition for snapshotting
//     was never established.
//
//  2. Each share is processed on its own. A share whose source directory is
//     missing is logged and skipped without failing the run. Otherwise its
//     snapshot set is listed, the sync strategy is chosen, and the sync
//     command is run. Pruning happens only after a successful sync so that
//     recovery points are never destroyed when no new one was created.
//
//  3. PostHook runs the optional post-exec command whatever happened to the
//     shares, typically remounting the filesystem read-only again.
//
// # One Point In Time
//
// The snapshot name is computed once when the run starts and reused for
// every share, so all shares of one run share the same @GMT token and Samba
// presents them as the same shadow copy.
//
// # Failure Accounting
//
// Expected failures (a command exiting non-zero, a snapshot root that
// cannot be created, a snapshot that cannot be removed) are recorded in the
// returned types.RunResult and never returned as errors. The only error
// Run returns is for a malformed command, which is rejected before anything
// executes when possible.
//
// # Dry Run
//
// Under dry-run commands are only logged, directories are neither created
// nor removed, and the filesystem is wrapped read-only. The RunResult still
// lists every command and removal the real run would perform.
package core
