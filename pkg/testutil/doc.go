// Package testutil provides helpers for smbsnap tests: share trees on disk
// or in memory, fake snapshot sets and inode assertions.
//
// Usage guidelines:
//   - Index, pruner and orchestrator tests use an afero MemMapFs
//   - Tests about hard links need a real filesystem (t.TempDir)
//   - All test data is defined inline, not in external files
package testutil
