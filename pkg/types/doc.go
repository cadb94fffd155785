// Package types defines the core types shared by the smbsnap packages.
// This includes the Command variant run by the executor, the Share being
// snapshotted, and the RunResult that accumulates the outcome of a run.
package types
