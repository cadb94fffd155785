// Package filesystem provides the filesystem smbsnap indexes, creates and
// prunes snapshots through.
//
// Production code uses the OS filesystem via afero; tests swap in an
// in-memory filesystem. A dry-run gets a read-only view, so a mutation that
// slips past a dry-run check fails instead of touching disk.
package filesystem
