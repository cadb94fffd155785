package types

import "path/filepath"

// Share is a named source directory and where its snapshots live
type Share struct {
	Name string
	// Source is SharesRoot/Name
	Source string
	// SnapRoot is SnapRoot/Name, the parent of every snapshot of this share
	SnapRoot string
}

// NewShare resolves the share and snapshot paths for a share name
func NewShare(name, sharesRoot, snapRoot string) Share {
	return Share{
		Name:     name,
		Source:   filepath.Clean(filepath.Join(sharesRoot, name)),
		SnapRoot: filepath.Clean(filepath.Join(snapRoot, name)),
	}
}

// SnapshotPath returns the directory of the named snapshot
func (s Share) SnapshotPath(snapshot string) string {
	return filepath.Join(s.SnapRoot, snapshot)
}
