package snapshot

import (
	"os"
	"sort"

	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/spf13/afero"
)

// Set is the ordered list of snapshots found under a share's snapshot root
type Set struct {
	Root string
	// Exists is false when the snapshot root itself is missing, which
	// is the bootstrap case. An existing but empty root has Exists set
	// and no names.
	Exists bool
	// Names are sorted oldest first
	Names []string
}

// Len returns the number of snapshots
func (s Set) Len() int {
	return len(s.Names)
}

// Contains reports whether name is already in the set
func (s Set) Contains(name string) bool {
	for _, n := range s.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Latest returns the newest snapshot name
func (s Set) Latest() (string, bool) {
	if len(s.Names) == 0 {
		return "", false
	}
	return s.Names[len(s.Names)-1], true
}

// Index lists snapshot sets from a filesystem
type Index struct {
	fs afero.Fs
}

// NewIndex creates an index reading from fs
func NewIndex(fs afero.Fs) *Index {
	return &Index{fs: fs}
}

// List returns the snapshot set under root. Entries that are not
// directories with a snapshot name are ignored.
func (i *Index) List(root string) (Set, error) {
	set := Set{Root: root}

	info, err := i.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return set, errors.Wrapf(err, errors.ErrSnapshotList, "cannot stat snapshot root %s", root)
	}
	if !info.IsDir() {
		return set, errors.Newf(errors.ErrSnapshotList, "snapshot root %s is not a directory", root)
	}
	set.Exists = true

	entries, err := afero.ReadDir(i.fs, root)
	if err != nil {
		return set, errors.Wrapf(err, errors.ErrSnapshotList, "cannot read snapshot root %s", root)
	}

	for _, entry := range entries {
		if entry.IsDir() && IsName(entry.Name()) {
			set.Names = append(set.Names, entry.Name())
		}
	}
	sort.Strings(set.Names)

	return set, nil
}
