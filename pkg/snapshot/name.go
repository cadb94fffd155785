package snapshot

import (
	"regexp"
	"time"

	"github.com/arthur-debert/smbsnap/pkg/errors"
)

// Layout is the time layout of a snapshot directory name
const Layout = "@GMT-2006.01.02-15.04.05"

var namePattern = regexp.MustCompile(`^@GMT-[0-9]{4}\.[0-9]{2}\.[0-9]{2}-[0-9]{2}\.[0-9]{2}\.[0-9]{2}$`)

// Name returns the snapshot name for t, converted to UTC
func Name(t time.Time) string {
	return t.UTC().Format(Layout)
}

// IsName reports whether name is a snapshot directory name
func IsName(name string) bool {
	return namePattern.MatchString(name)
}

// Parse returns the UTC time encoded in a snapshot name
func Parse(name string) (time.Time, error) {
	if !IsName(name) {
		return time.Time{}, errors.Newf(errors.ErrSnapshotName, "%q is not a snapshot name", name)
	}
	t, err := time.Parse(Layout, name)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, errors.ErrSnapshotName, "invalid snapshot timestamp %q", name)
	}
	return t, nil
}
