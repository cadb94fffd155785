//go:build linux || darwin || freebsd

package diskinfo

import (
	"github.com/arthur-debert/smbsnap/pkg/errors"
	"golang.org/x/sys/unix"
)

// Stat returns the usage of the filesystem holding path
func Stat(path string) (Usage, error) {
	target := nearestExisting(path)

	var st unix.Statfs_t
	if err := unix.Statfs(target, &st); err != nil {
		return Usage{Path: path}, errors.Wrapf(err, errors.ErrStatFS, "statfs %s", target)
	}

	blockSize := uint64(st.Bsize)
	return Usage{
		Path:      path,
		Total:     uint64(st.Blocks) * blockSize,
		Available: uint64(st.Bavail) * blockSize,
	}, nil
}
