//go:build !(linux || darwin || freebsd)

package diskinfo

import (
	"github.com/arthur-debert/smbsnap/pkg/errors"
)

// Stat is not supported on this platform
func Stat(path string) (Usage, error) {
	return Usage{Path: path}, errors.New(errors.ErrStatFS, "statfs is not supported on this platform")
}
