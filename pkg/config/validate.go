package config

import (
	"path/filepath"

	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// Validate reports every problem in the configuration at once and makes
// the roots absolute.
func (c *Config) Validate() error {
	var errs error

	missing := func(key string) {
		errs = multierr.Append(errs, errors.Newf(errors.ErrConfigMissing,
			"key %s missing in configuration file", key).WithDetail("key", key))
	}

	if c.Directories.SharesRoot == "" {
		missing("directories.shares_root")
	}
	if c.Directories.SnapRoot == "" {
		missing("directories.snap_root")
	}
	if len(c.Directories.Shares) == 0 {
		missing("directories.shares")
	}

	if c.Snapshots.Count < 0 {
		errs = multierr.Append(errs, errors.Newf(errors.ErrConfigValid,
			"snapshots.count must not be negative, got %d", c.Snapshots.Count))
	}

	hooks := []struct {
		key string
		cmd types.Command
	}{
		{"commands.pre_exec", c.Commands.PreExec},
		{"commands.post_exec", c.Commands.PostExec},
	}
	for _, h := range hooks {
		if h.cmd.Kind == types.CommandNone {
			continue
		}
		if err := h.cmd.Validate(); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, errors.ErrConfigValid, "invalid %s", h.key))
		}
	}

	if errs != nil {
		return errors.Wrap(errs, errors.ErrConfigValid, "invalid configuration")
	}

	var err error
	if c.Directories.SharesRoot, err = filepath.Abs(c.Directories.SharesRoot); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid directories.shares_root")
	}
	if c.Directories.SnapRoot, err = filepath.Abs(c.Directories.SnapRoot); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid directories.snap_root")
	}
	return nil
}

// CheckSharesRoot fails when the shares root does not exist
func (c *Config) CheckSharesRoot(fs afero.Fs) error {
	ok, err := afero.DirExists(fs, c.Directories.SharesRoot)
	if err != nil || !ok {
		return errors.Newf(errors.ErrSharesRootNotFound,
			"SHARES_ROOT '%s' not found!", c.Directories.SharesRoot).
			WithDetail("path", c.Directories.SharesRoot)
	}
	return nil
}

// SelectShares restricts the configured shares to names, keeping the
// configured order. An unknown name is an error.
func (c *Config) SelectShares(names []string) ([]string, error) {
	if len(names) == 0 {
		return c.Directories.Shares, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var selected []string
	for _, s := range c.Directories.Shares {
		if wanted[s] {
			selected = append(selected, s)
			delete(wanted, s)
		}
	}

	var errs error
	for _, n := range names {
		if wanted[n] {
			errs = multierr.Append(errs, errors.Newf(errors.ErrShareNotFound,
				"share %s is not configured", n).WithDetail("share", n))
			delete(wanted, n)
		}
	}
	if errs != nil {
		return nil, errors.Wrap(errs, errors.ErrShareNotFound, "unknown shares")
	}
	return selected, nil
}
