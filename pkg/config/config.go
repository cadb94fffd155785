package config

import (
	"github.com/arthur-debert/smbsnap/pkg/strategy"
	"github.com/arthur-debert/smbsnap/pkg/types"
)

// Config is the complete smbsnap configuration
type Config struct {
	Snapshots   Snapshots   `koanf:"snapshots"`
	Commands    Commands    `koanf:"commands"`
	Directories Directories `koanf:"directories"`
	Sync        Sync        `koanf:"sync"`
	Logging     Logging     `koanf:"logging"`
	Metrics     Metrics     `koanf:"metrics"`

	// Source is the file the configuration was read from
	Source string `koanf:"-"`
}

// Snapshots holds retention settings
type Snapshots struct {
	// Count is how many prior snapshots are kept per share
	Count int `koanf:"count"`
}

// Commands are the hooks wrapped around a run.
// A string is a shell line, a list an argument vector.
type Commands struct {
	PreExec  types.Command `koanf:"pre_exec"`
	PostExec types.Command `koanf:"post_exec"`
	Shell    string        `koanf:"shell"`
}

// Directories locates the shares and their snapshots
type Directories struct {
	SharesRoot string   `koanf:"shares_root"`
	SnapRoot   string   `koanf:"snap_root"`
	Shares     []string `koanf:"shares"`
}

// Sync configures the copy tools
type Sync struct {
	Rsync       string   `koanf:"rsync"`
	RsyncFlags  []string `koanf:"rsync_flags"`
	Cp          string   `koanf:"cp"`
	CpFlags     []string `koanf:"cp_flags"`
	Exclude     []string `koanf:"exclude"`
	KeepPartial bool     `koanf:"keep_partial"`
}

// Logging configures the log file
type Logging struct {
	File string `koanf:"file"`
}

// Metrics configures the Prometheus textfile report
type Metrics struct {
	Textfile string `koanf:"textfile"`
}

// StrategyOptions converts the sync section for the strategy selector
func (s Sync) StrategyOptions() strategy.Options {
	return strategy.Options{
		Rsync:      s.Rsync,
		RsyncFlags: s.RsyncFlags,
		Cp:         s.Cp,
		CpFlags:    s.CpFlags,
		Exclude:    s.Exclude,
	}
}
