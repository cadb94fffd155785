package config

import (
	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

type sample struct {
	Snapshots struct {
		Count int `toml:"count" comment:"How many snapshots to keep per share (default: 210)"`
	} `toml:"snapshots"`
	Commands struct {
		PreExec  string `toml:"pre_exec" comment:"Command executed before snapshots"`
		PostExec string `toml:"post_exec" comment:"Command executed after snapshots (even after a failure)"`
		Shell    string `toml:"shell" comment:"Shell interpreting string commands; use a list for an argument vector"`
	} `toml:"commands"`
	Directories struct {
		SharesRoot string   `toml:"shares_root" comment:"Root folder of the shares"`
		SnapRoot   string   `toml:"snap_root" comment:"Snapshots root folder"`
		Shares     []string `toml:"shares" comment:"Shares to snapshot, relative to shares_root"`
	} `toml:"directories"`
	Sync struct {
		Exclude     []string `toml:"exclude" comment:"Patterns rsync leaves out of incremental snapshots"`
		KeepPartial bool     `toml:"keep_partial" comment:"Keep the directory of a failed sync for inspection"`
	} `toml:"sync"`
	Metrics struct {
		Textfile string `toml:"textfile" comment:"Prometheus textfile written after each run, empty disables.\ne.g. /var/lib/node_exporter/textfile/smbsnap.prom"`
	} `toml:"metrics"`
}

// GenerateSample renders a commented sample configuration file
func GenerateSample() (string, error) {
	var s sample
	s.Snapshots.Count = 100
	s.Commands.PreExec = "/bin/mount -o remount,rw /srv/snapshots"
	s.Commands.PostExec = "/bin/mount -o remount,ro /srv/snapshots"
	s.Commands.Shell = "/bin/sh"
	s.Directories.SharesRoot = "/srv/shares"
	s.Directories.SnapRoot = "/srv/snapshots"
	s.Directories.Shares = []string{"My Share 1", "My Share 2", "ShareN"}
	s.Sync.Exclude = []string{".recycle"}

	out, err := toml.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render sample configuration")
	}
	return string(out), nil
}
