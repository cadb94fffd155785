package config

import (
	"github.com/arthur-debert/smbsnap/pkg/errors"
	"gopkg.in/ini.v1"
)

// Sections and keys of the legacy /etc/smb-snapshot.conf
var legacyKeys = []struct {
	section, key, target string
}{
	{"Config", "snap_count", "snapshots.count"},
	{"Cmd", "pre_exec", "commands.pre_exec"},
	{"Cmd", "post_exec", "commands.post_exec"},
	{"Directories", "shares_root", "directories.shares_root"},
	{"Directories", "snap_root", "directories.snap_root"},
	{"Directories", "shares", "directories.shares"},
}

// loadLegacy reads the INI format into dotted configuration keys.
// Key names are case-insensitive, section names are not.
func loadLegacy(path string) (map[string]interface{}, error) {
	f, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse configuration file %s", path).
			WithDetail("path", path)
	}

	out := make(map[string]interface{})
	for _, lk := range legacyKeys {
		section, err := f.GetSection(lk.section)
		if err != nil || !section.HasKey(lk.key) {
			continue
		}
		value := section.Key(lk.key).String()
		if lk.target == "directories.shares" {
			out[lk.target] = cleanList(section.Key(lk.key).Strings(","))
			continue
		}
		out[lk.target] = value
	}
	return out, nil
}
