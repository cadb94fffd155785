// Package config loads the smbsnap configuration.
//
// Sources are layered, each overriding the previous one: embedded
// defaults, the configuration file (TOML, YAML or the legacy INI format of
// /etc/smb-snapshot.conf), SMBSNAP_ environment variables and finally
// command line overrides.
package config
