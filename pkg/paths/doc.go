// Package paths provides the default locations smbsnap reads from and
// writes to. It follows the XDG Base Directory specification for the
// per-user config and state directories and falls back to the system
// paths used by the legacy smb-snapshot script.
package paths
