package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfig points at an explicit configuration file
	EnvConfig = "SMBSNAP_CONFIG"

	// EnvLogFile overrides the default log file location
	EnvLogFile = "SMBSNAP_LOG_FILE"

	// EnvStateHome is the XDG state directory variable
	EnvStateHome = "XDG_STATE_HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "smbsnap"

	// ConfigFileName is the name of the configuration file under XDG config dirs
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "smbsnap.log"

	// SystemConfigFile is the system wide configuration file
	SystemConfigFile = "/etc/smbsnap.toml"

	// LegacyConfigFile is the INI configuration of the legacy smb-snapshot script
	LegacyConfigFile = "/etc/smb-snapshot.conf"
)

// ConfigSearchPaths returns the candidate configuration files, highest priority first
func ConfigSearchPaths() []string {
	var candidates []string

	if explicit := os.Getenv(EnvConfig); explicit != "" {
		candidates = append(candidates, explicit)
	}

	candidates = append(candidates, filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName))
	for _, dir := range xdg.ConfigDirs {
		candidates = append(candidates, filepath.Join(dir, AppDirName, ConfigFileName))
	}

	return append(candidates, SystemConfigFile, LegacyConfigFile)
}

// FindConfigFile returns the first existing candidate from ConfigSearchPaths
func FindConfigFile() (string, bool) {
	for _, candidate := range ConfigSearchPaths() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// StateDir returns the smbsnap state directory.
// XDG_STATE_HOME is read at call time so a changed environment is honored.
func StateDir() string {
	if stateHome := os.Getenv(EnvStateHome); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the default log file path
func LogFilePath() string {
	if logFile := os.Getenv(EnvLogFile); logFile != "" {
		return logFile
	}
	return filepath.Join(StateDir(), LogFileName)
}
