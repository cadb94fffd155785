package smbsnap

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Hard-link incremental snapshots of Samba shares"
	MsgRunShort        = "Create a snapshot of the configured shares"
	MsgListShort       = "List the snapshots of the configured shares"
	MsgGenConfigShort  = "Print a sample configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgRunFailed        = "smb-snapshots finished with errors!"
	MsgConfigNotFound   = "Configuration file not found! Default location: %s."
	MsgMissingKey       = "Key %s missing in configuration file!"
	MsgSharesRootAbsent = "SHARES_ROOT '%s' not found!"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrRender       = "failed to render output: %w"
	MsgErrSampleConfig = "failed to generate sample configuration: %w"

	// Flag descriptions
	MsgFlagConfig  = "Configuration file (default: search XDG config dirs, /etc/smbsnap.toml, /etc/smb-snapshot.conf)"
	MsgFlagLogFile = "Log file (default: $XDG_STATE_HOME/smbsnap/smbsnap.log)"
	MsgFlagVerbose = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagDryRun  = "Log what would be done without changing anything"
	MsgFlagNoColor = "Disable colored output"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
