package display

import (
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/pterm/pterm"
)

// StatusStyle returns the pterm style of a share status
func StatusStyle(status types.ShareStatus) *pterm.Style {
	switch status {
	case types.ShareSynced:
		return pterm.NewStyle(pterm.FgGreen)
	case types.ShareSyncFailed, types.ShareError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case types.ShareMissing:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// statusLabel is what a status reads as in the summary
func statusLabel(status types.ShareStatus, dryRun bool) string {
	switch status {
	case types.ShareSynced:
		if dryRun {
			return "would sync"
		}
		return "synced"
	case types.ShareSyncFailed:
		return "sync failed"
	case types.ShareMissing:
		return "not found"
	case types.ShareError:
		return "error"
	default:
		return string(status)
	}
}
