package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/arthur-debert/smbsnap/pkg/ui/styles"
	"github.com/docker/go-units"
	"github.com/pterm/pterm"
)

// RenderRunSummary renders the outcome of a run as a table followed by the
// overall result line.
func RenderRunSummary(result *types.RunResult) (string, error) {
	var b strings.Builder

	header := fmt.Sprintf("Snapshot %s", styles.Render("Snapshot", result.Snapshot))
	if result.DryRun {
		b.WriteString(styles.Render("DryRunBanner", "DRY RUN: nothing was changed"))
		b.WriteString("\n")
	}
	b.WriteString(styles.Render("Header", header))
	b.WriteString("\n")

	if result.Aborted {
		b.WriteString(styles.Render("Error", "Pre-exec command failed, no share was processed"))
		b.WriteString("\n")
	}

	if len(result.Shares) > 0 {
		data := pterm.TableData{{"Share", "Status", "Mode", "Snapshots", "Pruned", "Note"}}
		for _, s := range result.Shares {
			data = append(data, []string{
				s.Share.Name,
				StatusStyle(s.Status).Sprint(statusLabel(s.Status, result.DryRun)),
				string(s.Mode),
				retained(s),
				strconv.Itoa(len(s.Removed)),
				s.Message,
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return "", err
		}
		b.WriteString(table)
		b.WriteString("\n")
	}

	for _, e := range result.Errors {
		b.WriteString(styles.Render("Error", "error: ") + e + "\n")
	}

	took := units.HumanDuration(result.Duration)
	if result.Success() {
		b.WriteString(styles.Render("Success", "smb-snapshots finished!"))
	} else {
		b.WriteString(styles.Render("Error", "smb-snapshots finished with errors!"))
	}
	b.WriteString(styles.Render("Muted", fmt.Sprintf(" (%s, run %s)", took, result.RunID)))
	b.WriteString("\n")

	return b.String(), nil
}

func retained(s types.ShareResult) string {
	switch s.Status {
	case types.ShareMissing, types.ShareError, types.ShareSkipped:
		return "-"
	}
	return strconv.Itoa(s.Retained())
}
