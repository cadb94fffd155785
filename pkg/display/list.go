package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/smbsnap/pkg/diskinfo"
	"github.com/arthur-debert/smbsnap/pkg/snapshot"
	"github.com/arthur-debert/smbsnap/pkg/ui/styles"
	"github.com/docker/go-units"
	"github.com/gosuri/uitable"
)

// ShareListing is the snapshot set of one share, or why it could not be read
type ShareListing struct {
	Share string
	Set   snapshot.Set
	Err   error
}

// RenderSnapshotList renders one row per snapshot with its age relative to now
func RenderSnapshotList(listings []ShareListing, now time.Time, usage *diskinfo.Usage) string {
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("SHARE", "SNAPSHOT", "AGE")

	for _, l := range listings {
		switch {
		case l.Err != nil:
			table.AddRow(l.Share, styles.Render("Error", l.Err.Error()), "")
		case !l.Set.Exists || l.Set.Len() == 0:
			table.AddRow(l.Share, styles.Render("Muted", "(no snapshots)"), "")
		default:
			for _, name := range l.Set.Names {
				table.AddRow(l.Share, name, age(name, now))
			}
		}
	}

	var b strings.Builder
	b.WriteString(table.String())
	b.WriteString("\n")

	if usage != nil {
		b.WriteString(styles.Render("Muted", fmt.Sprintf("%s: %s (%.0f%% used)", usage.Path, usage, usage.Used())))
		b.WriteString("\n")
	}
	return b.String()
}

func age(name string, now time.Time) string {
	t, err := snapshot.Parse(name)
	if err != nil {
		return ""
	}
	return units.HumanDuration(now.Sub(t)) + " ago"
}
