package display

import (
	"errors"
	"testing"
	"time"

	"github.com/arthur-debert/smbsnap/pkg/diskinfo"
	"github.com/arthur-debert/smbsnap/pkg/snapshot"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	SetColor(false)
}

func newResult(dryRun bool) *types.RunResult {
	r := types.NewRunResult("01HQZ", "@GMT-2024.03.01-12.00.00", dryRun, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	r.Duration = 3 * time.Minute
	r.AddShare(types.ShareResult{
		Share:      types.NewShare("Public", "/srv/shares", "/srv/snapshots"),
		Status:     types.ShareSynced,
		Mode:       types.SyncIncremental,
		PriorCount: 3,
		Removed:    []string{"@GMT-2024.01.01-00.00.00"},
	})
	r.AddShare(types.ShareResult{
		Share:   types.NewShare("Media", "/srv/shares", "/srv/snapshots"),
		Status:  types.ShareMissing,
		Message: "share not found",
	})
	return r
}

func TestRenderRunSummary_Success(t *testing.T) {
	out, err := RenderRunSummary(newResult(false))
	require.NoError(t, err)

	assert.Contains(t, out, "@GMT-2024.03.01-12.00.00")
	assert.Contains(t, out, "Public")
	assert.Contains(t, out, "synced")
	assert.Contains(t, out, "incremental")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "smb-snapshots finished!")
	assert.Contains(t, out, "run 01HQZ")
	assert.NotContains(t, out, "DRY RUN")
}

func TestRenderRunSummary_DryRunAndFailure(t *testing.T) {
	r := newResult(true)
	r.RecordError(errors.New("cannot remove snapshot"))

	out, err := RenderRunSummary(r)
	require.NoError(t, err)

	assert.Contains(t, out, "DRY RUN")
	assert.Contains(t, out, "would sync")
	assert.Contains(t, out, "error: cannot remove snapshot")
	assert.Contains(t, out, "smb-snapshots finished with errors!")
}

func TestRenderRunSummary_Aborted(t *testing.T) {
	r := types.NewRunResult("01HQZ", "@GMT-2024.03.01-12.00.00", false, time.Now())
	r.Aborted = true
	r.RecordCommand(types.CommandOutcome{Command: types.ShellLine("false")})

	out, err := RenderRunSummary(r)
	require.NoError(t, err)
	assert.Contains(t, out, "Pre-exec command failed")
}

func TestRenderSnapshotList(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	listings := []ShareListing{
		{Share: "Public", Set: snapshot.Set{Exists: true, Names: []string{"@GMT-2024.02.29-12.00.00", "@GMT-2024.03.01-10.00.00"}}},
		{Share: "Media", Set: snapshot.Set{}},
		{Share: "Broken", Err: errors.New("snapshot root is not a directory")},
	}
	usage := &diskinfo.Usage{Path: "/srv/snapshots", Total: 100 << 30, Available: 25 << 30}

	out := RenderSnapshotList(listings, now, usage)

	assert.Contains(t, out, "SHARE")
	assert.Contains(t, out, "@GMT-2024.02.29-12.00.00")
	assert.Contains(t, out, "24 hours ago")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "(no snapshots)")
	assert.Contains(t, out, "snapshot root is not a directory")
	assert.Contains(t, out, "75% used")
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "synced", statusLabel(types.ShareSynced, false))
	assert.Equal(t, "would sync", statusLabel(types.ShareSynced, true))
	assert.Equal(t, "sync failed", statusLabel(types.ShareSyncFailed, false))
	assert.Equal(t, "skipped", statusLabel(types.ShareSkipped, false))
}
