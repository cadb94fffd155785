package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(dryRun bool) *types.RunResult {
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := types.NewRunResult("01HQ", "@GMT-2024.03.01-12.00.00", dryRun, started)
	r.Duration = 90 * time.Second
	r.AddShare(types.ShareResult{
		Share:      types.NewShare("A", "/srv/shares", "/srv/snapshots"),
		Status:     types.ShareSynced,
		PriorCount: 3,
		Removed:    []string{"@GMT-2024.01.01-00.00.00"},
	})
	r.AddShare(types.ShareResult{
		Share:  types.NewShare("B", "/srv/shares", "/srv/snapshots"),
		Status: types.ShareMissing,
	})
	r.AddShare(types.ShareResult{
		Share:      types.NewShare("C", "/srv/shares", "/srv/snapshots"),
		Status:     types.ShareSyncFailed,
		PriorCount: 2,
	})
	r.RecordCommand(types.CommandOutcome{Command: types.Argv("rsync"), Success: false})
	return r
}

func TestRegistry(t *testing.T) {
	reg := Registry(sampleResult(false))

	count, err := testutil.GatherAndCount(reg, "smbsnap_share_snapshots")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "missing shares are not reported")

	count, err = testutil.GatherAndCount(reg, "smbsnap_last_run_success")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textfile", "smbsnap.prom")

	require.NoError(t, WriteTextfile(path, sampleResult(false)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "smbsnap_last_run_success 0")
	assert.Contains(t, content, "smbsnap_run_duration_seconds 90")
	assert.Contains(t, content, `smbsnap_share_snapshots{share="A"} 3`)
	assert.Contains(t, content, `smbsnap_share_pruned{share="A"} 1`)
	assert.Contains(t, content, `smbsnap_share_sync_success{share="A"} 1`)
	assert.Contains(t, content, `smbsnap_share_sync_success{share="C"} 0`)
	assert.Contains(t, content, `smbsnap_share_snapshots{share="C"} 2`)
	assert.NotContains(t, content, `share="B"`)
}

func TestWriteTextfile_SkipsDryRunAndEmptyPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smbsnap.prom")

	require.NoError(t, WriteTextfile(path, sampleResult(true)))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, WriteTextfile("", sampleResult(false)))
}
