// Package metrics writes the outcome of a run as a Prometheus textfile,
// to be picked up by the node_exporter textfile collector.
package metrics

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smbsnap"

// Registry builds a registry holding the gauges describing result
func Registry(result *types.RunResult) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	success := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_success",
		Help:      "Whether the last snapshot run finished without errors.",
	})
	timestamp := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Start time of the last snapshot run.",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of the last snapshot run.",
	})
	snapshots := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "share_snapshots",
		Help:      "Snapshots held by a share after the last run.",
	}, []string{"share"})
	pruned := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "share_pruned",
		Help:      "Snapshots removed from a share by the last run.",
	}, []string{"share"})
	synced := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "share_sync_success",
		Help:      "Whether the last run created a snapshot of the share.",
	}, []string{"share"})

	reg.MustRegister(success, timestamp, duration, snapshots, pruned, synced)

	if result.Success() {
		success.Set(1)
	}
	timestamp.Set(float64(result.StartedAt.Unix()))
	duration.Set(result.Duration.Seconds())

	for _, s := range result.Shares {
		if s.Status == types.ShareMissing || s.Status == types.ShareSkipped {
			continue
		}
		name := s.Share.Name
		snapshots.WithLabelValues(name).Set(float64(s.Retained()))
		pruned.WithLabelValues(name).Set(float64(len(s.Removed)))
		if s.Status == types.ShareSynced {
			synced.WithLabelValues(name).Set(1)
		} else {
			synced.WithLabelValues(name).Set(0)
		}
	}

	return reg
}

// WriteTextfile writes result to path atomically. Dry runs are not reported.
func WriteTextfile(path string, result *types.RunResult) error {
	if path == "" || result.DryRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create metrics directory for %s", path)
	}
	if err := prometheus.WriteToTextfile(path, Registry(result)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write metrics textfile %s", path).
			WithDetail("path", path)
	}
	return nil
}
