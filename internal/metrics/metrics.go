// Package metrics exposes prometheus counters for the report pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "estatecrm",
		Name:      "roi_report_builds_total",
		Help:      "ROI report computations, by cache outcome.",
	}, []string{"cache"})

	ReportBuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "estatecrm",
		Name:      "roi_report_build_seconds",
		Help:      "Wall time of a full ROI report computation.",
		Buckets:   prometheus.DefBuckets,
	})

	DistributionBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "estatecrm",
		Name:      "distribution_builds_total",
		Help:      "Commission distribution reports computed.",
	})

	DistributionWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "estatecrm",
		Name:      "distribution_warnings_total",
		Help:      "Audit warnings raised on distribution reports.",
	}, []string{"code"})

	SweepLabeled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "estatecrm",
		Name:      "attribution_sweep_labeled_total",
		Help:      "Leads labeled by the attribution sweep.",
	})

	SnapshotRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "estatecrm",
		Name:      "roi_snapshot_runs_total",
		Help:      "ROI snapshot job runs, by result.",
	}, []string{"result"})
)
