package projects

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "repodeck",
		Name:      "pass_duration_seconds",
		Help:      "Wall-clock duration of one full classification pass.",
		Buckets:   prometheus.DefBuckets,
	})

	statusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "repodeck",
		Name:      "project_status_total",
		Help:      "Classification outcomes per project, by status label.",
	}, []string{"status"})
)
