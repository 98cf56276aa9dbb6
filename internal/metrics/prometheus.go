package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesProcessed counts analyses fed through the pipeline, by action tier.
	AnalysesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "botguard_analyses_processed_total",
			Help: "Total number of bot analyses processed, by action tier",
		},
		[]string{"action"},
	)

	// AnalysisLatency tracks end-to-end processing latency per analysis.
	AnalysisLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "botguard_analysis_latency_seconds",
			Help:    "Bot analysis processing latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// AlertsEmitted counts notifications that passed the frequency gate, by severity.
	AlertsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "botguard_alerts_emitted_total",
			Help: "Total number of alerts emitted, by severity",
		},
		[]string{"severity"},
	)

	// AlertsSuppressed counts notifications dropped by the frequency gate.
	AlertsSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "botguard_alerts_suppressed_total",
			Help: "Total number of alerts suppressed by frequency limiting",
		},
	)

	// ProcessingErrors counts pipeline failures (audit write, persistence, channels).
	ProcessingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "botguard_processing_errors_total",
			Help: "Total number of pipeline processing errors, by stage",
		},
		[]string{"stage"},
	)

	// UnacknowledgedCritical tracks critical alerts awaiting operator action.
	UnacknowledgedCritical = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "botguard_unacknowledged_critical_alerts",
			Help: "Number of critical alerts not yet acknowledged",
		},
	)

	// SamplesConsumed counts engagement samples consumed from Kafka.
	SamplesConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "botguard_samples_consumed_total",
			Help: "Total number of engagement samples consumed",
		},
	)
)
