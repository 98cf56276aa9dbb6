package model

import "time"

// DailySummary is a snapshot of the monitoring counters for one reporting period.
type DailySummary struct {
	ID          string    `json:"id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	TotalAnalyses  int64   `json:"total_analyses"`
	BannedCount    int64   `json:"banned_count"`
	WarnedCount    int64   `json:"warned_count"`
	MonitoredCount int64   `json:"monitored_count"`
	AverageScore   float64 `json:"average_score"`

	AlertsEmitted    int64 `json:"alerts_emitted"`
	AlertsSuppressed int64 `json:"alerts_suppressed"`

	// Generated artifacts
	JSONReportPath string `json:"json_report_path,omitempty"`
	HTMLReportPath string `json:"html_report_path,omitempty"`
	BucketName     string `json:"bucket_name,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// SystemHealth constants
const (
	HealthHealthy  = "HEALTHY"
	HealthWarning  = "WARNING"
	HealthCritical = "CRITICAL"
)

// SystemStatus is the introspection snapshot returned by the monitoring system.
type SystemStatus struct {
	Monitoring  MonitoringStatus  `json:"monitoring"`
	Alerts      AlertsStatus      `json:"alerts"`
	Performance PerformanceStatus `json:"performance"`
}

// MonitoringStatus describes the processing pipeline state.
type MonitoringStatus struct {
	Enabled      bool   `json:"enabled"`
	SystemHealth string `json:"system_health"` // HEALTHY | WARNING | CRITICAL
}

// AlertsStatus describes the alert registry state.
type AlertsStatus struct {
	Total                  int64 `json:"total"`
	Unacknowledged         int64 `json:"unacknowledged"`
	UnacknowledgedCritical int64 `json:"unacknowledged_critical"`
}

// PerformanceStatus describes pipeline throughput.
type PerformanceStatus struct {
	AverageProcessingMs float64 `json:"average_processing_ms"`
	ThroughputPerMinute float64 `json:"throughput_per_minute"`
	ErrorRate           float64 `json:"error_rate"`
}
