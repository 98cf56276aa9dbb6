package http

import (
	"time"

	"botguard-srv/internal/model"
)

type statusResp struct {
	Monitoring  monitoringStatusResp  `json:"monitoring"`
	Alerts      alertsStatusResp      `json:"alerts"`
	Performance performanceStatusResp `json:"performance"`
}

type monitoringStatusResp struct {
	Enabled      bool   `json:"enabled"`
	SystemHealth string `json:"system_health"`
}

type alertsStatusResp struct {
	Total                  int64 `json:"total"`
	Unacknowledged         int64 `json:"unacknowledged"`
	UnacknowledgedCritical int64 `json:"unacknowledged_critical"`
}

type performanceStatusResp struct {
	AverageProcessingMs float64 `json:"average_processing_ms"`
	ThroughputPerMinute float64 `json:"throughput_per_minute"`
	ErrorRate           float64 `json:"error_rate"`
}

func newStatusResp(s model.SystemStatus) statusResp {
	return statusResp{
		Monitoring: monitoringStatusResp{
			Enabled:      s.Monitoring.Enabled,
			SystemHealth: s.Monitoring.SystemHealth,
		},
		Alerts: alertsStatusResp{
			Total:                  s.Alerts.Total,
			Unacknowledged:         s.Alerts.Unacknowledged,
			UnacknowledgedCritical: s.Alerts.UnacknowledgedCritical,
		},
		Performance: performanceStatusResp{
			AverageProcessingMs: s.Performance.AverageProcessingMs,
			ThroughputPerMinute: s.Performance.ThroughputPerMinute,
			ErrorRate:           s.Performance.ErrorRate,
		},
	}
}

type summaryResp struct {
	ID               string    `json:"id"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	TotalAnalyses    int64     `json:"total_analyses"`
	BannedCount      int64     `json:"banned_count"`
	WarnedCount      int64     `json:"warned_count"`
	MonitoredCount   int64     `json:"monitored_count"`
	AverageScore     float64   `json:"average_score"`
	AlertsEmitted    int64     `json:"alerts_emitted"`
	AlertsSuppressed int64     `json:"alerts_suppressed"`
	JSONReportPath   string    `json:"json_report_path,omitempty"`
	HTMLReportPath   string    `json:"html_report_path,omitempty"`
	BucketName       string    `json:"bucket_name,omitempty"`
	GeneratedAt      time.Time `json:"generated_at"`
}

func newSummaryResp(s model.DailySummary) summaryResp {
	return summaryResp{
		ID:               s.ID,
		PeriodStart:      s.PeriodStart,
		PeriodEnd:        s.PeriodEnd,
		TotalAnalyses:    s.TotalAnalyses,
		BannedCount:      s.BannedCount,
		WarnedCount:      s.WarnedCount,
		MonitoredCount:   s.MonitoredCount,
		AverageScore:     s.AverageScore,
		AlertsEmitted:    s.AlertsEmitted,
		AlertsSuppressed: s.AlertsSuppressed,
		JSONReportPath:   s.JSONReportPath,
		HTMLReportPath:   s.HTMLReportPath,
		BucketName:       s.BucketName,
		GeneratedAt:      s.GeneratedAt,
	}
}
