package postgre

import (
	"context"
	"database/sql"
	"errors"

	"botguard-srv/internal/model"
	"botguard-srv/internal/monitoring/repository"
)

// InsertSummary persists one reporting period snapshot.
func (r *implRepository) InsertSummary(ctx context.Context, s model.DailySummary) error {
	query := `
		INSERT INTO botguard.daily_summaries
			(id, period_start, period_end, total_analyses, banned_count, warned_count, monitored_count,
			 average_score, alerts_emitted, alerts_suppressed, json_report_path, html_report_path, bucket_name, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.PeriodStart, s.PeriodEnd,
		s.TotalAnalyses, s.BannedCount, s.WarnedCount, s.MonitoredCount,
		s.AverageScore, s.AlertsEmitted, s.AlertsSuppressed,
		s.JSONReportPath, s.HTMLReportPath, s.BucketName, s.GeneratedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "monitoring.repository.postgre.InsertSummary: Failed to insert summary: %v", err)
		return repository.ErrSummaryWriteFailed
	}
	return nil
}

// GetLatestSummary returns the most recently generated summary.
func (r *implRepository) GetLatestSummary(ctx context.Context) (model.DailySummary, error) {
	query := `
		SELECT id, period_start, period_end, total_analyses, banned_count, warned_count, monitored_count,
		       average_score, alerts_emitted, alerts_suppressed, json_report_path, html_report_path, bucket_name, generated_at
		FROM botguard.daily_summaries
		ORDER BY generated_at DESC
		LIMIT 1
	`

	var s model.DailySummary
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.ID, &s.PeriodStart, &s.PeriodEnd,
		&s.TotalAnalyses, &s.BannedCount, &s.WarnedCount, &s.MonitoredCount,
		&s.AverageScore, &s.AlertsEmitted, &s.AlertsSuppressed,
		&s.JSONReportPath, &s.HTMLReportPath, &s.BucketName, &s.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DailySummary{}, repository.ErrSummaryNotFound
		}
		r.l.Errorf(ctx, "monitoring.repository.postgre.GetLatestSummary: Failed to query summary: %v", err)
		return model.DailySummary{}, err
	}
	return s, nil
}
