package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"botguard-srv/internal/alerting/repository"
	"botguard-srv/internal/model"
	"botguard-srv/pkg/paginator"
)

// CreateAlert - Insert a new system alert.
func (r *implRepository) CreateAlert(ctx context.Context, opts repository.CreateAlertOptions) (model.SystemAlert, error) {
	query := `
		INSERT INTO botguard.system_alerts
			(id, severity, alert_type, promoter_id, campaign_id, bot_score, message, created_at, acknowledged)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
		RETURNING id, severity, alert_type, promoter_id, campaign_id, bot_score, message, created_at, acknowledged
	`

	var alert model.SystemAlert
	var severity string

	err := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.Severity, opts.Type, opts.PromoterID, opts.CampaignID,
		opts.BotScore, opts.Message, opts.CreatedAt,
	).Scan(
		&alert.ID, &severity, &alert.Type, &alert.PromoterID, &alert.CampaignID,
		&alert.BotScore, &alert.Message, &alert.CreatedAt, &alert.Acknowledged,
	)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.postgre.CreateAlert: Failed to insert alert: %v", err)
		return model.SystemAlert{}, repository.ErrAlertCreateFailed
	}

	alert.Severity = model.AlertSeverity(severity)
	return alert, nil
}

// GetAlertByID - Get alert by primary key.
func (r *implRepository) GetAlertByID(ctx context.Context, id string) (model.SystemAlert, error) {
	query := `
		SELECT id, severity, alert_type, promoter_id, campaign_id, bot_score, message,
		       created_at, acknowledged, acknowledged_by, acknowledged_at, resolved_at
		FROM botguard.system_alerts
		WHERE id = $1
	`

	alert, err := r.scanAlert(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.SystemAlert{}, repository.ErrAlertNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.postgre.GetAlertByID: Failed to get alert: %v", err)
		return model.SystemAlert{}, err
	}

	return alert, nil
}

// UpdateAcknowledged - Mark an alert as acknowledged. Resolved alerts are left untouched.
func (r *implRepository) UpdateAcknowledged(ctx context.Context, opts repository.UpdateAcknowledgedOptions) error {
	query := `
		UPDATE botguard.system_alerts
		SET acknowledged = TRUE, acknowledged_by = $2, acknowledged_at = $3
		WHERE id = $1 AND resolved_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, opts.AlertID, opts.AcknowledgedBy, opts.AcknowledgedAt)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.postgre.UpdateAcknowledged: Failed to update alert: %v", err)
		return repository.ErrAlertUpdateFailed
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return repository.ErrAlertUpdateFailed
	}
	if rows == 0 {
		return repository.ErrAlertNotFound
	}
	return nil
}

// UpdateResolved - Mark an alert as resolved. Terminal; resolving twice affects no rows.
func (r *implRepository) UpdateResolved(ctx context.Context, opts repository.UpdateResolvedOptions) error {
	query := `
		UPDATE botguard.system_alerts
		SET resolved_at = $2
		WHERE id = $1 AND resolved_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, opts.AlertID, opts.ResolvedAt)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.postgre.UpdateResolved: Failed to update alert: %v", err)
		return repository.ErrAlertUpdateFailed
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return repository.ErrAlertUpdateFailed
	}
	if rows == 0 {
		return repository.ErrAlertNotFound
	}
	return nil
}

// ListAlerts - List alerts with filters, newest first.
func (r *implRepository) ListAlerts(ctx context.Context, opts repository.ListAlertsOptions) ([]model.SystemAlert, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	where, args := buildListAlertsWhere(opts)

	countQuery := "SELECT COUNT(*) FROM botguard.system_alerts" + where
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "alerting.repository.postgre.ListAlerts: Failed to count alerts: %v", err)
		return nil, paginator.Paginator{}, err
	}

	query := fmt.Sprintf(`
		SELECT id, severity, alert_type, promoter_id, campaign_id, bot_score, message,
		       created_at, acknowledged, acknowledged_by, acknowledged_at, resolved_at
		FROM botguard.system_alerts%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.postgre.ListAlerts: Failed to query alerts: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	alerts := make([]model.SystemAlert, 0)
	for rows.Next() {
		alert, err := r.scanAlert(rows)
		if err != nil {
			r.l.Errorf(ctx, "alerting.repository.postgre.ListAlerts: Failed to scan alert: %v", err)
			return nil, paginator.Paginator{}, err
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, paginator.Paginator{}, err
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(alerts)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}
	return alerts, pag, nil
}

// CountAlerts - Registry counts for health derivation.
func (r *implRepository) CountAlerts(ctx context.Context) (repository.AlertCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE NOT acknowledged AND resolved_at IS NULL),
			COUNT(*) FILTER (WHERE NOT acknowledged AND resolved_at IS NULL AND severity = 'CRITICAL')
		FROM botguard.system_alerts
	`

	var counts repository.AlertCounts
	err := r.db.QueryRowContext(ctx, query).Scan(
		&counts.Total, &counts.Unacknowledged, &counts.UnacknowledgedCritical,
	)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.postgre.CountAlerts: Failed to count alerts: %v", err)
		return repository.AlertCounts{}, err
	}
	return counts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *implRepository) scanAlert(row rowScanner) (model.SystemAlert, error) {
	var alert model.SystemAlert
	var severity string
	var acknowledgedBy sql.NullString
	var acknowledgedAt, resolvedAt sql.NullTime

	err := row.Scan(
		&alert.ID, &severity, &alert.Type, &alert.PromoterID, &alert.CampaignID,
		&alert.BotScore, &alert.Message, &alert.CreatedAt, &alert.Acknowledged,
		&acknowledgedBy, &acknowledgedAt, &resolvedAt,
	)
	if err != nil {
		return model.SystemAlert{}, err
	}

	alert.Severity = model.AlertSeverity(severity)
	if acknowledgedBy.Valid {
		alert.AcknowledgedBy = acknowledgedBy.String
	}
	if acknowledgedAt.Valid {
		alert.AcknowledgedAt = &acknowledgedAt.Time
	}
	if resolvedAt.Valid {
		alert.ResolvedAt = &resolvedAt.Time
	}
	return alert, nil
}

func buildListAlertsWhere(opts repository.ListAlertsOptions) (string, []interface{}) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if opts.PromoterID != "" {
		args = append(args, opts.PromoterID)
		conditions = append(conditions, fmt.Sprintf("promoter_id = $%d", len(args)))
	}
	if opts.CampaignID != "" {
		args = append(args, opts.CampaignID)
		conditions = append(conditions, fmt.Sprintf("campaign_id = $%d", len(args)))
	}
	if opts.Severity != "" {
		args = append(args, opts.Severity)
		conditions = append(conditions, fmt.Sprintf("severity = $%d", len(args)))
	}
	if opts.Unacknowledged {
		conditions = append(conditions, "NOT acknowledged AND resolved_at IS NULL")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
