package repository

import (
	"context"
	"time"

	"botguard-srv/internal/model"
	"botguard-srv/pkg/paginator"
)

//go:generate mockery --name AlertRepository
type AlertRepository interface {
	CreateAlert(ctx context.Context, opts CreateAlertOptions) (model.SystemAlert, error)
	GetAlertByID(ctx context.Context, id string) (model.SystemAlert, error)
	UpdateAcknowledged(ctx context.Context, opts UpdateAcknowledgedOptions) error
	UpdateResolved(ctx context.Context, opts UpdateResolvedOptions) error
	ListAlerts(ctx context.Context, opts ListAlertsOptions) ([]model.SystemAlert, paginator.Paginator, error)
	CountAlerts(ctx context.Context) (AlertCounts, error)

	// InsertAnalysis appends one analysis verdict to the audit table.
	InsertAnalysis(ctx context.Context, a model.BotAnalysis) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	AlertRepository
}

//go:generate mockery --name CounterRepository
type CounterRepository interface {
	// IncrAlertCount atomically increments the per-entity notification
	// counter and returns the count within the current window.
	IncrAlertCount(ctx context.Context, promoterID, campaignID string, window time.Duration) (int64, error)
}

//go:generate mockery --name AuditRepository
type AuditRepository interface {
	AppendAnalysis(ctx context.Context, a model.BotAnalysis) error
	AppendNotification(ctx context.Context, alert model.SystemAlert) error
}
