package repository

import (
	"time"

	"botguard-srv/pkg/paginator"
)

type CreateAlertOptions struct {
	ID         string
	Severity   string
	Type       string
	PromoterID string
	CampaignID string
	BotScore   int
	Message    string
	CreatedAt  time.Time
}

type UpdateAcknowledgedOptions struct {
	AlertID        string
	AcknowledgedBy string
	AcknowledgedAt time.Time
}

type UpdateResolvedOptions struct {
	AlertID    string
	ResolvedAt time.Time
}

type ListAlertsOptions struct {
	PromoterID     string
	CampaignID     string
	Severity       string
	Unacknowledged bool
	PaginateQuery  paginator.PaginateQuery
}

// AlertCounts is the registry summary used for health derivation.
type AlertCounts struct {
	Total                  int64
	Unacknowledged         int64
	UnacknowledgedCritical int64
}
