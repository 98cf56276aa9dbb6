package alerting

import (
	"botguard-srv/internal/model"
	"botguard-srv/pkg/paginator"
)

// ProcessOutput reports what ProcessAnalysis did with a verdict.
type ProcessOutput struct {
	Audited    bool               `json:"audited"`
	Emitted    bool               `json:"emitted"`
	Suppressed bool               `json:"suppressed"`
	Alert      *model.SystemAlert `json:"alert,omitempty"`
}

type AcknowledgeInput struct {
	AlertID string
}

type ResolveInput struct {
	AlertID string
}

type ListAlertsInput struct {
	PromoterID     string
	CampaignID     string
	Severity       string
	Unacknowledged bool
	PaginateQuery  paginator.PaginateQuery
}

type ListAlertsOutput struct {
	Alerts    []model.SystemAlert
	Paginator paginator.Paginator
}
