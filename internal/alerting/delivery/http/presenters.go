package http

import (
	"time"

	"botguard-srv/internal/alerting"
	"botguard-srv/internal/model"
	"botguard-srv/pkg/paginator"
)

type listAlertsReq struct {
	PromoterID     string `form:"promoter_id"`
	CampaignID     string `form:"campaign_id"`
	Severity       string `form:"severity"`
	Unacknowledged bool   `form:"unacknowledged"`
	paginator.PaginateQuery
}

func (req listAlertsReq) toInput() alerting.ListAlertsInput {
	return alerting.ListAlertsInput{
		PromoterID:     req.PromoterID,
		CampaignID:     req.CampaignID,
		Severity:       req.Severity,
		Unacknowledged: req.Unacknowledged,
		PaginateQuery:  req.PaginateQuery,
	}
}

type alertItem struct {
	ID             string     `json:"id"`
	Severity       string     `json:"severity"`
	Type           string     `json:"type"`
	PromoterID     string     `json:"promoter_id"`
	CampaignID     string     `json:"campaign_id"`
	BotScore       int        `json:"bot_score"`
	Message        string     `json:"message"`
	CreatedAt      time.Time  `json:"created_at"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy string     `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

func newAlertItem(a model.SystemAlert) alertItem {
	return alertItem{
		ID:             a.ID,
		Severity:       string(a.Severity),
		Type:           a.Type,
		PromoterID:     a.PromoterID,
		CampaignID:     a.CampaignID,
		BotScore:       a.BotScore,
		Message:        a.Message,
		CreatedAt:      a.CreatedAt,
		Acknowledged:   a.Acknowledged,
		AcknowledgedBy: a.AcknowledgedBy,
		AcknowledgedAt: a.AcknowledgedAt,
		ResolvedAt:     a.ResolvedAt,
	}
}

type listAlertsResp struct {
	Alerts    []alertItem                 `json:"alerts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListAlertsResp(o alerting.ListAlertsOutput) listAlertsResp {
	items := make([]alertItem, 0, len(o.Alerts))
	for _, a := range o.Alerts {
		items = append(items, newAlertItem(a))
	}

	return listAlertsResp{
		Alerts:    items,
		Paginator: o.Paginator.ToResponse(),
	}
}

type alertStateResp struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
}
