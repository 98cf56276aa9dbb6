package analysis

import "botguard-srv/internal/model"

type AnalyzeInput struct {
	PromoterID string
	CampaignID string
	Records    []model.ViewRecord
}
