package kafka

import (
	"time"

	"botguard-srv/internal/normalizer"
)

// EngagementSamplesMessage is the payload on botguard.engagement.samples.
// One message carries a batch of raw samples for a single promoter/campaign.
type EngagementSamplesMessage struct {
	PromoterID string                 `json:"promoter_id"`
	CampaignID string                 `json:"campaign_id"`
	Samples    []normalizer.RawSample `json:"samples"`
	ScrapedAt  time.Time              `json:"scraped_at"`
}

// DetectionResultMessage is the payload published to botguard.detection.results.
type DetectionResultMessage struct {
	PromoterID  string    `json:"promoter_id"`
	CampaignID  string    `json:"campaign_id"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	BotScore    int       `json:"bot_score"`
	Action      string    `json:"action"`
	Reason      string    `json:"reason"`
	Confidence  int       `json:"confidence"`
	AnalyzedAt  time.Time `json:"analyzed_at"`
}
