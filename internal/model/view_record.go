package model

import "time"

// Platform constants
const (
	PlatformTikTok    = "tiktok"
	PlatformInstagram = "instagram"
)

// ViewRecord is a normalized engagement sample for one piece of promoted
// content at one point in time.
type ViewRecord struct {
	ID         string `json:"id"`
	PromoterID string `json:"promoter_id"`
	CampaignID string `json:"campaign_id"`
	Platform   string `json:"platform"` // tiktok | instagram
	ContentID  string `json:"content_id"`

	// Engagement counters at sample time
	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	ShareCount   int64 `json:"share_count"`

	Timestamp time.Time `json:"timestamp"`
}
