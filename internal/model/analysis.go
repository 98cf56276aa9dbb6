package model

import "time"

// ActionTier is the classification verdict of one analysis.
type ActionTier string

const (
	ActionNone    ActionTier = "none"
	ActionMonitor ActionTier = "monitor"
	ActionWarning ActionTier = "warning"
	ActionBan     ActionTier = "ban"
)

// AnalysisWindow is the time span covered by one analysis.
type AnalysisWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Minutes returns the window duration in minutes with a floor of 1 to keep
// per-minute averages finite on near-simultaneous samples.
func (w AnalysisWindow) Minutes() float64 {
	minutes := w.End.Sub(w.Start).Minutes()
	if minutes < 1 {
		return 1
	}
	return minutes
}

// BotMetrics is the derived aggregate over an analysis window.
// Computed fresh per analysis; never mutated after creation.
type BotMetrics struct {
	AvgViewsPerMinute    float64 `json:"avg_views_per_minute"`
	AvgLikesPerMinute    float64 `json:"avg_likes_per_minute"`
	AvgCommentsPerMinute float64 `json:"avg_comments_per_minute"`

	ViewLikeRatio    float64 `json:"view_like_ratio"`
	ViewCommentRatio float64 `json:"view_comment_ratio"`

	SpikeDetected   bool    `json:"spike_detected"`
	SpikePercentage float64 `json:"spike_percentage,omitempty"`

	TotalViews    int64 `json:"total_views"`
	TotalLikes    int64 `json:"total_likes"`
	TotalComments int64 `json:"total_comments"`
}

// BotAnalysis is the scoring verdict for one promoter/campaign pair.
// Immutable once created.
type BotAnalysis struct {
	PromoterID     string         `json:"promoter_id"`
	CampaignID     string         `json:"campaign_id"`
	AnalysisWindow AnalysisWindow `json:"analysis_window"`
	Metrics        BotMetrics     `json:"metrics"`

	BotScore   int        `json:"bot_score"` // 0-100
	Action     ActionTier `json:"action"`
	Reason     string     `json:"reason"`
	Confidence int        `json:"confidence"` // mirrors BotScore

	AnalyzedAt time.Time `json:"analyzed_at"`
}
