package http

import (
	"time"

	"botguard-srv/internal/analysis"
	"botguard-srv/internal/model"
)

type viewRecordReq struct {
	ID           string    `json:"id"`
	Platform     string    `json:"platform"`
	ContentID    string    `json:"content_id"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	ShareCount   int64     `json:"share_count"`
	Timestamp    time.Time `json:"timestamp" binding:"required"`
}

type analyzeReq struct {
	PromoterID string          `json:"promoter_id" binding:"required"`
	CampaignID string          `json:"campaign_id" binding:"required"`
	Records    []viewRecordReq `json:"records"`

	// Process feeds the verdict through the alerting pipeline as well.
	Process bool `json:"process,omitempty"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	records := make([]model.ViewRecord, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, model.ViewRecord{
			ID:           rec.ID,
			PromoterID:   r.PromoterID,
			CampaignID:   r.CampaignID,
			Platform:     rec.Platform,
			ContentID:    rec.ContentID,
			ViewCount:    rec.ViewCount,
			LikeCount:    rec.LikeCount,
			CommentCount: rec.CommentCount,
			ShareCount:   rec.ShareCount,
			Timestamp:    rec.Timestamp,
		})
	}
	return analysis.AnalyzeInput{
		PromoterID: r.PromoterID,
		CampaignID: r.CampaignID,
		Records:    records,
	}
}

type metricsResp struct {
	AvgViewsPerMinute    float64 `json:"avg_views_per_minute"`
	AvgLikesPerMinute    float64 `json:"avg_likes_per_minute"`
	AvgCommentsPerMinute float64 `json:"avg_comments_per_minute"`
	ViewLikeRatio        float64 `json:"view_like_ratio"`
	ViewCommentRatio     float64 `json:"view_comment_ratio"`
	SpikeDetected        bool    `json:"spike_detected"`
	SpikePercentage      float64 `json:"spike_percentage,omitempty"`
	TotalViews           int64   `json:"total_views"`
	TotalLikes           int64   `json:"total_likes"`
	TotalComments        int64   `json:"total_comments"`
}

type analyzeResp struct {
	PromoterID  string      `json:"promoter_id"`
	CampaignID  string      `json:"campaign_id"`
	WindowStart time.Time   `json:"window_start"`
	WindowEnd   time.Time   `json:"window_end"`
	Metrics     metricsResp `json:"metrics"`
	BotScore    int         `json:"bot_score"`
	Action      string      `json:"action"`
	Reason      string      `json:"reason"`
	Confidence  int         `json:"confidence"`
}

func (h *handler) newAnalyzeResp(a model.BotAnalysis) analyzeResp {
	return analyzeResp{
		PromoterID:  a.PromoterID,
		CampaignID:  a.CampaignID,
		WindowStart: a.AnalysisWindow.Start,
		WindowEnd:   a.AnalysisWindow.End,
		Metrics: metricsResp{
			AvgViewsPerMinute:    a.Metrics.AvgViewsPerMinute,
			AvgLikesPerMinute:    a.Metrics.AvgLikesPerMinute,
			AvgCommentsPerMinute: a.Metrics.AvgCommentsPerMinute,
			ViewLikeRatio:        a.Metrics.ViewLikeRatio,
			ViewCommentRatio:     a.Metrics.ViewCommentRatio,
			SpikeDetected:        a.Metrics.SpikeDetected,
			SpikePercentage:      a.Metrics.SpikePercentage,
			TotalViews:           a.Metrics.TotalViews,
			TotalLikes:           a.Metrics.TotalLikes,
			TotalComments:        a.Metrics.TotalComments,
		},
		BotScore:   a.BotScore,
		Action:     string(a.Action),
		Reason:     a.Reason,
		Confidence: a.Confidence,
	}
}
