package http

import (
	"testing"
	"time"

	"botguard-srv/internal/model"
)

func TestNewAnalyzeResp(t *testing.T) {
	now := time.Now().UTC()
	a := model.BotAnalysis{
		PromoterID: "promoter-1",
		CampaignID: "campaign-1",
		AnalysisWindow: model.AnalysisWindow{
			Start: now.Add(-30 * time.Minute),
			End:   now,
		},
		Metrics: model.BotMetrics{
			AvgViewsPerMinute: 500,
			ViewLikeRatio:     100,
			SpikeDetected:     true,
			SpikePercentage:   650,
			TotalViews:        15000,
			TotalLikes:        150,
		},
		BotScore:   75,
		Action:     model.ActionWarning,
		Reason:     "abnormal view:like ratio (100.0:1)",
		Confidence: 75,
		AnalyzedAt: now,
	}

	h := &handler{}
	resp := h.newAnalyzeResp(a)

	if resp.PromoterID != a.PromoterID {
		t.Errorf("PromoterID mismatch: got %s, want %s", resp.PromoterID, a.PromoterID)
	}
	if resp.BotScore != a.BotScore {
		t.Errorf("BotScore mismatch: got %d, want %d", resp.BotScore, a.BotScore)
	}
	if resp.Confidence != a.Confidence {
		t.Errorf("Confidence mismatch: got %d, want %d", resp.Confidence, a.Confidence)
	}
	if resp.Action != string(model.ActionWarning) {
		t.Errorf("Action mismatch: got %s, want %s", resp.Action, model.ActionWarning)
	}
	if !resp.Metrics.SpikeDetected {
		t.Error("SpikeDetected mismatch: got false, want true")
	}
	if resp.Metrics.TotalViews != a.Metrics.TotalViews {
		t.Errorf("TotalViews mismatch: got %d, want %d", resp.Metrics.TotalViews, a.Metrics.TotalViews)
	}
}
