package consumer

import (
	"testing"
	"time"

	"botguard-srv/internal/model"
)

func TestToDetectionResultMessage(t *testing.T) {
	now := time.Now().UTC()
	a := model.BotAnalysis{
		PromoterID: "promoter-1",
		CampaignID: "campaign-1",
		AnalysisWindow: model.AnalysisWindow{
			Start: now.Add(-time.Hour),
			End:   now,
		},
		BotScore:   92,
		Action:     model.ActionBan,
		Reason:     "abnormal view:like ratio (100.0:1)",
		Confidence: 92,
		AnalyzedAt: now,
	}

	msg := toDetectionResultMessage(a)

	if msg.PromoterID != a.PromoterID {
		t.Errorf("PromoterID mismatch: got %s, want %s", msg.PromoterID, a.PromoterID)
	}
	if msg.CampaignID != a.CampaignID {
		t.Errorf("CampaignID mismatch: got %s, want %s", msg.CampaignID, a.CampaignID)
	}
	if !msg.WindowStart.Equal(a.AnalysisWindow.Start) || !msg.WindowEnd.Equal(a.AnalysisWindow.End) {
		t.Errorf("window mismatch: got [%v, %v], want [%v, %v]",
			msg.WindowStart, msg.WindowEnd, a.AnalysisWindow.Start, a.AnalysisWindow.End)
	}
	if msg.BotScore != a.BotScore {
		t.Errorf("BotScore mismatch: got %d, want %d", msg.BotScore, a.BotScore)
	}
	if msg.Action != string(model.ActionBan) {
		t.Errorf("Action mismatch: got %s, want %s", msg.Action, model.ActionBan)
	}
	if msg.Confidence != a.Confidence {
		t.Errorf("Confidence mismatch: got %d, want %d", msg.Confidence, a.Confidence)
	}
	if !msg.AnalyzedAt.Equal(a.AnalyzedAt) {
		t.Errorf("AnalyzedAt mismatch: got %v, want %v", msg.AnalyzedAt, a.AnalyzedAt)
	}
}
