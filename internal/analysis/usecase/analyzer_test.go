package usecase

import (
	"context"
	"testing"
	"time"

	"botguard-srv/internal/analysis"
	"botguard-srv/internal/model"
	"botguard-srv/pkg/log"
)

func newTestUseCase() analysis.UseCase {
	return New(log.NewNoop(), Config{})
}

func record(views, likes, comments int64, ts time.Time) model.ViewRecord {
	return model.ViewRecord{
		PromoterID:   "promoter-1",
		CampaignID:   "campaign-1",
		Platform:     model.PlatformTikTok,
		ViewCount:    views,
		LikeCount:    likes,
		CommentCount: comments,
		Timestamp:    ts,
	}
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	t.Run("empty input yields zero score and action none", func(t *testing.T) {
		uc := newTestUseCase()

		a := uc.Analyze(ctx, analysis.AnalyzeInput{PromoterID: "promoter-1", CampaignID: "campaign-1"})

		if a.BotScore != 0 {
			t.Errorf("BotScore mismatch: got %d, want 0", a.BotScore)
		}
		if a.Action != model.ActionNone {
			t.Errorf("Action mismatch: got %s, want %s", a.Action, model.ActionNone)
		}
		if a.AnalysisWindow.Start.IsZero() || a.AnalysisWindow.End.IsZero() {
			t.Error("empty input should collapse the window to the current instant")
		}
	})

	t.Run("abnormal view:like ratio flags at least monitor", func(t *testing.T) {
		uc := newTestUseCase()

		a := uc.Analyze(ctx, analysis.AnalyzeInput{
			PromoterID: "promoter-1",
			CampaignID: "campaign-1",
			Records:    []model.ViewRecord{record(1000, 10, 1, base)},
		})

		if a.Action == model.ActionNone {
			t.Errorf("abnormal ratio should not classify as none (score %d)", a.BotScore)
		}
		if a.Action == model.ActionBan {
			t.Errorf("single signal should not reach ban tier (score %d)", a.BotScore)
		}
		if a.Metrics.ViewLikeRatio != 100 {
			t.Errorf("ViewLikeRatio mismatch: got %.1f, want 100", a.Metrics.ViewLikeRatio)
		}
		if a.Reason == "" {
			t.Error("Reason should name the dominant signal")
		}
	})

	t.Run("clean engagement classifies as none", func(t *testing.T) {
		uc := newTestUseCase()

		a := uc.Analyze(ctx, analysis.AnalyzeInput{
			PromoterID: "promoter-1",
			CampaignID: "campaign-1",
			Records:    []model.ViewRecord{record(1000, 100, 10, base)},
		})

		if a.Action != model.ActionNone {
			t.Errorf("Action mismatch: got %s, want %s (score %d)", a.Action, model.ActionNone, a.BotScore)
		}
		if a.BotScore >= defaultMonitorThreshold {
			t.Errorf("clean input should score below monitor threshold, got %d", a.BotScore)
		}
	})

	t.Run("spike detection within window", func(t *testing.T) {
		uc := newTestUseCase()

		records := []model.ViewRecord{
			record(100, 10, 2, base),
			record(120, 12, 2, base.Add(1*time.Minute)),
			record(5000, 15, 2, base.Add(2*time.Minute)),
		}
		a := uc.Analyze(ctx, analysis.AnalyzeInput{
			PromoterID: "promoter-1",
			CampaignID: "campaign-1",
			Records:    records,
		})

		if !a.Metrics.SpikeDetected {
			t.Fatal("spike should be detected")
		}
		if a.Metrics.SpikePercentage <= 0 {
			t.Errorf("SpikePercentage should be positive, got %.1f", a.Metrics.SpikePercentage)
		}
	})

	t.Run("no spike outside configured window", func(t *testing.T) {
		uc := newTestUseCase()

		records := []model.ViewRecord{
			record(100, 10, 2, base),
			record(5000, 15, 2, base.Add(2*time.Hour)),
		}
		a := uc.Analyze(ctx, analysis.AnalyzeInput{
			PromoterID: "promoter-1",
			CampaignID: "campaign-1",
			Records:    records,
		})

		if a.Metrics.SpikeDetected {
			t.Error("spike outside the window should not be flagged")
		}
	})

	t.Run("zero likes and comments guarded", func(t *testing.T) {
		uc := newTestUseCase()

		a := uc.Analyze(ctx, analysis.AnalyzeInput{
			PromoterID: "promoter-1",
			CampaignID: "campaign-1",
			Records:    []model.ViewRecord{record(1000, 0, 0, base)},
		})

		if a.Metrics.ViewLikeRatio != 1000 {
			t.Errorf("ViewLikeRatio mismatch: got %.1f, want 1000", a.Metrics.ViewLikeRatio)
		}
		if a.BotScore < 0 || a.BotScore > 100 {
			t.Errorf("BotScore out of range: %d", a.BotScore)
		}
	})

	t.Run("score always in range and action monotone", func(t *testing.T) {
		uc := newTestUseCase()

		inputs := [][]model.ViewRecord{
			nil,
			{record(0, 0, 0, base)},
			{record(10, 5, 1, base)},
			{record(1000, 10, 1, base)},
			{record(100, 10, 2, base), record(90_000, 20, 3, base.Add(time.Minute))},
			{record(1_000_000_000, 1, 0, base), record(1_000_000_000, 1, 0, base.Add(time.Minute))},
		}

		tierRank := map[model.ActionTier]int{
			model.ActionNone:    0,
			model.ActionMonitor: 1,
			model.ActionWarning: 2,
			model.ActionBan:     3,
		}

		type verdict struct {
			score int
			rank  int
		}
		verdicts := make([]verdict, 0, len(inputs))
		for _, records := range inputs {
			a := uc.Analyze(ctx, analysis.AnalyzeInput{
				PromoterID: "promoter-1",
				CampaignID: "campaign-1",
				Records:    records,
			})
			if a.BotScore < 0 || a.BotScore > 100 {
				t.Fatalf("BotScore out of range: %d", a.BotScore)
			}
			if _, ok := tierRank[a.Action]; !ok {
				t.Fatalf("unknown action tier: %s", a.Action)
			}
			verdicts = append(verdicts, verdict{score: a.BotScore, rank: tierRank[a.Action]})
		}

		for i := range verdicts {
			for j := range verdicts {
				if verdicts[i].score > verdicts[j].score && verdicts[i].rank < verdicts[j].rank {
					t.Errorf("monotonicity violated: score %d rank %d vs score %d rank %d",
						verdicts[i].score, verdicts[i].rank, verdicts[j].score, verdicts[j].rank)
				}
			}
		}
	})

	t.Run("ban requires corroborating signals", func(t *testing.T) {
		uc := newTestUseCase()

		// Extreme ratio, spike and velocity together.
		records := []model.ViewRecord{
			record(1000, 1, 0, base),
			record(1200, 1, 0, base.Add(time.Minute)),
			record(500_000, 2, 0, base.Add(2*time.Minute)),
		}
		a := uc.Analyze(ctx, analysis.AnalyzeInput{
			PromoterID: "promoter-1",
			CampaignID: "campaign-1",
			Records:    records,
		})

		if a.Action != model.ActionBan {
			t.Errorf("combined extreme signals should reach ban tier, got %s (score %d)", a.Action, a.BotScore)
		}
		if !a.Metrics.SpikeDetected {
			t.Error("spike should corroborate the verdict")
		}
	})

	t.Run("confidence mirrors score", func(t *testing.T) {
		uc := newTestUseCase()

		a := uc.Analyze(ctx, analysis.AnalyzeInput{
			PromoterID: "promoter-1",
			CampaignID: "campaign-1",
			Records:    []model.ViewRecord{record(1000, 10, 1, base)},
		})

		if a.Confidence != a.BotScore {
			t.Errorf("Confidence mismatch: got %d, want %d", a.Confidence, a.BotScore)
		}
	})
}
