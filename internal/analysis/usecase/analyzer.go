package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"botguard-srv/internal/analysis"
	"botguard-srv/internal/model"
)

// Analyze computes the bot verdict for one promoter/campaign pair.
func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) model.BotAnalysis {
	now := time.Now().UTC()

	result := model.BotAnalysis{
		PromoterID: input.PromoterID,
		CampaignID: input.CampaignID,
		Action:     model.ActionNone,
		Reason:     "no records to analyze",
		AnalyzedAt: now,
	}

	if len(input.Records) == 0 {
		result.AnalysisWindow = model.AnalysisWindow{Start: now, End: now}
		return result
	}

	records := make([]model.ViewRecord, len(input.Records))
	copy(records, input.Records)
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	window := model.AnalysisWindow{
		Start: records[0].Timestamp,
		End:   records[len(records)-1].Timestamp,
	}
	result.AnalysisWindow = window

	metrics := uc.computeMetrics(records, window)
	result.Metrics = metrics

	score, reasons := uc.score(metrics)
	result.BotScore = score
	result.Confidence = score
	result.Action = uc.actionForScore(score)
	result.Reason = reasonString(reasons)

	return result
}

func (uc *implUseCase) computeMetrics(records []model.ViewRecord, window model.AnalysisWindow) model.BotMetrics {
	var m model.BotMetrics
	for _, r := range records {
		m.TotalViews += r.ViewCount
		m.TotalLikes += r.LikeCount
		m.TotalComments += r.CommentCount
	}

	minutes := window.Minutes()
	m.AvgViewsPerMinute = float64(m.TotalViews) / minutes
	m.AvgLikesPerMinute = float64(m.TotalLikes) / minutes
	m.AvgCommentsPerMinute = float64(m.TotalComments) / minutes

	// Denominators floored at 1 to guard against division by zero.
	m.ViewLikeRatio = float64(m.TotalViews) / float64(maxInt64(m.TotalLikes, 1))
	m.ViewCommentRatio = float64(m.TotalViews) / float64(maxInt64(m.TotalComments, 1))

	m.SpikeDetected, m.SpikePercentage = uc.detectSpike(records)

	return m
}

// detectSpike compares the most recent record's views against the average of
// the preceding records. Only flags when the latest sample arrived within the
// configured spike window of its predecessor.
func (uc *implUseCase) detectSpike(records []model.ViewRecord) (bool, float64) {
	if len(records) < 2 {
		return false, 0
	}

	latest := records[len(records)-1]
	previous := records[len(records)-2]

	gap := latest.Timestamp.Sub(previous.Timestamp)
	if gap > time.Duration(uc.config.SpikeWindowMinutes)*time.Minute {
		return false, 0
	}

	var baselineTotal int64
	for _, r := range records[:len(records)-1] {
		baselineTotal += r.ViewCount
	}
	baseline := float64(baselineTotal) / float64(len(records)-1)
	if baseline < 1 {
		baseline = 1
	}

	increasePercent := (float64(latest.ViewCount) - baseline) / baseline * 100
	if increasePercent < uc.config.SpikeThresholdPercent {
		return false, 0
	}
	return true, increasePercent
}

type signal struct {
	points float64
	reason string
}

// score composes the weighted, individually-capped signal contributions.
func (uc *implUseCase) score(m model.BotMetrics) (int, []string) {
	signals := make([]signal, 0, 4)

	if m.ViewLikeRatio > uc.config.ViewLikeRatioNormal {
		excess := m.ViewLikeRatio/uc.config.ViewLikeRatioNormal - 1
		signals = append(signals, signal{
			points: capFloat(excess*15, maxLikeRatioPoints),
			reason: fmt.Sprintf("abnormal view:like ratio (%.1f:1)", m.ViewLikeRatio),
		})
	}

	if m.ViewCommentRatio > uc.config.ViewCommentRatioNormal {
		excess := m.ViewCommentRatio/uc.config.ViewCommentRatioNormal - 1
		signals = append(signals, signal{
			points: capFloat(excess*10, maxCommentRatioPoints),
			reason: fmt.Sprintf("abnormal view:comment ratio (%.1f:1)", m.ViewCommentRatio),
		})
	}

	if m.SpikeDetected {
		signals = append(signals, signal{
			points: spikePoints,
			reason: fmt.Sprintf("traffic spike (+%.0f%%)", m.SpikePercentage),
		})
	}

	if velocityPoints := capFloat(m.AvgViewsPerMinute/uc.config.ViewVelocityCeiling*maxVelocityPoints, maxVelocityPoints); velocityPoints >= 1 {
		signals = append(signals, signal{
			points: velocityPoints,
			reason: fmt.Sprintf("high view velocity (%.0f views/min)", m.AvgViewsPerMinute),
		})
	}

	var total float64
	reasons := make([]string, 0, len(signals))
	for _, s := range signals {
		total += s.points
		reasons = append(reasons, s.reason)
	}

	score := int(total)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, reasons
}

// actionForScore maps the score to an action tier. Monotone by construction:
// thresholds are validated as strictly increasing at startup.
func (uc *implUseCase) actionForScore(score int) model.ActionTier {
	switch {
	case score >= uc.config.BanThreshold:
		return model.ActionBan
	case score >= uc.config.WarningThreshold:
		return model.ActionWarning
	case score >= uc.config.MonitorThreshold:
		return model.ActionMonitor
	default:
		return model.ActionNone
	}
}

func reasonString(reasons []string) string {
	if len(reasons) == 0 {
		return "engagement within normal bounds"
	}
	return strings.Join(reasons, "; ")
}

func capFloat(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
