package postgre

import (
	"context"
	"encoding/json"

	"botguard-srv/internal/alerting/repository"
	"botguard-srv/internal/model"
)

// InsertAnalysis - Append one analysis verdict to the audit table.
func (r *implRepository) InsertAnalysis(ctx context.Context, a model.BotAnalysis) error {
	metrics, err := json.Marshal(a.Metrics)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.postgre.InsertAnalysis: Failed to marshal metrics: %v", err)
		return repository.ErrAuditWriteFailed
	}

	query := `
		INSERT INTO botguard.bot_analyses
			(promoter_id, campaign_id, window_start, window_end, metrics, bot_score, action, reason, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.ExecContext(ctx, query,
		a.PromoterID, a.CampaignID, a.AnalysisWindow.Start, a.AnalysisWindow.End,
		metrics, a.BotScore, string(a.Action), a.Reason, a.AnalyzedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.postgre.InsertAnalysis: Failed to insert analysis: %v", err)
		return repository.ErrAuditWriteFailed
	}
	return nil
}
