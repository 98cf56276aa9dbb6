package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"botguard-srv/internal/alerting/repository"
	"botguard-srv/internal/model"
	"botguard-srv/pkg/util"
)

const (
	analysisFilePrefix     = "analysis"
	notificationFilePrefix = "notifications"
)

// AppendAnalysis writes one analysis verdict to the daily analysis log.
func (r *implRepository) AppendAnalysis(ctx context.Context, a model.BotAnalysis) error {
	entry := map[string]interface{}{
		"logged_at":    time.Now().UTC(),
		"promoter_id":  a.PromoterID,
		"campaign_id":  a.CampaignID,
		"window_start": a.AnalysisWindow.Start,
		"window_end":   a.AnalysisWindow.End,
		"bot_score":    a.BotScore,
		"action":       a.Action,
		"reason":       a.Reason,
		"confidence":   a.Confidence,
		"analyzed_at":  a.AnalyzedAt,
	}

	return r.appendLine(ctx, analysisFilePrefix, entry)
}

// AppendNotification writes one emitted alert to the daily notification log.
func (r *implRepository) AppendNotification(ctx context.Context, alert model.SystemAlert) error {
	entry := map[string]interface{}{
		"logged_at":   time.Now().UTC(),
		"alert_id":    alert.ID,
		"severity":    alert.Severity,
		"alert_type":  alert.Type,
		"promoter_id": alert.PromoterID,
		"campaign_id": alert.CampaignID,
		"bot_score":   alert.BotScore,
		"message":     alert.Message,
		"created_at":  alert.CreatedAt,
	}

	return r.appendLine(ctx, notificationFilePrefix, entry)
}

func (r *implRepository) appendLine(ctx context.Context, prefix string, entry map[string]interface{}) error {
	line, err := json.Marshal(entry)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.file.appendLine: Failed to marshal entry: %v", err)
		return repository.ErrAuditWriteFailed
	}

	path := filepath.Join(r.dir, fmt.Sprintf("%s-%s.log", prefix, util.DateToStr(time.Now().UTC())))

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.file.appendLine: Failed to open %s: %v", path, err)
		return repository.ErrAuditWriteFailed
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		r.l.Errorf(ctx, "alerting.repository.file.appendLine: Failed to write %s: %v", path, err)
		return repository.ErrAuditWriteFailed
	}
	return nil
}
