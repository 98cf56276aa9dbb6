package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"botguard-srv/internal/alerting"
	"botguard-srv/internal/alerting/repository"
	"botguard-srv/internal/metrics"
	"botguard-srv/internal/model"
	"botguard-srv/pkg/rabbitmq"
)

// ProcessAnalysis routes one verdict. The audit trail is written for every
// analysis regardless of tier; only non-none tiers reach the frequency gate
// and the notification channels. Nothing here returns an error: a failing
// channel or store must not take down the detection pipeline.
func (uc *implUseCase) ProcessAnalysis(ctx context.Context, a model.BotAnalysis) alerting.ProcessOutput {
	var output alerting.ProcessOutput

	output.Audited = uc.writeAudit(ctx, a)

	if a.Action == model.ActionNone || !uc.config.Enabled {
		return output
	}

	if a.Action != model.ActionBan && uc.overFrequencyLimit(ctx, a) {
		uc.l.Infof(ctx, "alerting.usecase.ProcessAnalysis: Suppressed %s alert for promoter %s campaign %s (frequency limit)",
			a.Action, a.PromoterID, a.CampaignID)
		metrics.AlertsSuppressed.Inc()
		output.Suppressed = true
		return output
	}
	if a.Action == model.ActionBan {
		// Bans still consume a counter slot so follow-up warnings stay gated.
		uc.bumpFrequency(ctx, a)
	}

	alert := uc.emitAlert(ctx, a)
	output.Emitted = true
	output.Alert = &alert
	return output
}

// writeAudit appends the verdict to the daily log file and the audit table.
// Both writes are best effort; the returned flag reports whether at least the
// file entry landed.
func (uc *implUseCase) writeAudit(ctx context.Context, a model.BotAnalysis) bool {
	audited := true
	if err := uc.audit.AppendAnalysis(ctx, a); err != nil {
		uc.l.Errorf(ctx, "alerting.usecase.writeAudit: Failed to append analysis log: %v", err)
		metrics.ProcessingErrors.WithLabelValues("audit").Inc()
		audited = false
	}

	if err := uc.repo.InsertAnalysis(ctx, a); err != nil {
		uc.l.Errorf(ctx, "alerting.usecase.writeAudit: Failed to persist analysis: %v", err)
		metrics.ProcessingErrors.WithLabelValues("persistence").Inc()
	}
	return audited
}

// overFrequencyLimit reports whether this promoter-campaign pair already hit
// its notification budget. A counter failure reads as "not over": when Redis
// is down we prefer a duplicate notification over a silently dropped one.
func (uc *implUseCase) overFrequencyLimit(ctx context.Context, a model.BotAnalysis) bool {
	count, err := uc.counter.IncrAlertCount(ctx, a.PromoterID, a.CampaignID, uc.config.FrequencyWindow)
	if err != nil {
		uc.l.Warnf(ctx, "alerting.usecase.overFrequencyLimit: Counter unavailable, emitting anyway: %v", err)
		metrics.ProcessingErrors.WithLabelValues("counter").Inc()
		return false
	}
	return count > int64(uc.config.FrequencyLimit)
}

func (uc *implUseCase) bumpFrequency(ctx context.Context, a model.BotAnalysis) {
	if _, err := uc.counter.IncrAlertCount(ctx, a.PromoterID, a.CampaignID, uc.config.FrequencyWindow); err != nil {
		uc.l.Warnf(ctx, "alerting.usecase.bumpFrequency: Counter unavailable: %v", err)
		metrics.ProcessingErrors.WithLabelValues("counter").Inc()
	}
}

// emitAlert builds the alert, persists it, and fans it out over the enabled
// channels. Channel failures are logged and counted, never propagated.
func (uc *implUseCase) emitAlert(ctx context.Context, a model.BotAnalysis) model.SystemAlert {
	alert := model.SystemAlert{
		ID:         uuid.New().String(),
		Severity:   model.SeverityForAction(a.Action, a.BotScore),
		Type:       model.AlertTypeForAction(a.Action),
		PromoterID: a.PromoterID,
		CampaignID: a.CampaignID,
		BotScore:   a.BotScore,
		Message:    alertMessage(a),
		CreatedAt:  time.Now().UTC(),
	}

	created, err := uc.repo.CreateAlert(ctx, repository.CreateAlertOptions{
		ID:         alert.ID,
		Severity:   string(alert.Severity),
		Type:       alert.Type,
		PromoterID: alert.PromoterID,
		CampaignID: alert.CampaignID,
		BotScore:   alert.BotScore,
		Message:    alert.Message,
		CreatedAt:  alert.CreatedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "alerting.usecase.emitAlert: Failed to persist alert: %v", err)
		metrics.ProcessingErrors.WithLabelValues("persistence").Inc()
	} else {
		alert = created
	}

	if err := uc.audit.AppendNotification(ctx, alert); err != nil {
		uc.l.Errorf(ctx, "alerting.usecase.emitAlert: Failed to append notification log: %v", err)
		metrics.ProcessingErrors.WithLabelValues("audit").Inc()
	}

	uc.dispatch(ctx, alert)

	metrics.AlertsEmitted.WithLabelValues(string(alert.Severity)).Inc()
	if alert.Severity == model.SeverityCritical {
		metrics.UnacknowledgedCritical.Inc()
	}
	return alert
}

// dispatch fans the alert out to the configured channels.
func (uc *implUseCase) dispatch(ctx context.Context, alert model.SystemAlert) {
	if uc.config.DashboardEnabled {
		uc.publish(ctx, routingKeyDashboard, alert, nil)
	}

	if uc.config.EmailEnabled {
		uc.publish(ctx, routingKeyEmail, alert, uc.config.Recipients)
	}

	if uc.config.WebhookEnabled && uc.config.WebhookURL != "" {
		uc.postWebhook(ctx, alert)
	}

	if alert.Severity == model.SeverityCritical && uc.discord != nil {
		uc.notifyDiscord(ctx, alert)
	}
}

type alertEnvelope struct {
	Alert      model.SystemAlert `json:"alert"`
	Recipients []string          `json:"recipients,omitempty"`
}

func (uc *implUseCase) publish(ctx context.Context, routingKey string, alert model.SystemAlert, recipients []string) {
	if uc.amqpChannel == nil {
		return
	}

	body, err := json.Marshal(alertEnvelope{Alert: alert, Recipients: recipients})
	if err != nil {
		uc.l.Errorf(ctx, "alerting.usecase.publish: Failed to marshal alert %s: %v", alert.ID, err)
		metrics.ProcessingErrors.WithLabelValues("amqp").Inc()
		return
	}

	err = uc.amqpChannel.Publish(ctx, rabbitmq.PublishArgs{
		Exchange:   uc.config.Exchange,
		RoutingKey: routingKey,
		Msg: rabbitmq.Publishing{
			ContentType: "application/json",
			MessageId:   alert.ID,
			Timestamp:   alert.CreatedAt,
			Body:        body,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "alerting.usecase.publish: Failed to publish alert %s to %s: %v", alert.ID, routingKey, err)
		metrics.ProcessingErrors.WithLabelValues("amqp").Inc()
	}
}

func (uc *implUseCase) postWebhook(ctx context.Context, alert model.SystemAlert) {
	_, status, err := uc.webhook.Post(ctx, uc.config.WebhookURL, alert, nil)
	if err != nil {
		uc.l.Errorf(ctx, "alerting.usecase.postWebhook: Failed to deliver alert %s: %v", alert.ID, err)
		metrics.ProcessingErrors.WithLabelValues("webhook").Inc()
		return
	}
	if status >= 400 {
		uc.l.Errorf(ctx, "alerting.usecase.postWebhook: Webhook rejected alert %s with status %d", alert.ID, status)
		metrics.ProcessingErrors.WithLabelValues("webhook").Inc()
	}
}

func (uc *implUseCase) notifyDiscord(ctx context.Context, alert model.SystemAlert) {
	err := uc.discord.SendNotification(ctx,
		fmt.Sprintf("%s alert: %s", alert.Severity, alert.Type),
		alert.Message,
		map[string]string{
			"Alert ID":    alert.ID,
			"Promoter ID": alert.PromoterID,
			"Campaign ID": alert.CampaignID,
			"Bot Score":   fmt.Sprintf("%d", alert.BotScore),
		})
	if err != nil {
		uc.l.Errorf(ctx, "alerting.usecase.notifyDiscord: Failed to notify for alert %s: %v", alert.ID, err)
		metrics.ProcessingErrors.WithLabelValues("discord").Inc()
	}
}

func alertMessage(a model.BotAnalysis) string {
	switch a.Action {
	case model.ActionBan:
		return fmt.Sprintf("Promoter %s flagged for ban on campaign %s: bot score %d. %s",
			a.PromoterID, a.CampaignID, a.BotScore, a.Reason)
	case model.ActionWarning:
		return fmt.Sprintf("Suspicious engagement for promoter %s on campaign %s: bot score %d. %s",
			a.PromoterID, a.CampaignID, a.BotScore, a.Reason)
	default:
		return fmt.Sprintf("Promoter %s on campaign %s placed under monitoring: bot score %d. %s",
			a.PromoterID, a.CampaignID, a.BotScore, a.Reason)
	}
}
