package usecase

import (
	"context"
	"errors"
	"time"

	"botguard-srv/internal/alerting"
	"botguard-srv/internal/alerting/repository"
	"botguard-srv/internal/metrics"
	"botguard-srv/internal/model"
)

// Acknowledge marks an alert as seen. Returns false for unknown ids and for
// alerts that already reached the resolved state.
func (uc *implUseCase) Acknowledge(ctx context.Context, sc model.Scope, input alerting.AcknowledgeInput) (bool, error) {
	alert, err := uc.repo.GetAlertByID(ctx, input.AlertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return false, nil
		}
		uc.l.Errorf(ctx, "alerting.usecase.Acknowledge: Failed to get alert %s: %v", input.AlertID, err)
		return false, err
	}
	if alert.IsResolved() {
		return false, nil
	}

	err = uc.repo.UpdateAcknowledged(ctx, repository.UpdateAcknowledgedOptions{
		AlertID:        input.AlertID,
		AcknowledgedBy: sc.Username,
		AcknowledgedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return false, nil
		}
		uc.l.Errorf(ctx, "alerting.usecase.Acknowledge: Failed to acknowledge alert %s: %v", input.AlertID, err)
		return false, err
	}

	if alert.Severity == model.SeverityCritical && !alert.Acknowledged {
		metrics.UnacknowledgedCritical.Dec()
	}
	return true, nil
}

// Resolve marks an alert resolved. Resolved is terminal; resolving an already
// resolved alert returns false.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, input alerting.ResolveInput) (bool, error) {
	alert, err := uc.repo.GetAlertByID(ctx, input.AlertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return false, nil
		}
		uc.l.Errorf(ctx, "alerting.usecase.Resolve: Failed to get alert %s: %v", input.AlertID, err)
		return false, err
	}
	if alert.IsResolved() {
		return false, nil
	}

	err = uc.repo.UpdateResolved(ctx, repository.UpdateResolvedOptions{
		AlertID:    input.AlertID,
		ResolvedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return false, nil
		}
		uc.l.Errorf(ctx, "alerting.usecase.Resolve: Failed to resolve alert %s: %v", input.AlertID, err)
		return false, err
	}

	if alert.Severity == model.SeverityCritical && !alert.Acknowledged {
		metrics.UnacknowledgedCritical.Dec()
	}
	return true, nil
}

func (uc *implUseCase) GetAlert(ctx context.Context, sc model.Scope, alertID string) (model.SystemAlert, error) {
	alert, err := uc.repo.GetAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return model.SystemAlert{}, alerting.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "alerting.usecase.GetAlert: Failed to get alert %s: %v", alertID, err)
		return model.SystemAlert{}, err
	}
	return alert, nil
}

func (uc *implUseCase) ListAlerts(ctx context.Context, sc model.Scope, input alerting.ListAlertsInput) (alerting.ListAlertsOutput, error) {
	if input.Severity != "" && !isValidSeverity(input.Severity) {
		return alerting.ListAlertsOutput{}, alerting.ErrInvalidSeverity
	}

	input.PaginateQuery.Adjust()

	alerts, pag, err := uc.repo.ListAlerts(ctx, repository.ListAlertsOptions{
		PromoterID:     input.PromoterID,
		CampaignID:     input.CampaignID,
		Severity:       input.Severity,
		Unacknowledged: input.Unacknowledged,
		PaginateQuery:  input.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "alerting.usecase.ListAlerts: Failed to list alerts: %v", err)
		return alerting.ListAlertsOutput{}, err
	}

	return alerting.ListAlertsOutput{
		Alerts:    alerts,
		Paginator: pag,
	}, nil
}

func isValidSeverity(s string) bool {
	switch model.AlertSeverity(s) {
	case model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow:
		return true
	default:
		return false
	}
}
