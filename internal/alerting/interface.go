package alerting

import (
	"context"

	"botguard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessAnalysis routes one analysis verdict: the audit trail is always
	// written, then non-none tiers pass the frequency gate (ban always
	// bypasses) and emit an alert over the enabled channels. All I/O
	// failures are contained; the output reports what happened.
	ProcessAnalysis(ctx context.Context, a model.BotAnalysis) ProcessOutput

	// Acknowledge marks an alert as seen by an operator. Returns false for
	// unknown ids and for already-resolved alerts.
	Acknowledge(ctx context.Context, sc model.Scope, input AcknowledgeInput) (bool, error)

	// Resolve marks an alert resolved. Resolved is terminal; resolving twice
	// returns false.
	Resolve(ctx context.Context, sc model.Scope, input ResolveInput) (bool, error)

	GetAlert(ctx context.Context, sc model.Scope, alertID string) (model.SystemAlert, error)
	ListAlerts(ctx context.Context, sc model.Scope, input ListAlertsInput) (ListAlertsOutput, error)
}
