package monitoring

import (
	"context"

	"botguard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessAnalysis records one verdict in the rolling counters and routes
	// it to the alerting pipeline. Failures downstream are contained; the
	// detection loop never sees them.
	ProcessAnalysis(ctx context.Context, a model.BotAnalysis)

	// GenerateDailySummary snapshots the counters into a summary, renders the
	// JSON and HTML report artifacts, and archives them.
	GenerateDailySummary(ctx context.Context) (model.DailySummary, error)

	// GetSystemStatus derives the current health snapshot.
	GetSystemStatus(ctx context.Context) (model.SystemStatus, error)

	// StartScheduler runs periodic summary generation until ctx is done.
	StartScheduler(ctx context.Context)
}
