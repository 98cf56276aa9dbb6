package analysis

import (
	"context"

	"botguard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze scores one promoter/campaign pair over a set of view records.
	// Pure computation: it never fails, holds no locks and is safe to call
	// from any number of goroutines. Empty input yields score 0, action none.
	Analyze(ctx context.Context, input AnalyzeInput) model.BotAnalysis
}
