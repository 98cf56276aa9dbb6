package usecase

import (
	"context"
	"time"
)

// StartScheduler generates a summary every SummaryInterval until ctx is done.
// Blocking; run it on its own goroutine.
func (uc *implUseCase) StartScheduler(ctx context.Context) {
	ticker := time.NewTicker(uc.config.SummaryInterval)
	defer ticker.Stop()

	uc.l.Infof(ctx, "monitoring.usecase.StartScheduler: Summary scheduler started, interval %s", uc.config.SummaryInterval)

	for {
		select {
		case <-ctx.Done():
			uc.l.Infof(ctx, "monitoring.usecase.StartScheduler: Summary scheduler stopped")
			return
		case <-ticker.C:
			if _, err := uc.GenerateDailySummary(ctx); err != nil {
				uc.l.Errorf(ctx, "monitoring.usecase.StartScheduler: Failed to generate summary: %v", err)
			}
		}
	}
}
