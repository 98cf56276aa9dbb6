package usecase

import (
	"context"
	"time"

	"botguard-srv/internal/model"
)

// GetSystemStatus derives the health snapshot from the rolling counters and
// the alert registry. Health degrades to CRITICAL when the pipeline error
// rate crosses the configured threshold, to WARNING when too many critical
// alerts sit unacknowledged.
func (uc *implUseCase) GetSystemStatus(ctx context.Context) (model.SystemStatus, error) {
	uc.mu.Lock()
	snap := uc.counters
	uc.mu.Unlock()

	counts, err := uc.alertRepo.CountAlerts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "monitoring.usecase.GetSystemStatus: Failed to count alerts: %v", err)
		return model.SystemStatus{}, err
	}

	var perf model.PerformanceStatus
	if snap.total > 0 {
		perf.AverageProcessingMs = snap.processingTotalMs / float64(snap.total)
		perf.ErrorRate = float64(snap.errors) / float64(snap.total)

		elapsed := time.Since(snap.periodStart).Minutes()
		if elapsed < 1 {
			elapsed = 1
		}
		perf.ThroughputPerMinute = float64(snap.total) / elapsed
	}

	health := model.HealthHealthy
	switch {
	case perf.ErrorRate > uc.config.ErrorRateThreshold:
		health = model.HealthCritical
	case counts.UnacknowledgedCritical >= int64(uc.config.UnackedCriticalCeiling):
		health = model.HealthWarning
	}

	return model.SystemStatus{
		Monitoring: model.MonitoringStatus{
			Enabled:      uc.config.Enabled,
			SystemHealth: health,
		},
		Alerts: model.AlertsStatus{
			Total:                  counts.Total,
			Unacknowledged:         counts.Unacknowledged,
			UnacknowledgedCritical: counts.UnacknowledgedCritical,
		},
		Performance: perf,
	}, nil
}
