package usecase

import (
	"context"
	"time"

	"botguard-srv/internal/metrics"
	"botguard-srv/internal/model"
)

// ProcessAnalysis folds one verdict into the rolling counters and hands it to
// the alerting pipeline. This is the single entry point for every analysis
// the engine produces, whether it came from Kafka or the HTTP API.
func (uc *implUseCase) ProcessAnalysis(ctx context.Context, a model.BotAnalysis) {
	start := time.Now()

	out := uc.alertingUC.ProcessAnalysis(ctx, a)

	elapsed := time.Since(start)
	metrics.AnalysesProcessed.WithLabelValues(string(a.Action)).Inc()
	metrics.AnalysisLatency.Observe(elapsed.Seconds())

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.counters.total++
	uc.counters.scoreSum += int64(a.BotScore)
	uc.counters.processingTotalMs += float64(elapsed.Microseconds()) / 1000

	switch a.Action {
	case model.ActionBan:
		uc.counters.banned++
	case model.ActionWarning:
		uc.counters.warned++
	case model.ActionMonitor:
		uc.counters.monitored++
	}

	if out.Emitted {
		uc.counters.emitted++
	}
	if out.Suppressed {
		uc.counters.suppressed++
	}
	if !out.Audited {
		uc.counters.errors++
	}
}
