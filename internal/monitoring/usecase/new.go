package usecase

import (
	"context"
	"os"
	"sync"
	"time"

	"botguard-srv/internal/alerting"
	alertRepo "botguard-srv/internal/alerting/repository"
	"botguard-srv/internal/monitoring"
	"botguard-srv/internal/monitoring/repository"
	"botguard-srv/pkg/log"
	"botguard-srv/pkg/minio"
)

const (
	defaultSummaryInterval        = 24 * time.Hour
	defaultErrorRateThreshold     = 0.1
	defaultUnackedCriticalCeiling = 10
)

// Config holds the monitoring settings.
type Config struct {
	Enabled                bool
	ReportDir              string
	SummaryInterval        time.Duration
	ResetCountersOnSummary bool
	ErrorRateThreshold     float64
	UnackedCriticalCeiling int
	Bucket                 string
}

// counters is the rolling state for the current reporting period.
// All fields are guarded by implUseCase.mu.
type counters struct {
	periodStart time.Time

	total     int64
	banned    int64
	warned    int64
	monitored int64
	scoreSum  int64

	emitted    int64
	suppressed int64
	errors     int64

	processingTotalMs float64
}

type implUseCase struct {
	l      log.Logger
	config Config

	alertingUC alerting.UseCase
	alertRepo  alertRepo.AlertRepository
	summaries  repository.SummaryRepository
	storage    minio.MinIO

	mu       sync.Mutex
	counters counters
}

var _ monitoring.UseCase = &implUseCase{}

// New creates a new monitoring UseCase implementation.
func New(
	l log.Logger,
	cfg Config,
	alertingUC alerting.UseCase,
	alertRepository alertRepo.AlertRepository,
	summaries repository.SummaryRepository,
	storage minio.MinIO,
) monitoring.UseCase {
	if cfg.SummaryInterval <= 0 {
		cfg.SummaryInterval = defaultSummaryInterval
	}
	if cfg.ErrorRateThreshold <= 0 {
		cfg.ErrorRateThreshold = defaultErrorRateThreshold
	}
	if cfg.UnackedCriticalCeiling <= 0 {
		cfg.UnackedCriticalCeiling = defaultUnackedCriticalCeiling
	}

	if cfg.ReportDir != "" {
		if err := os.MkdirAll(cfg.ReportDir, 0o755); err != nil {
			l.Errorf(context.Background(), "monitoring.usecase.New: Failed to create report dir: %v", err)
		}
	}

	return &implUseCase{
		l:          l,
		config:     cfg,
		alertingUC: alertingUC,
		alertRepo:  alertRepository,
		summaries:  summaries,
		storage:    storage,
		counters:   counters{periodStart: time.Now().UTC()},
	}
}
