package usecase

import (
	"botguard-srv/internal/analysis"
	"botguard-srv/pkg/log"
)

const (
	defaultBanThreshold     = 90
	defaultWarningThreshold = 50
	defaultMonitorThreshold = 20

	defaultViewLikeRatioNormal    = 20.0
	defaultViewCommentRatioNormal = 100.0
	defaultSpikeThresholdPercent  = 500.0
	defaultSpikeWindowMinutes     = 5
	defaultViewVelocityCeiling    = 10_000.0
)

// Per-signal score caps. Each signal is capped below the ban threshold so a
// single signal cannot force a ban-tier score without corroboration.
const (
	maxLikeRatioPoints    = 40.0
	maxCommentRatioPoints = 25.0
	spikePoints           = 25.0
	maxVelocityPoints     = 20.0
)

// Config holds the analyzer tuning. Thresholds map the final score to an
// action tier; the ratio/spike/velocity fields calibrate the signals.
type Config struct {
	BanThreshold     int
	WarningThreshold int
	MonitorThreshold int

	ViewLikeRatioNormal    float64
	ViewCommentRatioNormal float64
	SpikeThresholdPercent  float64
	SpikeWindowMinutes     int
	ViewVelocityCeiling    float64
}

type implUseCase struct {
	l      log.Logger
	config Config
}

// New creates a new analysis UseCase implementation.
func New(l log.Logger, cfg Config) analysis.UseCase {
	if cfg.BanThreshold <= 0 {
		cfg.BanThreshold = defaultBanThreshold
	}
	if cfg.WarningThreshold <= 0 {
		cfg.WarningThreshold = defaultWarningThreshold
	}
	if cfg.MonitorThreshold <= 0 {
		cfg.MonitorThreshold = defaultMonitorThreshold
	}
	if cfg.ViewLikeRatioNormal <= 0 {
		cfg.ViewLikeRatioNormal = defaultViewLikeRatioNormal
	}
	if cfg.ViewCommentRatioNormal <= 0 {
		cfg.ViewCommentRatioNormal = defaultViewCommentRatioNormal
	}
	if cfg.SpikeThresholdPercent <= 0 {
		cfg.SpikeThresholdPercent = defaultSpikeThresholdPercent
	}
	if cfg.SpikeWindowMinutes <= 0 {
		cfg.SpikeWindowMinutes = defaultSpikeWindowMinutes
	}
	if cfg.ViewVelocityCeiling <= 0 {
		cfg.ViewVelocityCeiling = defaultViewVelocityCeiling
	}

	return &implUseCase{
		l:      l,
		config: cfg,
	}
}
