package usecase

import (
	"sync"

	"botguard-srv/internal/normalizer"
	"botguard-srv/pkg/log"
)

const defaultExtremeValueCap = int64(1_000_000_000)

// Config holds configuration for the metrics normalizer.
type Config struct {
	ExtremeValueCap int64
}

type implUseCase struct {
	l      log.Logger
	config Config

	// Registry of normalization rules in registration order. Guarded by mu
	// because rule toggles arrive over HTTP while the consumer normalizes.
	mu    sync.RWMutex
	rules []*normalizer.Rule
}

// New creates a new normalizer UseCase with the built-in rules registered
// in their fixed order.
func New(l log.Logger, cfg Config) normalizer.UseCase {
	if cfg.ExtremeValueCap <= 0 {
		cfg.ExtremeValueCap = defaultExtremeValueCap
	}

	uc := &implUseCase{
		l:      l,
		config: cfg,
	}
	uc.rules = builtinRules(cfg.ExtremeValueCap)

	return uc
}
