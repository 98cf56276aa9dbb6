package repository

import (
	"context"

	"botguard-srv/internal/model"
)

//go:generate mockery --name SummaryRepository
type SummaryRepository interface {
	InsertSummary(ctx context.Context, s model.DailySummary) error
	GetLatestSummary(ctx context.Context) (model.DailySummary, error)
}
