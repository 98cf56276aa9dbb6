package postgre

import (
	"database/sql"

	"botguard-srv/internal/monitoring/repository"
	"botguard-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.SummaryRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
