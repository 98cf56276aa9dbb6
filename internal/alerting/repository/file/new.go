package file

import (
	"os"
	"sync"

	"botguard-srv/internal/alerting/repository"
	"botguard-srv/pkg/log"
)

type implRepository struct {
	dir string
	l   log.Logger
	mu  sync.Mutex
}

var _ repository.AuditRepository = &implRepository{}

// New returns an audit trail that appends JSON lines into daily files
// under dir. The directory is created if it does not exist.
func New(l log.Logger, dir string) (repository.AuditRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &implRepository{
		dir: dir,
		l:   l,
	}, nil
}
