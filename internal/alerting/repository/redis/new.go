package redis

import (
	"botguard-srv/internal/alerting/repository"
	"botguard-srv/pkg/log"
	pkgRedis "botguard-srv/pkg/redis"
)

type implRepository struct {
	client pkgRedis.IRedis
	l      log.Logger
}

var _ repository.CounterRepository = &implRepository{}

// New returns a frequency counter backed by Redis.
func New(l log.Logger, client pkgRedis.IRedis) repository.CounterRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
