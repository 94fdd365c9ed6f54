package redis

import (
	"time"

	"depression-srv/internal/questionnaire/repository"
	"depression-srv/pkg/log"
	pkgRedis "depression-srv/pkg/redis"
)

const documentKey = "questionnaire:document"

type implCacheRepository struct {
	next  repository.DocumentRepository
	redis pkgRedis.IRedis
	ttl   time.Duration
	l     log.Logger
}

// New wraps next with a read-through Redis cache. Cache failures fall back to next.
func New(next repository.DocumentRepository, redis pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.DocumentRepository {
	return &implCacheRepository{
		next:  next,
		redis: redis,
		ttl:   ttl,
		l:     l,
	}
}
