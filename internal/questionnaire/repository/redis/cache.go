package redis

import (
	"context"
	"fmt"

	pkgRedis "depression-srv/pkg/redis"
)

func (r *implCacheRepository) GetDocument(ctx context.Context) ([]byte, error) {
	cached, err := r.redis.Get(ctx, documentKey)
	switch {
	case err == nil:
		return []byte(cached), nil
	case pkgRedis.IsNil(err):
	default:
		r.l.Warnf(ctx, "questionnaire.repository.redis.GetDocument: cache get failed: %v", err)
	}

	data, err := r.next.GetDocument(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.redis.Set(ctx, documentKey, data, r.ttl); err != nil {
		r.l.Warnf(ctx, "questionnaire.repository.redis.GetDocument: cache set failed: %v", err)
	}
	return data, nil
}

func (r *implCacheRepository) InvalidateDocument(ctx context.Context) error {
	if err := r.redis.Delete(ctx, documentKey); err != nil {
		return fmt.Errorf("questionnaire.repository.redis.InvalidateDocument: %w", err)
	}
	return r.next.InvalidateDocument(ctx)
}
