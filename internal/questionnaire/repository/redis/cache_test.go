package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"depression-srv/internal/questionnaire/repository"
	"depression-srv/pkg/log"
	pkgRedis "depression-srv/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values  map[string]string
	getErr  error
	setErr  error
	delErr  error
	lastTTL time.Duration
}

func newFakeRedis() *fakeRedis { return &fakeRedis{values: map[string]string{}} }

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.lastTTL = ttl
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.values[key]
	if !ok {
		return "", pkgRedis.ErrNil
	}
	return v, nil
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	if f.delErr != nil {
		return f.delErr
	}
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func (f *fakeRedis) Close() error { return nil }

func (f *fakeRedis) Ping(context.Context) error { return nil }

type countingRepo struct {
	data        []byte
	err         error
	calls       int
	invalidated int
}

func (c *countingRepo) GetDocument(context.Context) ([]byte, error) {
	c.calls++
	return c.data, c.err
}

func (c *countingRepo) InvalidateDocument(context.Context) error {
	c.invalidated++
	return nil
}

func TestGetDocument_ReadThrough(t *testing.T) {
	ctx := context.Background()
	next := &countingRepo{data: []byte(`[]`)}
	rdb := newFakeRedis()
	repo := New(next, rdb, time.Minute, log.NewNop())

	data, err := repo.GetDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, time.Minute, rdb.lastTTL)

	data, err = repo.GetDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, 1, next.calls)
}

func TestGetDocument_CacheDown(t *testing.T) {
	ctx := context.Background()
	next := &countingRepo{data: []byte(`[]`)}
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	rdb.setErr = errors.New("connection refused")

	data, err := New(next, rdb, time.Minute, log.NewNop()).GetDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, 1, next.calls)
}

func TestGetDocument_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	next := &countingRepo{err: repository.ErrDocumentNotFound}
	rdb := newFakeRedis()
	repo := New(next, rdb, time.Minute, log.NewNop())

	_, err := repo.GetDocument(ctx)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
	_, err = repo.GetDocument(ctx)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
	assert.Equal(t, 2, next.calls)
	assert.Empty(t, rdb.values)
}

func TestInvalidateDocument(t *testing.T) {
	ctx := context.Background()
	next := &countingRepo{data: []byte(`{"broken"`)}
	rdb := newFakeRedis()
	repo := New(next, rdb, time.Minute, log.NewNop())

	_, err := repo.GetDocument(ctx)
	require.NoError(t, err)
	require.Contains(t, rdb.values, documentKey)

	require.NoError(t, repo.InvalidateDocument(ctx))
	assert.NotContains(t, rdb.values, documentKey)
	assert.Equal(t, 1, next.invalidated)

	next.data = []byte(`[]`)
	data, err := repo.GetDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, 2, next.calls)
}

func TestInvalidateDocument_CacheDown(t *testing.T) {
	rdb := newFakeRedis()
	rdb.delErr = errors.New("connection refused")
	next := &countingRepo{}

	err := New(next, rdb, time.Minute, log.NewNop()).InvalidateDocument(context.Background())
	assert.Error(t, err)
	assert.Zero(t, next.invalidated)
}
