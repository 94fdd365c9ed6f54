package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"depression-srv/internal/questionnaire/repository"
	"depression-srv/pkg/log"
	pkgMinio "depression-srv/pkg/minio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	body string
	err  error
}

func (f fakeStorage) DownloadFile(_ context.Context, req *pkgMinio.DownloadRequest) (io.ReadCloser, *pkgMinio.FileInfo, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), &pkgMinio.FileInfo{ObjectName: req.ObjectName}, nil
}

func TestGetDocument(t *testing.T) {
	ctx := context.Background()

	data, err := New(fakeStorage{body: `[{"type":"number"}]`}, "models", "questions.json", log.NewNop()).GetDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"type":"number"}]`, string(data))

	_, err = New(fakeStorage{err: pkgMinio.NewObjectNotFoundError("questions.json")}, "models", "questions.json", log.NewNop()).GetDocument(ctx)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	_, err = New(fakeStorage{err: pkgMinio.NewConnectionError(errors.New("refused"))}, "models", "questions.json", log.NewNop()).GetDocument(ctx)
	assert.ErrorIs(t, err, repository.ErrFailedToRead)
}
