package minio

import (
	"context"
	"fmt"
	"io"

	"depression-srv/internal/questionnaire/repository"
	pkgMinio "depression-srv/pkg/minio"
)

func (r *implDocumentRepository) GetDocument(ctx context.Context) ([]byte, error) {
	src := pkgMinio.ObjectSource{Client: r.storage, Bucket: r.bucket, Object: r.object}
	rc, err := src.Open(ctx)
	if err != nil {
		if pkgMinio.IsNotFound(err) {
			return nil, repository.ErrDocumentNotFound
		}
		r.l.Errorf(ctx, "questionnaire.repository.minio.GetDocument: open %s: %v", src, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToRead, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		r.l.Errorf(ctx, "questionnaire.repository.minio.GetDocument: read %s: %v", src, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToRead, err)
	}
	return data, nil
}

// InvalidateDocument is a no-op: every GetDocument reads the source.
func (r *implDocumentRepository) InvalidateDocument(context.Context) error {
	return nil
}
