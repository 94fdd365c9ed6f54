package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"depression-srv/internal/questionnaire/repository"
)

func (r *implDocumentRepository) GetDocument(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrDocumentNotFound
		}
		r.l.Errorf(ctx, "questionnaire.repository.file.GetDocument: read %s: %v", r.path, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToRead, err)
	}
	return data, nil
}

// InvalidateDocument is a no-op: every GetDocument reads the source.
func (r *implDocumentRepository) InvalidateDocument(context.Context) error {
	return nil
}
