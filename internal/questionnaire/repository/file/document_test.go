package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"depression-srv/internal/questionnaire/repository"
	"depression-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	data, err := New(path, log.NewNop()).GetDocument(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	_, err = New(filepath.Join(dir, "missing.json"), log.NewNop()).GetDocument(context.Background())
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	_, err = New(dir, log.NewNop()).GetDocument(context.Background())
	assert.ErrorIs(t, err, repository.ErrFailedToRead)
}
