package classifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// FileSource reads the artifact from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, s.Path)
		}
		return nil, err
	}
	return f, nil
}

func (s FileSource) String() string {
	return "file://" + s.Path
}
