package minio

import (
	"context"
	"io"
)

// ObjectSource opens a single object for reading.
// It satisfies classifier.Source and the questionnaire object loader.
type ObjectSource struct {
	Client FileDownloader
	Bucket string
	Object string
}

func (s ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	rc, _, err := s.Client.DownloadFile(ctx, &DownloadRequest{BucketName: s.Bucket, ObjectName: s.Object})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (s ObjectSource) String() string {
	return "minio://" + s.Bucket + "/" + s.Object
}
