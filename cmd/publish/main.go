// Command publish uploads the questionnaire document and the classifier artifact
// to the configured MinIO bucket, so the API can run with storage.source=minio.
package main

import (
	"context"
	"fmt"
	"os"

	"depression-srv/config"
	"depression-srv/pkg/classifier"
	"depression-srv/pkg/log"
	pkgMinio "depression-srv/pkg/minio"
)

const minioMaxRetries = 3

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// The artifact must decode before it is published.
	if _, err := classifier.Load(ctx, classifier.FileSource{Path: cfg.Model.Path}); err != nil {
		logger.Fatalf(ctx, "Refusing to publish invalid artifact %s: %v", cfg.Model.Path, err)
	}

	storage, err := pkgMinio.NewMinIOWithRetry(ctx, &cfg.MinIO, minioMaxRetries)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MinIO: %v", err)
	}
	defer storage.Close()

	if err := storage.EnsureBucket(ctx, cfg.MinIO.Bucket); err != nil {
		logger.Fatalf(ctx, "Failed to ensure bucket %s: %v", cfg.MinIO.Bucket, err)
	}

	uploads := []struct{ path, object string }{
		{cfg.Questionnaire.Path, cfg.Questionnaire.Object},
		{cfg.Model.Path, cfg.Model.Object},
	}
	for _, u := range uploads {
		info, err := upload(ctx, storage, cfg.MinIO.Bucket, u.path, u.object)
		if err != nil {
			logger.Fatalf(ctx, "Failed to upload %s: %v", u.path, err)
		}
		logger.Infof(ctx, "Uploaded %s to minio://%s/%s (%d bytes, etag %s)", u.path, info.BucketName, info.ObjectName, info.Size, info.ETag)
	}
}

func upload(ctx context.Context, storage pkgMinio.FileUploader, bucket, path, object string) (*pkgMinio.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return storage.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:  bucket,
		ObjectName:  object,
		Reader:      f,
		Size:        st.Size(),
		ContentType: pkgMinio.ContentTypeJSON,
		Metadata:    map[string]string{"source": path},
	})
}
