package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// --- implMinIO: connection ---

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := m.Connect(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		backoff := time.Duration(1<<uint(i)) * time.Second
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return NewConnectionError(errors.New("not connected"))
	}
	exists, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		return handleMinIOError(err, "health_check")
	}
	if !exists {
		return NewBucketNotFoundError(m.config.Bucket)
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// --- implMinIO: bucket ---

func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	if err := validateBucketName(bucketName); err != nil {
		return false, err
	}
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, handleMinIOError(err, "check_bucket_exists")
	}
	return exists, nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return handleMinIOError(err, "create_bucket")
	}
	return nil
}

// --- implMinIO: upload / download ---

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	opts := minio.PutObjectOptions{ContentType: contentType, UserMetadata: req.Metadata}
	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}
	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  contentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
		Metadata:     req.Metadata,
	}, nil
}

// DownloadFile stats the object first so a missing object is reported before reading.
func (m *implMinIO) DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, *FileInfo, error) {
	if err := validateDownloadRequest(req); err != nil {
		return nil, nil, err
	}
	info, err := m.GetFileInfo(ctx, req.BucketName, req.ObjectName)
	if err != nil {
		return nil, nil, err
	}
	object, err := m.minioClient.GetObject(ctx, req.BucketName, req.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, handleMinIOError(err, "download_file")
	}
	return object, info, nil
}

// --- implMinIO: file info / exists ---

func (m *implMinIO) GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error) {
	if err := validateBucketName(bucketName); err != nil {
		return nil, err
	}
	if err := validateObjectName(objectName); err != nil {
		return nil, err
	}
	objInfo, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_file_info")
	}
	return &FileInfo{
		BucketName:   bucketName,
		ObjectName:   objectName,
		Size:         objInfo.Size,
		ContentType:  objInfo.ContentType,
		ETag:         objInfo.ETag,
		LastModified: objInfo.LastModified,
		Metadata:     objInfo.UserMetadata,
	}, nil
}

func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.GetFileInfo(ctx, bucketName, objectName)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// --- helpers ---

// handleMinIOError returns a plain error so a nil cause stays an untyped nil.
func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		return &StorageError{Code: ErrCodeBucketNotFound, Message: "bucket not found: " + resp.BucketName, Operation: operation, Cause: err}
	case "NoSuchKey", "NoSuchObject":
		return &StorageError{Code: ErrCodeObjectNotFound, Message: "object not found: " + resp.Key, Operation: operation, Cause: err}
	case "AccessDenied":
		return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
	case "":
		se := NewConnectionError(err)
		se.Operation = operation
		return se
	default:
		return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("operation failed: %s", resp.Code), Operation: operation, Cause: err}
	}
}
