package minio

import (
	"strings"

	"depression-srv/config"
)

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg == nil {
		return NewInvalidInputError("config is required")
	}
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return NewInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return NewInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return NewInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req == nil {
		return NewInvalidInputError("request is required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if err := validateObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Reader == nil {
		return NewInvalidInputError("reader is required")
	}
	if req.Size <= 0 {
		return NewInvalidInputError("size must be positive")
	}
	if req.Size > MaxFileSizeBytes {
		return NewInvalidInputError("file size cannot exceed 64MB")
	}
	return nil
}

func validateDownloadRequest(req *DownloadRequest) error {
	if req == nil {
		return NewInvalidInputError("request is required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	return validateObjectName(req.ObjectName)
}

func validateBucketName(bucketName string) error {
	if bucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if len(bucketName) < 3 {
		return NewInvalidInputError("bucket name must be at least 3 characters")
	}
	if len(bucketName) > 63 {
		return NewInvalidInputError("bucket name cannot exceed 63 characters")
	}
	for _, char := range bucketName {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-' || char == '.') {
			return NewInvalidInputError("bucket name can only contain lowercase letters, numbers, dots, and hyphens")
		}
	}
	if strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return NewInvalidInputError("bucket name cannot start or end with hyphen")
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if strings.HasPrefix(objectName, "/") || strings.HasSuffix(objectName, "/") {
		return NewInvalidInputError("object name cannot start or end with '/'")
	}
	if strings.Contains(objectName, "\\") {
		return NewInvalidInputError("object name cannot contain backslashes")
	}
	return nil
}
