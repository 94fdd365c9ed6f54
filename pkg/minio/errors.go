package minio

import (
	"errors"
	"fmt"
)

// Storage error codes.
const (
	ErrCodeConnection     = "CONNECTION_ERROR"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeInvalidInput   = "INVALID_INPUT"
)

// StorageError is returned by every MinIO operation that fails.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	msg := e.Message
	if e.Operation != "" {
		msg = fmt.Sprintf("%s: %s", e.Operation, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("minio: %s: %v", msg, e.Cause)
	}
	return "minio: " + msg
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func NewConnectionError(cause error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "connection failed", Cause: cause}
}

func NewBucketNotFoundError(bucketName string) *StorageError {
	return &StorageError{Code: ErrCodeBucketNotFound, Message: fmt.Sprintf("bucket not found: %s", bucketName)}
}

func NewObjectNotFoundError(objectName string) *StorageError {
	return &StorageError{Code: ErrCodeObjectNotFound, Message: fmt.Sprintf("object not found: %s", objectName)}
}

func NewInvalidInputError(message string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: message}
}

// IsNotFound reports whether err means the bucket or the object does not exist.
func IsNotFound(err error) bool {
	var se *StorageError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == ErrCodeObjectNotFound || se.Code == ErrCodeBucketNotFound
}

// IsInvalidInput reports whether err was rejected before reaching the server.
func IsInvalidInput(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.Code == ErrCodeInvalidInput
}
