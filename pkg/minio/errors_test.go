package minio

import (
	"errors"
	"fmt"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestHandleMinIOError(t *testing.T) {
	assert.Nil(t, handleMinIOError(nil, "noop"))

	err := handleMinIOError(minio.ErrorResponse{Code: "NoSuchKey", Key: "questions.json"}, "get_file_info")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "questions.json")

	err = handleMinIOError(minio.ErrorResponse{Code: "NoSuchBucket"}, "get_file_info")
	assert.True(t, IsNotFound(err))

	err = handleMinIOError(minio.ErrorResponse{Code: "AccessDenied"}, "get_file_info")
	var se *StorageError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodePermission, se.Code)
	assert.False(t, IsNotFound(err))

	cause := errors.New("dial tcp: refused")
	err = handleMinIOError(cause, "connect")
	assert.ErrorIs(t, err, cause)
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodeConnection, se.Code)
}

func TestIsNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("load: %w", NewObjectNotFoundError("m.json"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("other")))
}
