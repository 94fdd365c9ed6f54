package redis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedis_InvalidConfig(t *testing.T) {
	_, err := NewRedis(RedisConfig{Port: 6379})
	assert.ErrorIs(t, err, ErrHostRequired)

	_, err = NewRedis(RedisConfig{Host: "localhost", Port: 70000})
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(ErrNil))
	assert.True(t, IsNil(fmt.Errorf("cache: %w", ErrNil)))
	assert.False(t, IsNil(ErrHostRequired))
	assert.False(t, IsNil(nil))
}
