package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultConnectTimeout bounds the ping performed by NewRedis.
const DefaultConnectTimeout = 5 * time.Second

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
	ErrNil          = errors.New("redis: key does not exist")
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
