package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to keep repository constructors decoupled
// from a concrete client type
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
