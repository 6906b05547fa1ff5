package metastore

import (
	"context"
	"fmt"
)

// Store drivers.
const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Open returns the store for driver. DriverNone (or "") returns a nil Store
// and no error.
func Open(ctx context.Context, driver string, redisOpts RedisOptions) (Store, error) {
	switch driver {
	case "", DriverNone:
		return nil, nil
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverRedis:
		s, err := NewRedisStore(ctx, redisOpts)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", driver)
}
