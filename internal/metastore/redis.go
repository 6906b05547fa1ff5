package metastore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Address  string
	Password string
	DB       int
	// Prefix is prepended to the document id to form the hash key.
	Prefix string
}

// RedisStore keeps each document's metadata in one Redis hash.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Address,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client, prefix: opts.Prefix}, nil
}

func (s *RedisStore) key(id string) string { return s.prefix + id }

func (s *RedisStore) Get(ctx context.Context, id string) (Meta, error) {
	fields, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return Meta{}, fmt.Errorf("error reading %s: %w", s.key(id), err)
	}
	if len(fields) == 0 {
		return Meta{}, ErrNotFound
	}
	return fromFields(fields), nil
}

func (s *RedisStore) Put(ctx context.Context, id string, m Meta) error {
	fields, err := toFields(m)
	if err != nil {
		return err
	}
	values := make(map[string]any, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	if err := s.client.HSet(ctx, s.key(id), values).Err(); err != nil {
		return fmt.Errorf("error writing %s: %w", s.key(id), err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
