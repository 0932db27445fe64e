package jobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neuradeck/slidekit/pkg/cache"
	sliderrors "github.com/neuradeck/slidekit/pkg/errors"
	"github.com/neuradeck/slidekit/pkg/observability"
)

// storeRedis is the store name reported to observability hooks.
const storeRedis = "jobs-redis"

// redisKeyPrefix namespaces job keys so the store can share a Redis
// database with the pipeline cache.
const redisKeyPrefix = "job:"

// RedisStore persists jobs in Redis so any server instance can answer
// polls for jobs started on another. Records are stored as JSON with a
// native Redis TTL, so expiry needs no janitor.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at addr and verifies the connection.
// Ping failures are retried with backoff, matching the pipeline cache.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	err := cache.RetryWithBackoff(ctx, func() error {
		return cache.Retryable(client.Ping(ctx).Err())
	})
	if err != nil {
		_ = client.Close()
		return nil, sliderrors.Wrap(sliderrors.ErrCodeStoreUnavailable, err, "connect redis at %s", addr)
	}
	return &RedisStore{client: client}, nil
}

// Get retrieves a job by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*Job, error) {
	observability.Store().OnStoreGet(ctx, storeRedis, id)

	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		observability.Store().OnStoreError(ctx, storeRedis, "get", err)
		return nil, sliderrors.Wrap(sliderrors.ErrCodeStoreUnavailable, err, "get job %s", id)
	}

	var j Job
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, sliderrors.Wrap(sliderrors.ErrCodeStore, err, "decode job %s", id)
	}
	if j.IsExpired() {
		// Native expiry can lag ExpiresAt when instance clocks disagree.
		_ = s.client.Del(ctx, redisKeyPrefix+id).Err()
		return nil, ErrExpired
	}
	return &j, nil
}

// Put stores a job with a TTL matching its ExpiresAt. A job that has
// already expired is not stored.
func (s *RedisStore) Put(ctx context.Context, j *Job) error {
	start := time.Now()

	data, err := json.Marshal(j)
	if err != nil {
		return sliderrors.Wrap(sliderrors.ErrCodeStore, err, "encode job %s", j.ID)
	}
	ttl := time.Until(j.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, redisKeyPrefix+j.ID, data, ttl).Err(); err != nil {
		observability.Store().OnStoreError(ctx, storeRedis, "put", err)
		return sliderrors.Wrap(sliderrors.ErrCodeStoreUnavailable, err, "put job %s", j.ID)
	}

	observability.Store().OnStorePut(ctx, storeRedis, j.ID, time.Since(start))
	return nil
}

// Delete removes a job. Deleting a missing job is not an error.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		observability.Store().OnStoreError(ctx, storeRedis, "delete", err)
		return sliderrors.Wrap(sliderrors.ErrCodeStoreUnavailable, err, "delete job %s", id)
	}
	return nil
}

// Cleanup is a no-op; Redis expires job keys natively.
func (s *RedisStore) Cleanup(ctx context.Context) error {
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
