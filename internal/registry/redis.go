package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "payment:tracking:"

// RedisRegistry stores sessions in Redis so tracking state survives a single
// process and can be read by other instances. Entries expire after the
// configured TTL so abandoned sessions do not accumulate.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *RedisRegistry {
	if ttl == 0 {
		ttl = 2 * time.Hour
	}
	return &RedisRegistry{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisRegistry) Put(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.TrackingID, err)
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.TrackingID, data, r.ttl).Err()
}

func (r *RedisRegistry) Get(ctx context.Context, trackingID string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+trackingID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", trackingID, err)
	}
	return &session, nil
}

func (r *RedisRegistry) Delete(ctx context.Context, trackingID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+trackingID).Err()
}
