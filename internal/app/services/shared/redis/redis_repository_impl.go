package redis

import (
	"context"
	"time"

	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Both scripts check and act in one round trip, so a key that expired and was
// taken by another owner is left alone.
var (
	deleteIfEquals = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

	expireIfEquals = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

func (r *redisRepository) DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	deleted, err := deleteIfEquals.Run(ctx, r.client, []string{key}, string(jsonValue)).Int64()
	if err != nil {
		return false, exceptions.ErrRedisDelete(err)
	}
	return deleted == 1, nil
}

func (r *redisRepository) ExpireIfEquals(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	extended, err := expireIfEquals.Run(ctx, r.client, []string{key}, string(jsonValue), exp.Milliseconds()).Int64()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return extended == 1, nil
}

func (r *redisRepository) Ping(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	if err != nil {
		return exceptions.ErrRedisGet(err)
	}
	return nil
}
