package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

const redisKeyPrefix = "availability:"

// Redis кэш окон доступности в Redis, значения хранятся в JSON
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis создает кэш поверх клиента. ttl <= 0 хранит записи без срока.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) ([]availability.DayColumn, bool, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - %v", ErrBackend, err)
	}

	var days []availability.DayColumn
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, false, fmt.Errorf("%w: Get - %v", ErrDecode, err)
	}
	return days, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, days []availability.DayColumn) error {
	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("%w: Set - %v", ErrEncode, err)
	}

	ttl := r.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrBackend, err)
	}
	return nil
}
