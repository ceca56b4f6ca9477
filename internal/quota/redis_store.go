package quota

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"codeberg.org/tubespark/server/internal/plans"
)

const keyUsage = "quota:%s:%s:%s"

// counters outlive their cycle briefly so late reads still see the final value
const usageGrace = 7 * 24 * time.Hour

// KEYS[1] counter, ARGV[1] amount, ARGV[2] ceiling (<0 unlimited), ARGV[3] expire-at unix
var incrementScript = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
local amount = tonumber(ARGV[1])
local ceiling = tonumber(ARGV[2])

if ceiling >= 0 and current + amount > ceiling then
	return {0, current}
end

local used = redis.call("INCRBY", KEYS[1], amount)
redis.call("EXPIREAT", KEYS[1], ARGV[3])

return {1, used}
`)

// implements Store using Redis. The check and increment run inside one Lua
// script, so they are atomic with respect to other clients.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// creates a new Redis-backed store from a URL
func NewRedisStoreFromURL(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func usageKey(userID string, kind plans.ResourceKind, cycle Cycle) string {
	return fmt.Sprintf(keyUsage, userID, kind, cycle.Key())
}

func (s *RedisStore) Used(ctx context.Context, userID string, kind plans.ResourceKind, cycle Cycle) (int, error) {
	val, err := s.client.Get(ctx, usageKey(userID, kind, cycle)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read usage: %w", err)
	}

	used, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt usage counter %q: %w", val, err)
	}

	return used, nil
}

func (s *RedisStore) IncrementWithCeiling(ctx context.Context, userID string, kind plans.ResourceKind, cycle Cycle, amount, ceiling int) (int, bool, error) {
	expireAt := cycle.End.Add(usageGrace).Unix()

	result, err := incrementScript.Run(ctx, s.client,
		[]string{usageKey(userID, kind, cycle)},
		amount, ceiling, expireAt,
	).Int64Slice()
	if err != nil {
		return 0, false, fmt.Errorf("failed to increment usage: %w", err)
	}

	if len(result) != 2 {
		return 0, false, fmt.Errorf("unexpected script result: %v", result)
	}

	return int(result[1]), result[0] == 1, nil
}

// returns the underlying redis client for sharing with other components
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
