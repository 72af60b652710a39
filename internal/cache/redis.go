package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ms-shaziya7/capture-moments/config"
	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

// RedisCache holds read-through copies of per-user booking history.
type RedisCache struct {
	client     *redis.Client
	historyTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, historyTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		historyTTL: historyTTL,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetBookings returns nil, nil on a cache miss.
func (c *RedisCache) GetBookings(ctx context.Context, email string) ([]domain.Booking, error) {
	data, err := c.client.Get(ctx, historyKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// HistoryGeneration returns the per-user counter bumped by InvalidateBookings.
// A user who was never invalidated is at generation 0.
func (c *RedisCache) HistoryGeneration(ctx context.Context, email string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(email)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return gen, nil
}

// fillScript writes the history only while the generation still matches ARGV[1].
var fillScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if (cur or '0') ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// SetBookings fills the history for email if no invalidation happened since
// generation was read. It reports whether the value was stored.
func (c *RedisCache) SetBookings(ctx context.Context, email string, generation int64, bookings []domain.Booking) (bool, error) {
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	payload, err := json.Marshal(bookings)
	if err != nil {
		return false, err
	}

	stored, err := fillScript.Run(ctx, c.client,
		[]string{generationKey(email), historyKey(email)},
		strconv.FormatInt(generation, 10), payload, c.historyTTL.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// InvalidateBookings bumps the generation and drops the cached history in one transaction.
func (c *RedisCache) InvalidateBookings(ctx context.Context, email string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(email))
		pipe.Del(ctx, historyKey(email))
		return nil
	})
	return err
}

func historyKey(email string) string {
	return fmt.Sprintf("cache:bookings:user:%s", email)
}

func generationKey(email string) string {
	return fmt.Sprintf("cache:bookings:gen:%s", email)
}
