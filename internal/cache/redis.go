package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// SeriesCache caches fetched closing-price series in Redis so a batch scan
// does not refetch the same symbol within one run. Misses and cache errors
// are never fatal; callers fall through to the fetcher.
type SeriesCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection with a ping.
func New(addr, password string, db int, ttl time.Duration) (*SeriesCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &SeriesCache{client: client, ttl: ttl}, nil
}

func key(symbol, interval string, lookback int) string {
	return fmt.Sprintf("closes:%s:%s:%d", symbol, interval, lookback)
}

// Get returns the cached closes for a symbol/interval/lookback, or ok=false.
func (c *SeriesCache) Get(ctx context.Context, symbol, interval string, lookback int) ([]float64, bool) {
	data, err := c.client.Get(ctx, key(symbol, interval, lookback)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("[WARN] redis get %s: %v", symbol, err)
		return nil, false
	}
	var closes []float64
	if err := json.Unmarshal(data, &closes); err != nil {
		log.Printf("[WARN] redis decode %s: %v", symbol, err)
		return nil, false
	}
	return closes, true
}

// Put stores the closes for a symbol/interval/lookback with the cache TTL.
func (c *SeriesCache) Put(ctx context.Context, symbol, interval string, lookback int, closes []float64) {
	data, err := json.Marshal(closes)
	if err != nil {
		log.Printf("[WARN] redis encode %s: %v", symbol, err)
		return
	}
	if err := c.client.Set(ctx, key(symbol, interval, lookback), data, c.ttl).Err(); err != nil {
		log.Printf("[WARN] redis set %s: %v", symbol, err)
	}
}

// Close closes the Redis connection.
func (c *SeriesCache) Close() error {
	return c.client.Close()
}
