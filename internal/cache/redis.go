package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evyataryagoni/geoip-api/internal/models"
)

// Redis is a Cache backed by a Redis server, sharing cached responses
// across replicas.
//
// Key format: geo:<ip_address>
// Value: JSON-encoded IPGeoResponse, expiring after the configured TTL.
type Redis struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// NewRedis connects to the Redis server at addr and verifies the connection.
func NewRedis(addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{
		client: client,
		ctx:    ctx,
		ttl:    ttl,
	}, nil
}

// Get returns the cached response for the IP.
func (r *Redis) Get(ip string) (*models.IPGeoResponse, bool) {
	val, err := r.client.Get(r.ctx, key(ip)).Result()
	if err != nil {
		// redis.Nil means a plain miss; other errors degrade to a miss
		// so a Redis outage never fails a lookup.
		return nil, false
	}

	var resp models.IPGeoResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

// Insert stores the response for the IP with the configured TTL.
func (r *Redis) Insert(ip string, resp *models.IPGeoResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	r.client.Set(r.ctx, key(ip), data, r.ttl)
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

func key(ip string) string {
	return fmt.Sprintf("geo:%s", ip)
}
