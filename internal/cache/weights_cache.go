package cache

import (
	"context"
	"encoding/json"
	"time"

	"teamsort/internal/model"

	"github.com/redis/go-redis/v9"
)

const weightsKey = "stats:areaWeights"

// WeightsCache holds the computed balanced area weights so every
// session start does not rescan recent games. A miss is (nil, nil).
type WeightsCache interface {
	Get(ctx context.Context) (map[model.Category]float64, error)
	Set(ctx context.Context, weights map[model.Category]float64) error
}

type weightsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWeightsCache creates a Redis-backed weights cache.
func NewWeightsCache(client *redis.Client) WeightsCache {
	return &weightsCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *weightsCache) Get(ctx context.Context) (map[model.Category]float64, error) {
	data, err := c.client.Get(ctx, weightsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var weights map[model.Category]float64
	if err := json.Unmarshal([]byte(data), &weights); err != nil {
		return nil, err
	}
	return weights, nil
}

func (c *weightsCache) Set(ctx context.Context, weights map[model.Category]float64) error {
	data, err := json.Marshal(weights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, weightsKey, data, c.ttl).Err()
}
