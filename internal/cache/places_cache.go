// Package cache provides a Redis-backed cache for proximity search results.
// The cache is an optimization only: every failure path falls through to the
// search engine.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/crisisdesk/backend/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PlacesCache caches ranked emergency-center lists keyed by origin
// coordinate rounded to ~100m
type PlacesCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewPlacesCache creates a new places cache
func NewPlacesCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *PlacesCache {
	return &PlacesCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("centers:%.3f:%.3f", lat, lng)
}

// Get returns the cached result for the origin, or false on miss or any
// cache error
func (c *PlacesCache) Get(ctx context.Context, lat, lng float64) ([]models.PlaceCandidate, bool) {
	data, err := c.client.Get(ctx, cacheKey(lat, lng)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("places cache read failed", zap.Error(err))
		return nil, false
	}

	var centers []models.PlaceCandidate
	if err := json.Unmarshal(data, &centers); err != nil {
		c.logger.Warn("places cache entry corrupt", zap.Error(err))
		return nil, false
	}

	return centers, true
}

// Set stores the result for the origin. Failures are logged and ignored.
func (c *PlacesCache) Set(ctx context.Context, lat, lng float64, centers []models.PlaceCandidate) {
	data, err := json.Marshal(centers)
	if err != nil {
		c.logger.Warn("failed to marshal places cache entry", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, cacheKey(lat, lng), data, c.ttl).Err(); err != nil {
		c.logger.Warn("places cache write failed", zap.Error(err))
	}
}
