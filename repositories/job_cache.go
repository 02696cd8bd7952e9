package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clipper/logger"
	"clipper/models"

	"github.com/redis/go-redis/v9"
)

// RedisJobCache caches recent job listings keyed by the requested limit.
// With a nil client every lookup is a miss and every store is a no-op.
type RedisJobCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisJobCache(redisClient *redis.Client, ttlSeconds int) *RedisJobCache {
	return &RedisJobCache{redis: redisClient, ttl: time.Duration(ttlSeconds) * time.Second}
}

func listKey(limit int) string {
	return fmt.Sprintf("jobs:recent:%d", limit)
}

func (c *RedisJobCache) GetList(ctx context.Context, limit int) ([]models.JobRecord, bool) {
	if c.redis == nil {
		return nil, false
	}

	data, err := c.redis.Get(ctx, listKey(limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Debugf("job list cache get failed: %v", err)
		}
		return nil, false
	}

	var jobs []models.JobRecord
	if err := json.Unmarshal(data, &jobs); err != nil {
		logger.Debugf("job list cache decode failed: %v", err)
		return nil, false
	}
	return jobs, true
}

func (c *RedisJobCache) SetList(ctx context.Context, limit int, jobs []models.JobRecord) {
	if c.redis == nil {
		return
	}

	data, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, listKey(limit), data, c.ttl).Err(); err != nil {
		logger.Debugf("job list cache set failed: %v", err)
	}
}
