package database

import (
	"context"
	"fmt"
	"time"

	"clipper/config"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo connects to the configured MongoDB and verifies it with a short
// ping. An empty URI means the store was not configured at all; the caller
// treats a nil database as "collaborator unavailable" and degrades to
// file-only operation.
func InitMongo(cfg *config.MongoConfig) (*mongo.Database, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo uri not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client.Database(cfg.Database), nil
}

// InitRedis builds a redis client for the optional listing cache. No ping:
// the cache is best-effort and every operation on it tolerates failure.
func InitRedis(cfg *config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
