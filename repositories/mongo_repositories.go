package repositories

import (
	"context"
	"fmt"

	"clipper/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const jobCollection = "job"

type MongoRepositories struct {
	db           *mongo.Database
	redis        *redis.Client
	listCacheTTL int
}

// NewMongoRepositories accepts a nil database and a nil redis client; the
// built container then carries a nil repository or a no-op cache and the
// service layer degrades accordingly.
func NewMongoRepositories(db *mongo.Database, redisClient *redis.Client, listCacheTTL int) *MongoRepositories {
	return &MongoRepositories{db: db, redis: redisClient, listCacheTTL: listCacheTTL}
}

func (r *MongoRepositories) BuildContainer() Container {
	c := Container{Cache: NewRedisJobCache(r.redis, r.listCacheTTL)}
	if r.db != nil {
		c.Jobs = NewMongoJobRepository(r.db)
	}
	return c
}

type MongoJobRepository struct {
	coll *mongo.Collection
}

func NewMongoJobRepository(db *mongo.Database) *MongoJobRepository {
	return &MongoJobRepository{coll: db.Collection(jobCollection)}
}

func (r *MongoJobRepository) Insert(ctx context.Context, job *models.Job) error {
	res, err := r.coll.InsertOne(ctx, job)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid
	}
	return nil
}

func (r *MongoJobRepository) List(ctx context.Context, limit int) ([]models.Job, error) {
	opts := options.Find().SetLimit(int64(limit)).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []models.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

func (r *MongoJobRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}
