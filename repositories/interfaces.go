package repositories

import (
	"context"

	"clipper/models"
)

// JobRepository is the persistence collaborator: opaque insert/list over the
// "job" collection, plus a reachability probe for the health endpoint.
type JobRepository interface {
	Insert(ctx context.Context, job *models.Job) error
	List(ctx context.Context, limit int) ([]models.Job, error)
	Ping(ctx context.Context) error
}

// JobCache holds recent listing results. All methods are best-effort; a
// miss and a failure look the same to callers.
type JobCache interface {
	GetList(ctx context.Context, limit int) ([]models.JobRecord, bool)
	SetList(ctx context.Context, limit int, jobs []models.JobRecord)
}

type Container struct {
	Jobs  JobRepository
	Cache JobCache
}
