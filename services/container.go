package services

import (
	"clipper/config"
	"clipper/repositories"
)

type Container struct {
	Job JobService
}

func NewContainer(repos repositories.Container, storage config.StorageConfig) *Container {
	return &Container{
		Job: NewJobService(repos.Jobs, repos.Cache, storage),
	}
}
