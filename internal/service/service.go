// Package service implements the job lifecycle and application rules on top of the stores.
package service

import (
	"context"

	"github.com/google/uuid"

	"jobboard-backend/internal/model"
)

// JobRepository is the persistence the job service needs
type JobRepository interface {
	Create(ctx context.Context, input model.JobInput, ownerID uuid.UUID) (*model.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	GetAll(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	GetAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Job, error)
	Update(ctx context.Context, id uuid.UUID, patch model.JobPatch, requesterID uuid.UUID) (*model.Job, error)
	Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
}

// ApplicationRepository is the persistence of applications
type ApplicationRepository interface {
	Create(ctx context.Context, jobID, applicantID uuid.UUID) (*model.Application, bool, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error)
	ExistsFor(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	CountByJob(ctx context.Context, jobID uuid.UUID) (int64, error)
	CountByJobs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// FilterRepository provides facet values for the job list
type FilterRepository interface {
	DistinctPositions(ctx context.Context) ([]int, error)
	DistinctLocations(ctx context.Context) ([]string, error)
}
