package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/model"
)

// JobService serves the job endpoints and picks the view each requester gets
type JobService struct {
	jobs    JobRepository
	apps    ApplicationRepository
	filters FilterRepository
}

// NewJobService creates a new instance of JobService
func NewJobService(jobs JobRepository, apps ApplicationRepository, filters FilterRepository) *JobService {
	return &JobService{jobs: jobs, apps: apps, filters: filters}
}

// CreateJob posts a job owned by requester
func (s *JobService) CreateJob(ctx context.Context, input model.JobInput, requester model.User) (*model.PublicJobView, error) {
	job, err := s.jobs.Create(ctx, input, requester.ID)
	if err != nil {
		return nil, err
	}
	logger.Logger.Info("Job created",
		zap.String("job_id", job.ID.String()),
		zap.String("created_by", requester.ID.String()),
	)
	view := ToPublicView(job, 0)
	return &view, nil
}

// ListJobs returns public views of every job matching filter
func (s *JobService) ListJobs(ctx context.Context, filter model.JobFilter) ([]model.PublicJobView, error) {
	jobs, err := s.jobs.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.publicViews(ctx, jobs)
}

// ListOwnJobs returns the jobs requester created
func (s *JobService) ListOwnJobs(ctx context.Context, requester model.User) ([]model.PublicJobView, error) {
	jobs, err := s.jobs.GetAllByOwner(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	return s.publicViews(ctx, jobs)
}

func (s *JobService) publicViews(ctx context.Context, jobs []model.Job) ([]model.PublicJobView, error) {
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	counts, err := s.apps.CountByJobs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]model.PublicJobView, 0, len(jobs))
	for i := range jobs {
		views = append(views, ToPublicView(&jobs[i], counts[jobs[i].ID]))
	}
	return views, nil
}

// GetJob returns the job as requester may see it together with the
// requester's apply state. The owner gets the admin view, everyone else
// the public one.
func (s *JobService) GetJob(ctx context.Context, id uuid.UUID, requester model.User) (model.JobView, model.ApplicationState, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	state, err := applicationState(ctx, s.apps, job.ID, requester.ID)
	if err != nil {
		return nil, "", err
	}

	if job.OwnedBy(requester.ID) {
		apps, err := s.apps.ListByJob(ctx, job.ID)
		if err != nil {
			return nil, "", err
		}
		return ToAdminView(job, apps), state, nil
	}

	count, err := s.apps.CountByJob(ctx, job.ID)
	if err != nil {
		return nil, "", err
	}
	return ToPublicView(job, count), state, nil
}

// GetJobAdmin returns the job with every applicant. Only the owner and admins may call it.
func (s *JobService) GetJobAdmin(ctx context.Context, id uuid.UUID, requester model.User) (*model.AdminJobView, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanViewApplicants(requester, job) {
		return nil, errNoApplicantAccess
	}

	apps, err := s.apps.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	view := ToAdminView(job, apps)
	return &view, nil
}

// UpdateJob applies patch if requester owns the job
func (s *JobService) UpdateJob(ctx context.Context, id uuid.UUID, patch model.JobPatch, requester model.User) (*model.PublicJobView, error) {
	job, err := s.jobs.Update(ctx, id, patch, requester.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.apps.CountByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	logger.Logger.Info("Job updated", zap.String("job_id", job.ID.String()))
	view := ToPublicView(job, count)
	return &view, nil
}

// DeleteJob removes the job if requester owns it
func (s *JobService) DeleteJob(ctx context.Context, id uuid.UUID, requester model.User) error {
	if err := s.jobs.Delete(ctx, id, requester.ID); err != nil {
		return err
	}
	logger.Logger.Info("Job deleted",
		zap.String("job_id", id.String()),
		zap.String("deleted_by", requester.ID.String()),
	)
	return nil
}

// Positions returns the distinct positions of all jobs
func (s *JobService) Positions(ctx context.Context) ([]int, error) {
	return s.filters.DistinctPositions(ctx)
}

// Locations returns the distinct locations of all jobs
func (s *JobService) Locations(ctx context.Context) ([]string, error) {
	return s.filters.DistinctLocations(ctx)
}
