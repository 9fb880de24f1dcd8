package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/model"
)

var (
	errNoApplicantAccess = apperr.Forbidden("You are not allowed to view applicants of this job")
	errApplicantOnly     = apperr.Forbidden("Only applicants can apply to jobs")
	errAlreadyApplied    = apperr.New(apperr.CodeConflict, "You have already applied to this job", nil)
)

// ApplyService moves a (job, applicant) pair from NOT_APPLIED to APPLIED
type ApplyService struct {
	jobs   JobRepository
	apps   ApplicationRepository
	policy string
}

// NewApplyService creates a new instance of ApplyService.
// policy is config.ApplyPolicyIdempotent or config.ApplyPolicyConflict.
func NewApplyService(jobs JobRepository, apps ApplicationRepository, policy string) *ApplyService {
	if policy != config.ApplyPolicyConflict {
		policy = config.ApplyPolicyIdempotent
	}
	return &ApplyService{jobs: jobs, apps: apps, policy: policy}
}

// Apply records that requester applied to jobID. Applying again returns the
// existing application, or Conflict when the repeat policy says so.
func (s *ApplyService) Apply(ctx context.Context, jobID uuid.UUID, requester model.User) (*model.ApplyResult, error) {
	if requester.Role != model.RoleApplicant {
		return nil, errApplicantOnly
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	app, created, err := s.apps.Create(ctx, jobID, requester.ID)
	if err != nil {
		return nil, err
	}
	if !created && s.policy == config.ApplyPolicyConflict {
		return nil, errAlreadyApplied
	}
	if created {
		logger.Logger.Info("Application created",
			zap.String("job_id", jobID.String()),
			zap.String("applicant_id", requester.ID.String()),
		)
	}

	return &model.ApplyResult{Application: app, Created: created, State: model.StateApplied}, nil
}

// State reports whether userID has applied to jobID. It is read fresh on every call.
func (s *ApplyService) State(ctx context.Context, jobID, userID uuid.UUID) (model.ApplicationState, error) {
	return applicationState(ctx, s.apps, jobID, userID)
}

// applicationState derives the apply state from the stored applications.
// APPLIED is terminal since applications are never removed.
func applicationState(ctx context.Context, apps ApplicationRepository, jobID, userID uuid.UUID) (model.ApplicationState, error) {
	applied, err := apps.ExistsFor(ctx, jobID, userID)
	if err != nil {
		return "", err
	}
	if applied {
		return model.StateApplied, nil
	}
	return model.StateNotApplied, nil
}
