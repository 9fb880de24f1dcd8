package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
)

// ApplicationStore records applications of users to jobs
type ApplicationStore struct {
	DB *database.DBinstanceStruct
}

// NewApplicationStore creates a new instance of ApplicationStore
func NewApplicationStore(db *database.DBinstanceStruct) *ApplicationStore {
	return &ApplicationStore{DB: db}
}

// Create inserts an application for (jobID, applicantID) unless one exists.
// created is false when the pair was already recorded, in which case the
// stored application is returned. Concurrent calls for the same pair end up
// with exactly one row.
//
// The job row is share locked for the insert, so a concurrent Delete either
// waits for the application or makes the job NotFound here.
func (s *ApplicationStore) Create(ctx context.Context, jobID, applicantID uuid.UUID) (*model.Application, bool, error) {
	var (
		app     = model.Application{JobID: jobID, ApplicantID: applicantID}
		created bool
	)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job model.Job
		if err := tx.Clauses(rowLock(tx, "SHARE")...).
			Select("id").
			Where("id = ?", jobID).
			First(&job).Error; err != nil {
			return translate(err, "Job", "retrieve")
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}, {Name: "applicant_id"}},
			DoNothing: true,
		}).Create(&app)
		if err := result.Error; err != nil {
			if isForeignKeyViolation(err) {
				return apperr.New(apperr.CodeNotFound, "Job not found", err)
			}
			return translate(err, "Application", "create")
		}
		if result.RowsAffected == 1 {
			created = true
			return nil
		}

		existing, err := findApplication(tx, jobID, applicantID)
		if err != nil {
			return err
		}
		app = *existing
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &app, created, nil
}

func findApplication(tx *gorm.DB, jobID, applicantID uuid.UUID) (*model.Application, error) {
	var app model.Application
	if err := tx.
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&app).Error; err != nil {
		return nil, translate(err, "Application", "retrieve")
	}
	return &app, nil
}

// ListByJob returns the applications of a job with their applicants, oldest first
func (s *ApplicationStore) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	apps := []model.Application{}
	if err := s.DB.WithContext(ctx).
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, "Application", "fetch")
	}
	return apps, nil
}

// ExistsFor reports whether applicantID applied to jobID
func (s *ApplicationStore) ExistsFor(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).
		Model(&model.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error; err != nil {
		return false, translate(err, "Application", "check")
	}
	return count > 0, nil
}

// CountByJob returns the number of applications for a job
func (s *ApplicationStore) CountByJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).
		Model(&model.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error; err != nil {
		return 0, translate(err, "Application", "count")
	}
	return count, nil
}

// CountByJobs returns application counts keyed by job id.
// Jobs without applications are absent from the map.
func (s *ApplicationStore) CountByJobs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(jobIDs))
	if len(jobIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		JobID uuid.UUID
		Total int64
	}
	if err := s.DB.WithContext(ctx).
		Model(&model.Application{}).
		Select("job_id, COUNT(*) AS total").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Scan(&rows).Error; err != nil {
		return nil, translate(err, "Application", "count")
	}
	for _, r := range rows {
		counts[r.JobID] = r.Total
	}
	return counts, nil
}
