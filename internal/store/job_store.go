package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
)

// JobStore reads and writes job postings
type JobStore struct {
	DB *database.DBinstanceStruct
}

// NewJobStore creates a new instance of JobStore
func NewJobStore(db *database.DBinstanceStruct) *JobStore {
	return &JobStore{DB: db}
}

// Create validates input and inserts a job owned by ownerID.
// The referenced company must exist.
func (s *JobStore) Create(ctx context.Context, input model.JobInput, ownerID uuid.UUID) (*model.Job, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	job := input.ToJob(ownerID)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var companies int64
		if err := tx.Model(&model.Company{}).Where("id = ?", job.CompanyID).Count(&companies).Error; err != nil {
			return err
		}
		if companies == 0 {
			return apperr.Validation("Invalid job", map[string]string{
				"company_id": "company_id must reference an existing company",
			})
		}
		return tx.Create(&job).Error
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperr.Validation("Invalid job", map[string]string{
				"company_id": "company_id must reference an existing company",
			})
		}
		return nil, translate(err, "Job", "create")
	}

	return s.GetByID(ctx, job.ID)
}

// GetByID returns a non-deleted job with its company
func (s *JobStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := s.DB.WithContext(ctx).
		Preload("Company").
		Where("id = ?", id).
		First(&job).Error; err != nil {
		return nil, translate(err, "Job", "retrieve")
	}
	return &job, nil
}

// GetAll lists jobs matching filter, newest first.
// Keyword matches title, location or description case-insensitively.
func (s *JobStore) GetAll(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	query := s.DB.WithContext(ctx).Preload("Company")

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		pattern := "%" + escapeLike(strings.ToLower(kw)) + "%"
		query = query.Where(`search_text LIKE ? ESCAPE '\'`, pattern)
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		query = query.Where("location = ?", loc)
	}
	if filter.Position > 0 {
		query = query.Where("position = ?", filter.Position)
	}

	jobs := []model.Job{}
	if err := query.Order(newestFirst).Find(&jobs).Error; err != nil {
		return nil, translate(err, "Job", "fetch")
	}
	return jobs, nil
}

// GetAllByOwner lists the jobs created by ownerID, newest first
func (s *JobStore) GetAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Job, error) {
	jobs := []model.Job{}
	if err := s.DB.WithContext(ctx).
		Preload("Company").
		Where("created_by_id = ?", ownerID).
		Order(newestFirst).
		Find(&jobs).Error; err != nil {
		return nil, translate(err, "Job", "fetch")
	}
	return jobs, nil
}

// Update applies patch to the job if requesterID created it.
// Fields left nil in patch keep their stored value.
func (s *JobStore) Update(ctx context.Context, id uuid.UUID, patch model.JobPatch, requesterID uuid.UUID) (*model.Job, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := loadOwned(tx, id, requesterID, "edit")
		if err != nil {
			return err
		}
		cols := patch.Apply(job)
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(job).Select(cols).Updates(job).Error
	})
	if err != nil {
		return nil, translate(err, "Job", "update")
	}

	return s.GetByID(ctx, id)
}

// Delete soft-deletes the job if requesterID created it. Its applications are kept.
func (s *JobStore) Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := loadOwned(tx, id, requesterID, "delete")
		if err != nil {
			return err
		}
		return tx.Delete(job).Error
	})
	return translate(err, "Job", "delete")
}

func loadOwned(tx *gorm.DB, id, requesterID uuid.UUID, action string) (*model.Job, error) {
	var job model.Job
	if err := tx.Clauses(rowLock(tx, "UPDATE")...).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	if !job.OwnedBy(requesterID) {
		return nil, apperr.Forbidden("You can only " + action + " your own job")
	}
	return &job, nil
}

// rowLock returns a row lock of the given strength where the dialect has one.
// sqlite runs on a single connection, so its transactions are already serial.
func rowLock(tx *gorm.DB, strength string) []clause.Expression {
	if tx.Dialector.Name() == database.DriverPostgres {
		return []clause.Expression{clause.Locking{Strength: strength}}
	}
	return nil
}

var newestFirst = clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
