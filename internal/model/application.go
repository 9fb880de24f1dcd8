package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationState is the derived apply state of a (job, applicant) pair
type ApplicationState string

var (
	// StateNotApplied means no application exists for the pair
	StateNotApplied ApplicationState = "NOT_APPLIED"
	// StateApplied means exactly one application exists for the pair. It is terminal.
	StateApplied ApplicationState = "APPLIED"
)

// Application represents a job application record.
// The composite unique index makes at most one record per (job, applicant).
type Application struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	JobID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant,priority:1" json:"job_id"`
	Job   *Job      `gorm:"foreignKey:JobID;references:ID" json:"-"`

	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant,priority:2;index" json:"applicant_id"`
	Applicant   *User     `gorm:"foreignKey:ApplicantID;references:ID" json:"applicant,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a fresh id when none was set
func (a *Application) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
