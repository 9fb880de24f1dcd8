package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanySummary is the company part of a job response
type CompanySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Logo *string   `json:"logo,omitempty"`
}

// PublicJobView is the job as disclosed to any authenticated user.
// Applications are reduced to a count.
type PublicJobView struct {
	ID               uuid.UUID       `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Requirements     []string        `json:"requirements"`
	Salary           float64         `json:"salary"`
	ExperienceLevel  int             `json:"experience_level"`
	Location         string          `json:"location"`
	JobType          string          `json:"job_type"`
	Position         int             `json:"position"`
	Company          *CompanySummary `json:"company,omitempty"`
	CreatedBy        uuid.UUID       `json:"created_by"`
	ApplicationCount int64           `json:"application_count"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ApplicantSummary is the applicant identity shown to job owners and admins
type ApplicantSummary struct {
	ID          uuid.UUID `json:"id"`
	Fullname    string    `json:"fullname"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
}

// ApplicationView is one application inside AdminJobView
type ApplicationView struct {
	ID        uuid.UUID        `json:"id"`
	Applicant ApplicantSummary `json:"applicant"`
	CreatedAt time.Time        `json:"created_at"`
}

// AdminJobView is the full job with resolved applicant identities
type AdminJobView struct {
	PublicJobView
	Applications []ApplicationView `json:"applications"`
}

// JobListResponse wraps list endpoints
type JobListResponse struct {
	Jobs []PublicJobView `json:"jobs"`
}

// ApplyResponse is returned by the apply endpoint
type ApplyResponse struct {
	Message     string           `json:"message"`
	Created     bool             `json:"created"`
	State       ApplicationState `json:"state"`
	Application Application      `json:"application"`
}

// JobView is either a PublicJobView or an AdminJobView
type JobView interface {
	Base() PublicJobView
}

// Base returns the view itself
func (v PublicJobView) Base() PublicJobView { return v }

// ApplyResult is the outcome of an apply request
type ApplyResult struct {
	Application *Application
	Created     bool
	State       ApplicationState
}
