package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard-backend/internal/apperr"
)

// Job is gorm model for store job posting data in DB
type Job struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"type:text;not null" json:"title"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Requirements    []string  `gorm:"type:text;serializer:json" json:"requirements"`
	Salary          float64   `gorm:"not null" json:"salary"`
	ExperienceLevel int       `gorm:"not null;default:0" json:"experience_level"`
	Location        string    `gorm:"type:text;not null;index" json:"location"`
	JobType         string    `gorm:"type:text;not null" json:"job_type"`
	Position        int       `gorm:"not null;index" json:"position"`

	// SearchText is the lowercased title, location and description that
	// keyword search matches against. Kept in sync by BeforeCreate and JobPatch.Apply.
	SearchText string `gorm:"type:text;not null;default:''" json:"-"`

	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Company   *Company  `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`

	// CreatedByID is written once on insert and never updated
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"created_by"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;references:ID" json:"-"`

	Applications []Application `gorm:"foreignKey:JobID" json:"-"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a fresh id when none was set and fills SearchText
func (j *Job) BeforeCreate(*gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	j.RefreshSearchText()
	return nil
}

// RefreshSearchText recomputes SearchText from the searchable fields.
// strings.ToLower folds non-ASCII letters, which SQL LOWER does not on sqlite.
func (j *Job) RefreshSearchText() {
	j.SearchText = strings.ToLower(strings.Join([]string{j.Title, j.Location, j.Description}, "\n"))
}

// OwnedBy reports whether userID created the job
func (j *Job) OwnedBy(userID uuid.UUID) bool {
	return j.CreatedByID == userID
}

// JobInput is the request body for posting a new job
type JobInput struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          *float64  `json:"salary"`
	ExperienceLevel int       `json:"experience_level"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	Position        int       `json:"position"`
	CompanyID       uuid.UUID `json:"company_id"`
}

// Validate checks required fields and ranges
func (in *JobInput) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "description is required"
	}
	if strings.TrimSpace(in.Location) == "" {
		fields["location"] = "location is required"
	}
	if strings.TrimSpace(in.JobType) == "" {
		fields["job_type"] = "job_type is required"
	}
	if in.Position < 1 {
		fields["position"] = "position must be at least 1"
	}
	if in.Salary == nil {
		fields["salary"] = "salary is required"
	} else if *in.Salary < 0 {
		fields["salary"] = "salary must not be negative"
	}
	if in.ExperienceLevel < 0 {
		fields["experience_level"] = "experience_level must not be negative"
	}
	if in.CompanyID == uuid.Nil {
		fields["company_id"] = "company_id is required"
	}
	if len(fields) > 0 {
		return apperr.Validation("Invalid job", fields)
	}
	return nil
}

// ToJob builds the model owned by ownerID
func (in *JobInput) ToJob(ownerID uuid.UUID) Job {
	return Job{
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		Requirements:    cleanRequirements(in.Requirements),
		Salary:          *in.Salary,
		ExperienceLevel: in.ExperienceLevel,
		Location:        strings.TrimSpace(in.Location),
		JobType:         strings.TrimSpace(in.JobType),
		Position:        in.Position,
		CompanyID:       in.CompanyID,
		CreatedByID:     ownerID,
	}
}

// JobPatch is a partial update. Nil fields are left untouched.
type JobPatch struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Requirements    *[]string `json:"requirements"`
	Salary          *float64  `json:"salary"`
	ExperienceLevel *int      `json:"experience_level"`
	Location        *string   `json:"location"`
	JobType         *string   `json:"job_type"`
	Position        *int      `json:"position"`
}

// Validate rejects set fields with malformed values
func (p *JobPatch) Validate() error {
	fields := map[string]string{}
	blank := func(s *string) bool { return s != nil && strings.TrimSpace(*s) == "" }
	if blank(p.Title) {
		fields["title"] = "title must not be empty"
	}
	if blank(p.Description) {
		fields["description"] = "description must not be empty"
	}
	if blank(p.Location) {
		fields["location"] = "location must not be empty"
	}
	if blank(p.JobType) {
		fields["job_type"] = "job_type must not be empty"
	}
	if p.Position != nil && *p.Position < 1 {
		fields["position"] = "position must be at least 1"
	}
	if p.Salary != nil && *p.Salary < 0 {
		fields["salary"] = "salary must not be negative"
	}
	if p.ExperienceLevel != nil && *p.ExperienceLevel < 0 {
		fields["experience_level"] = "experience_level must not be negative"
	}
	if len(fields) > 0 {
		return apperr.Validation("Invalid job update", fields)
	}
	return nil
}

// Apply copies set fields onto job and returns the touched column names
func (p *JobPatch) Apply(job *Job) []string {
	var cols []string
	if p.Title != nil {
		job.Title = strings.TrimSpace(*p.Title)
		cols = append(cols, "title")
	}
	if p.Description != nil {
		job.Description = *p.Description
		cols = append(cols, "description")
	}
	if p.Requirements != nil {
		job.Requirements = cleanRequirements(*p.Requirements)
		cols = append(cols, "requirements")
	}
	if p.Salary != nil {
		job.Salary = *p.Salary
		cols = append(cols, "salary")
	}
	if p.ExperienceLevel != nil {
		job.ExperienceLevel = *p.ExperienceLevel
		cols = append(cols, "experience_level")
	}
	if p.Location != nil {
		job.Location = strings.TrimSpace(*p.Location)
		cols = append(cols, "location")
	}
	if p.JobType != nil {
		job.JobType = strings.TrimSpace(*p.JobType)
		cols = append(cols, "job_type")
	}
	if p.Position != nil {
		job.Position = *p.Position
		cols = append(cols, "position")
	}
	if p.Title != nil || p.Description != nil || p.Location != nil {
		job.RefreshSearchText()
		cols = append(cols, "search_text")
	}
	return cols
}

// cleanRequirements trims entries and drops empty ones, keeping order
func cleanRequirements(reqs []string) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// JobFilter narrows GetAll. Zero values mean no filtering.
type JobFilter struct {
	Keyword  string
	Location string
	Position int
}
