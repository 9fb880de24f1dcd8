// Package presenter shapes job data into the view models rendered by the job pages.
package presenter

import (
	"fmt"
	"strconv"
	"time"

	"jobboard-backend/internal/model"
)

// Apply button labels
const (
	ApplyLabel   = "Nộp đơn ngay"
	AppliedLabel = "✓ Đã nộp đơn"
)

// ApplyButton is the state of the apply button on the job page
type ApplyButton struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// JobDetail is the job page view model
type JobDetail struct {
	Job             model.JobView          `json:"job"`
	CompanyName     string                 `json:"company_name"`
	CompanyLogo     *string                `json:"company_logo,omitempty"`
	PostedDate      string                 `json:"posted_date"`
	PostedDaysAgo   int                    `json:"posted_days_ago"`
	SalaryLabel     string                 `json:"salary_label"`
	ExperienceLabel string                 `json:"experience_label"`
	PositionLabel   string                 `json:"position_label"`
	ApplicantCount  int64                  `json:"applicant_count"`
	ApplicantLabel  string                 `json:"applicant_label"`
	// HeadcountLabel is the sidebar form of the applicant count
	HeadcountLabel  string                 `json:"headcount_label"`
	State           model.ApplicationState `json:"state"`
	ApplyButton     ApplyButton            `json:"apply_button"`
}

// NewJobDetail builds the page model for view as seen by a requester whose
// apply state is state. canApply is false for requesters that may not apply at all.
func NewJobDetail(view model.JobView, state model.ApplicationState, canApply bool, now time.Time) JobDetail {
	base := view.Base()

	d := JobDetail{
		Job:             view,
		PostedDate:      FormatPostedDate(base.CreatedAt),
		PostedDaysAgo:   daysBetween(base.CreatedAt, now),
		SalaryLabel:     FormatSalary(base.Salary),
		ExperienceLabel: fmt.Sprintf("%d năm", base.ExperienceLevel),
		PositionLabel:   fmt.Sprintf("%d vị trí", base.Position),
		ApplicantCount:  base.ApplicationCount,
		ApplicantLabel:  fmt.Sprintf("%d ứng viên", base.ApplicationCount),
		HeadcountLabel:  fmt.Sprintf("%d người", base.ApplicationCount),
		State:           state,
	}
	if base.Company != nil {
		d.CompanyName = base.Company.Name
		d.CompanyLogo = base.Company.Logo
	}

	applied := state == model.StateApplied
	d.ApplyButton = ApplyButton{Label: ApplyLabel, Disabled: applied || !canApply}
	if applied {
		d.ApplyButton.Label = AppliedLabel
	}
	return d
}

// FormatPostedDate renders t in UTC as "Ngày D tháng M năm YYYY"
func FormatPostedDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("Ngày %d tháng %d năm %d", t.Day(), int(t.Month()), t.Year())
}

// FormatSalary renders a salary in millions of dong, e.g. "12.5 triệu VNĐ"
func FormatSalary(salary float64) string {
	return strconv.FormatFloat(salary, 'f', -1, 64) + " triệu VNĐ"
}

func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
