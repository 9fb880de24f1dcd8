package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/model"
)

func sampleView() model.PublicJobView {
	logo := "https://cdn.example.com/logo.png"
	return model.PublicJobView{
		ID:               uuid.New(),
		Title:            "Backend Engineer",
		Salary:           12.5,
		ExperienceLevel:  2,
		Position:         3,
		ApplicationCount: 4,
		Company:          &model.CompanySummary{ID: uuid.New(), Name: "TechNova", Logo: &logo},
		CreatedAt:        time.Date(2024, time.March, 5, 23, 30, 0, 0, time.UTC),
	}
}

func TestNewJobDetail_NotApplied(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	d := NewJobDetail(sampleView(), model.StateNotApplied, true, now)

	assert.Equal(t, "Ngày 5 tháng 3 năm 2024", d.PostedDate)
	assert.Equal(t, 9, d.PostedDaysAgo)
	assert.Equal(t, "12.5 triệu VNĐ", d.SalaryLabel)
	assert.Equal(t, "2 năm", d.ExperienceLabel)
	assert.Equal(t, "3 vị trí", d.PositionLabel)
	assert.Equal(t, "4 ứng viên", d.ApplicantLabel)
	assert.Equal(t, "4 người", d.HeadcountLabel)
	assert.Equal(t, int64(4), d.ApplicantCount)
	assert.Equal(t, "TechNova", d.CompanyName)
	require.NotNil(t, d.CompanyLogo)
	assert.Equal(t, ApplyButton{Label: ApplyLabel, Disabled: false}, d.ApplyButton)
}

func TestNewJobDetail_Applied(t *testing.T) {
	d := NewJobDetail(sampleView(), model.StateApplied, true, time.Now())
	assert.Equal(t, ApplyButton{Label: AppliedLabel, Disabled: true}, d.ApplyButton)
	assert.Equal(t, "✓ Đã nộp đơn", d.ApplyButton.Label)
	assert.Equal(t, model.StateApplied, d.State)
}

func TestNewJobDetail_CannotApply(t *testing.T) {
	d := NewJobDetail(sampleView(), model.StateNotApplied, false, time.Now())
	assert.Equal(t, ApplyButton{Label: ApplyLabel, Disabled: true}, d.ApplyButton)
}

func TestNewJobDetail_AdminViewAndNoCompany(t *testing.T) {
	v := sampleView()
	v.Company = nil
	admin := model.AdminJobView{PublicJobView: v, Applications: []model.ApplicationView{{ID: uuid.New()}}}

	d := NewJobDetail(admin, model.StateNotApplied, false, v.CreatedAt)
	assert.Empty(t, d.CompanyName)
	assert.Nil(t, d.CompanyLogo)
	assert.Equal(t, 0, d.PostedDaysAgo)

	body, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"applications"`)
}

func TestFormatPostedDate_UsesUTC(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	// 2024-01-01 03:00 in UTC+7 is still Dec 31 in UTC
	assert.Equal(t, "Ngày 31 tháng 12 năm 2023", FormatPostedDate(time.Date(2024, 1, 1, 3, 0, 0, 0, loc)))
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "30 triệu VNĐ", FormatSalary(30))
	assert.Equal(t, "0 triệu VNĐ", FormatSalary(0))
}
