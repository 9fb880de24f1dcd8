package service

import (
	"jobboard-backend/internal/model"
)

// CanViewApplicants reports whether requester may see who applied to job.
// Only the job owner and admins may.
func CanViewApplicants(requester model.User, job *model.Job) bool {
	return job.OwnedBy(requester.ID) || requester.IsAdmin()
}

// ToPublicView strips applicant identities and keeps only their count
func ToPublicView(job *model.Job, applicationCount int64) model.PublicJobView {
	reqs := job.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	view := model.PublicJobView{
		ID:               job.ID,
		Title:            job.Title,
		Description:      job.Description,
		Requirements:     reqs,
		Salary:           job.Salary,
		ExperienceLevel:  job.ExperienceLevel,
		Location:         job.Location,
		JobType:          job.JobType,
		Position:         job.Position,
		CreatedBy:        job.CreatedByID,
		ApplicationCount: applicationCount,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
	if job.Company != nil {
		view.Company = &model.CompanySummary{
			ID:   job.Company.ID,
			Name: job.Company.Name,
			Logo: job.Company.Logo,
		}
	}
	return view
}

// ToAdminView is the public view plus every application with its applicant
func ToAdminView(job *model.Job, apps []model.Application) model.AdminJobView {
	views := make([]model.ApplicationView, 0, len(apps))
	for _, a := range apps {
		v := model.ApplicationView{ID: a.ID, CreatedAt: a.CreatedAt}
		v.Applicant.ID = a.ApplicantID
		if a.Applicant != nil {
			v.Applicant.Fullname = a.Applicant.Fullname
			v.Applicant.Email = a.Applicant.Email
			v.Applicant.PhoneNumber = a.Applicant.PhoneNumber
		}
		views = append(views, v)
	}
	return model.AdminJobView{
		PublicJobView: ToPublicView(job, int64(len(apps))),
		Applications:  views,
	}
}
