package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/store"
)

type fixture struct {
	db    *database.DBinstanceStruct
	jobs  *JobService
	apply *ApplyService
	apps  *store.ApplicationStore
}

func newFixture(t *testing.T, policy string) fixture {
	db := database.NewSQLiteTestDB(t)
	jobStore := store.NewJobStore(db)
	appStore := store.NewApplicationStore(db)
	return fixture{
		db:    db,
		jobs:  NewJobService(jobStore, appStore, store.NewFilterAggregator(db)),
		apply: NewApplyService(jobStore, appStore, policy),
		apps:  appStore,
	}
}

func createApplicants(t *testing.T, db *database.DBinstanceStruct, n int) []model.User {
	users := make([]model.User, 0, n)
	for i := 0; i < n; i++ {
		u := model.User{
			Fullname:    fmt.Sprintf("Applicant %d", i),
			Email:       fmt.Sprintf("extra%d-%s@example.com", i, uuid.NewString()[:8]),
			PhoneNumber: fmt.Sprintf("09100000%02d", i),
			Role:        model.RoleApplicant,
		}
		require.NoError(t, db.Create(&u).Error)
		users = append(users, u)
	}
	return users
}

func TestCanViewApplicants(t *testing.T) {
	job := &model.Job{CreatedByID: database.TestAdminUser1.ID}

	assert.True(t, CanViewApplicants(database.TestAdminUser1, job))
	assert.True(t, CanViewApplicants(database.TestAdminUser2, job))
	assert.False(t, CanViewApplicants(database.TestApplicant1, job))

	applicantOwner := model.User{ID: uuid.New(), Role: model.RoleApplicant}
	assert.True(t, CanViewApplicants(applicantOwner, &model.Job{CreatedByID: applicantOwner.ID}))
}

func TestVisibility_FiveApplications(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()

	applicants := createApplicants(t, f.db, 5)
	for _, a := range applicants {
		_, err := f.apply.Apply(ctx, database.TestJob1.ID, a)
		require.NoError(t, err)
	}

	// public view for another user carries only the count
	view, _, err := f.jobs.GetJob(ctx, database.TestJob1.ID, database.TestApplicant1)
	require.NoError(t, err)
	public, ok := view.(model.PublicJobView)
	require.True(t, ok, "expected public view, got %T", view)
	assert.Equal(t, int64(5), public.ApplicationCount)

	body, err := json.Marshal(view)
	require.NoError(t, err)
	for _, a := range applicants {
		assert.NotContains(t, string(body), a.Email)
		assert.NotContains(t, string(body), a.ID.String())
	}
	assert.NotContains(t, string(body), `"applications"`)

	// owner sees all five applicants on both read paths
	ownerView, _, err := f.jobs.GetJob(ctx, database.TestJob1.ID, database.TestAdminUser1)
	require.NoError(t, err)
	admin, ok := ownerView.(model.AdminJobView)
	require.True(t, ok, "expected admin view, got %T", ownerView)
	assert.Len(t, admin.Applications, 5)

	full, err := f.jobs.GetJobAdmin(ctx, database.TestJob1.ID, database.TestAdminUser1)
	require.NoError(t, err)
	require.Len(t, full.Applications, 5)
	emails := []string{}
	for _, a := range full.Applications {
		emails = append(emails, a.Applicant.Email)
	}
	for _, a := range applicants {
		assert.Contains(t, emails, a.Email)
	}
	assert.Equal(t, int64(5), full.ApplicationCount)
}

func TestGetJobAdmin_Access(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()

	_, err := f.jobs.GetJobAdmin(ctx, database.TestJob1.ID, database.TestApplicant1)
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))

	// any admin may look
	view, err := f.jobs.GetJobAdmin(ctx, database.TestJob1.ID, database.TestAdminUser2)
	require.NoError(t, err)
	assert.Empty(t, view.Applications)

	_, err = f.jobs.GetJobAdmin(ctx, uuid.New(), database.TestAdminUser1)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestScenario_CreateListApply(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()
	salary := 40.0

	created, err := f.jobs.CreateJob(ctx, model.JobInput{
		Title:       "Backend Engineer",
		Description: "Payments team",
		Salary:      &salary,
		Location:    "Hanoi",
		JobType:     "Full-time",
		Position:    2,
		CompanyID:   database.TestCompany2.ID,
	}, database.TestAdminUser2)
	require.NoError(t, err)

	all, err := f.jobs.ListJobs(ctx, model.JobFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)
	assert.Equal(t, created.ID, all[0].ID)

	userA := database.TestApplicant1
	res, err := f.apply.Apply(ctx, created.ID, userA)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, model.StateApplied, res.State)

	state, err := f.apply.State(ctx, created.ID, userA.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StateApplied, state)

	again, err := f.apply.Apply(ctx, created.ID, userA)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, res.Application.ID, again.Application.ID)

	apps, err := f.apps.ListByJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, state, err = f.jobs.GetJob(ctx, created.ID, database.TestApplicant2)
	require.NoError(t, err)
	assert.Equal(t, model.StateNotApplied, state)
}

func TestApply_ConflictPolicy(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyConflict)
	ctx := context.Background()

	_, err := f.apply.Apply(ctx, database.TestJob2.ID, database.TestApplicant2)
	require.NoError(t, err)

	_, err = f.apply.Apply(ctx, database.TestJob2.ID, database.TestApplicant2)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))

	count, err := f.apps.CountByJob(ctx, database.TestJob2.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestApply_Rejections(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()

	_, err := f.apply.Apply(ctx, database.TestJob1.ID, database.TestAdminUser2)
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))

	_, err = f.apply.Apply(ctx, uuid.New(), database.TestApplicant1)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	require.NoError(t, f.jobs.DeleteJob(ctx, database.TestJob1.ID, database.TestAdminUser1))
	_, err = f.apply.Apply(ctx, database.TestJob1.ID, database.TestApplicant1)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestApply_ConcurrentSamePair(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan *model.ApplyResult, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.apply.Apply(ctx, database.TestJob3.ID, database.TestApplicant1)
			if assert.NoError(t, err) {
				results <- res
			}
		}()
	}
	wg.Wait()
	close(results)

	created := 0
	for r := range results {
		if r.Created {
			created++
		}
	}
	assert.Equal(t, 1, created)

	apps, err := f.apps.ListByJob(ctx, database.TestJob3.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestUpdateDelete_NonOwner(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()

	title := "Changed"
	_, err := f.jobs.UpdateJob(ctx, database.TestJob3.ID, model.JobPatch{Title: &title}, database.TestAdminUser1)
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))

	err = f.jobs.DeleteJob(ctx, database.TestJob3.ID, database.TestAdminUser1)
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))

	view, _, err := f.jobs.GetJob(ctx, database.TestJob3.ID, database.TestAdminUser2)
	require.NoError(t, err)
	assert.Equal(t, database.TestJob3.Title, view.Base().Title)
	assert.Equal(t, database.TestJob3.UpdatedAt.Unix(), view.Base().UpdatedAt.Unix())
}

func TestCreatedByImmutable(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		loc := fmt.Sprintf("City %d", i)
		updated, err := f.jobs.UpdateJob(ctx, database.TestJob1.ID, model.JobPatch{Location: &loc}, database.TestAdminUser1)
		require.NoError(t, err)
		assert.Equal(t, database.TestAdminUser1.ID, updated.CreatedBy)
	}

	// a direct write through gorm cannot move ownership either
	require.NoError(t, f.db.Model(&model.Job{ID: database.TestJob1.ID}).
		Updates(map[string]interface{}{"title": "Direct"}).Error)
	job := model.Job{ID: database.TestJob1.ID, CreatedByID: database.TestAdminUser2.ID, Title: "Direct 2"}
	require.NoError(t, f.db.Model(&job).Select("title", "created_by_id").Updates(&job).Error)

	view, err := f.jobs.GetJobAdmin(ctx, database.TestJob1.ID, database.TestAdminUser1)
	require.NoError(t, err)
	assert.Equal(t, database.TestAdminUser1.ID, view.CreatedBy)
	assert.Equal(t, "Direct 2", view.Title)
}

func TestListOwnJobs(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()

	_, err := f.apply.Apply(ctx, database.TestJob2.ID, database.TestApplicant1)
	require.NoError(t, err)

	jobs, err := f.jobs.ListOwnJobs(ctx, database.TestAdminUser1)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, database.TestJob2.ID, jobs[0].ID)
	assert.Equal(t, int64(1), jobs[0].ApplicationCount)
	assert.Equal(t, int64(0), jobs[1].ApplicationCount)
}

func TestFilters(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()
	salary := 10.0

	_, err := f.jobs.CreateJob(ctx, model.JobInput{
		Title: "Another", Description: "d", Salary: &salary, Location: "Hanoi",
		JobType: "Full-time", Position: 2, CompanyID: database.TestCompany1.ID,
	}, database.TestAdminUser1)
	require.NoError(t, err)

	positions, err := f.jobs.Positions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, positions)

	locations, err := f.jobs.Locations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hanoi", "Ho Chi Minh City"}, locations)
}

func TestJobDetailState_MatchesApplyState(t *testing.T) {
	f := newFixture(t, config.ApplyPolicyIdempotent)
	ctx := context.Background()
	user := database.TestApplicant2

	check := func(want model.ApplicationState) {
		t.Helper()
		_, fromDetail, err := f.jobs.GetJob(ctx, database.TestJob3.ID, user)
		require.NoError(t, err)
		fromApply, err := f.apply.State(ctx, database.TestJob3.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, want, fromDetail)
		assert.Equal(t, want, fromApply)
	}

	check(model.StateNotApplied)
	_, err := f.apply.Apply(ctx, database.TestJob3.ID, user)
	require.NoError(t, err)
	check(model.StateApplied)
}
