// Package job provides HTTP handlers for job posting and filter operations.
package job

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/presenter"
	"jobboard-backend/internal/service"
	"jobboard-backend/internal/store"
	"jobboard-backend/internal/utilities"
)

// JobController handles job related endpoints
type JobController struct {
	DB   *database.DBinstanceStruct
	Jobs *service.JobService
	// Now is the clock used for the job detail page
	Now func() time.Time
}

// NewJobController creates a new instance of JobController
func NewJobController(db *database.DBinstanceStruct) *JobController {
	apps := store.NewApplicationStore(db)
	return &JobController{
		DB:   db,
		Jobs: service.NewJobService(store.NewJobStore(db), apps, store.NewFilterAggregator(db)),
		Now:  time.Now,
	}
}

// PostJob handles the creation of a new job by the logged in user.
// @Summary Create job based on given json structure
// @Description The logged in user becomes the owner of the job
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body model.JobInput true "Input job information"
// @Success 201 {object} model.PublicJobView "Successfully create job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or job fields"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/post [post]
func (jc *JobController) PostJob(c *gin.Context) {
	user, ok := utilities.MustExtractUser(c)
	if !ok {
		return
	}

	input := model.JobInput{}
	if err := decodeStrict(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	view, err := jc.Jobs.CreateJob(c.Request.Context(), input, user)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetAllJobs fetches every job matching the query, newest first.
// @Summary Get jobs based on query
// @Description Every query is optional. Applicants of each job are reduced to a count.
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param keyword query string false "Case insensitive substring of title, location or description"
// @Param location query string false "Exact location"
// @Param position query integer false "Exact position"
// @Success 200 {object} model.JobListResponse "Return matching jobs"
// @Failure 400 {object} utilities.ErrorResponse "Invalid query"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/get [get]
func (jc *JobController) GetAllJobs(c *gin.Context) {
	filter := model.JobFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
	}
	if raw := strings.TrimSpace(c.Query("position")); raw != "" {
		position, err := strconv.Atoi(raw)
		if err != nil || position < 1 {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "position must be a positive integer"})
			return
		}
		filter.Position = position
	}

	jobs, err := jc.Jobs.ListJobs(c.Request.Context(), filter)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.JobListResponse{Jobs: jobs})
}

// GetAdminJobs fetches the jobs created by the logged in user.
// @Summary Get jobs created by me
// @Description Only admin can access this endpoint
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.JobListResponse "Return own jobs"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/getAdminJob [get]
func (jc *JobController) GetAdminJobs(c *gin.Context) {
	user, ok := utilities.MustExtractUser(c)
	if !ok {
		return
	}

	jobs, err := jc.Jobs.ListOwnJobs(c.Request.Context(), user)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.JobListResponse{Jobs: jobs})
}

// GetJobByID fetches a job with the logged in user's apply state.
// @Summary Get job detail by ID
// @Description Applicant identities are only included for the job owner
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "ID of desired job"
// @Success 200 {object} presenter.JobDetail "Return the job detail"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/get/{id} [get]
func (jc *JobController) GetJobByID(c *gin.Context) {
	user, ok := utilities.MustExtractUser(c)
	if !ok {
		return
	}
	id, ok := jobIDParam(c, c.Param("id"))
	if !ok {
		return
	}

	view, state, err := jc.Jobs.GetJob(c.Request.Context(), id, user)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	canApply := user.Role == model.RoleApplicant
	c.JSON(http.StatusOK, presenter.NewJobDetail(view, state, canApply, jc.Now()))
}

// GetJobByIDAdmin fetches a job with every application and applicant.
// @Summary Get job with applicants by ID
// @Description Only the job owner or an admin can access this endpoint
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "ID of desired job"
// @Success 200 {object} model.AdminJobView "Return the job with applicants"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner nor an admin"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/getAdmin/{id} [get]
func (jc *JobController) GetJobByIDAdmin(c *gin.Context) {
	user, ok := utilities.MustExtractUser(c)
	if !ok {
		return
	}
	id, ok := jobIDParam(c, c.Param("id"))
	if !ok {
		return
	}

	view, err := jc.Jobs.GetJobAdmin(c.Request.Context(), id, user)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateJob partially updates a job owned by the logged in user.
// @Summary Edit job
// @Description Only fields present in the body are changed. The owner cannot be changed.
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "ID of job to edit"
// @Param Job body model.JobPatch true "Fields to change"
// @Success 200 {object} model.PublicJobView "Updated job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id or request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the job owner"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/updateJob/{id} [patch]
func (jc *JobController) UpdateJob(c *gin.Context) {
	user, ok := utilities.MustExtractUser(c)
	if !ok {
		return
	}
	id, ok := jobIDParam(c, c.Param("id"))
	if !ok {
		return
	}

	patch := model.JobPatch{}
	if err := decodeStrict(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	view, err := jc.Jobs.UpdateJob(c.Request.Context(), id, patch, user)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// DeleteJobRequest is the optional body of DeleteJob
type DeleteJobRequest struct {
	ID string `json:"id"`
}

// DeleteJob deletes a job owned by the logged in user.
// @Summary Delete job
// @Description Job id is read from the query or from the JSON body. Applications are kept.
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id query string false "ID of job to delete"
// @Param Job body DeleteJobRequest false "ID of job to delete"
// @Success 200 {object} utilities.MessageResponse "Job deleted"
// @Failure 400 {object} utilities.ErrorResponse "Missing or invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the job owner"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/deleteJob [delete]
func (jc *JobController) DeleteJob(c *gin.Context) {
	user, ok := utilities.MustExtractUser(c)
	if !ok {
		return
	}

	rawID := c.Query("id")
	if rawID == "" {
		req := DeleteJobRequest{}
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
			})
			return
		}
		rawID = req.ID
	}
	if rawID == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Job id is required"})
		return
	}
	id, ok := jobIDParam(c, rawID)
	if !ok {
		return
	}

	if err := jc.Jobs.DeleteJob(c.Request.Context(), id, user); err != nil {
		utilities.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job deleted successfully"})
}

func jobIDParam(c *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		utilities.RespondError(c, apperr.Validation("Invalid job id", map[string]string{"id": "id must be a UUID"}))
		return uuid.Nil, false
	}
	return id, true
}

func decodeStrict(c *gin.Context, dst interface{}) error {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
