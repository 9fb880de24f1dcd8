// Package application provides HTTP handlers for job application operations.
package application

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/service"
	"jobboard-backend/internal/store"
	"jobboard-backend/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB    *database.DBinstanceStruct
	Apply *service.ApplyService
}

// NewApplicationController creates a new instance of ApplicationController.
// repeatPolicy decides how a second apply to the same job is answered.
func NewApplicationController(db *database.DBinstanceStruct, repeatPolicy string) *ApplicationController {
	return &ApplicationController{
		DB:    db,
		Apply: service.NewApplyService(store.NewJobStore(db), store.NewApplicationStore(db), repeatPolicy),
	}
}

// ApplyHandler applies the logged in applicant to a job.
// @Summary Apply to job
// @Description Only applicants can apply. Applying again returns the existing application unless the server is configured to answer 409.
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param jobId path string true "ID of the job"
// @Success 201 {object} model.ApplyResponse "Application created"
// @Success 200 {object} model.ApplyResponse "Already applied"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an applicant"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/apply/{jobId} [get]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	user, ok := utilities.MustExtractUser(c)
	if !ok {
		return
	}

	jobID, err := uuid.Parse(strings.TrimSpace(c.Param("jobId")))
	if err != nil {
		utilities.RespondError(c, apperr.Validation("Invalid job id", map[string]string{"jobId": "jobId must be a UUID"}))
		return
	}

	result, err := ac.Apply.Apply(c.Request.Context(), jobID, user)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	resp := model.ApplyResponse{
		Created:     result.Created,
		State:       result.State,
		Application: *result.Application,
	}
	status := http.StatusOK
	if result.Created {
		resp.Message = "Applied to job successfully"
		status = http.StatusCreated
	} else {
		resp.Message = "You have already applied to this job"
	}
	c.JSON(status, resp)
}
