package job

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/utilities"
)

// PositionsResponse lists every position in use
type PositionsResponse struct {
	Positions []int `json:"positions"`
}

// LocationsResponse lists every location in use
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// GetPositions returns the distinct positions of all jobs.
// @Summary Get distinct job positions
// @Description Values for the position filter, ascending. Rate limited.
// @Tags Job
// @Produce json
// @Success 200 {object} PositionsResponse "Distinct positions"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/filters/positions [get]
func (jc *JobController) GetPositions(c *gin.Context) {
	positions, err := jc.Jobs.Positions(c.Request.Context())
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PositionsResponse{Positions: positions})
}

// GetLocations returns the distinct locations of all jobs.
// @Summary Get distinct job locations
// @Description Values for the location filter, ascending. Rate limited.
// @Tags Job
// @Produce json
// @Success 200 {object} LocationsResponse "Distinct locations"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/filters/locations [get]
func (jc *JobController) GetLocations(c *gin.Context) {
	locations, err := jc.Jobs.Locations(c.Request.Context())
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LocationsResponse{Locations: locations})
}
