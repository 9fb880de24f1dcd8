// Package company provides HTTP handlers for the companies jobs are posted under.
package company

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/store"
	"jobboard-backend/internal/utilities"
)

// CompanyController handles company related endpoints
type CompanyController struct {
	DB        *database.DBinstanceStruct
	Companies *store.CompanyStore
}

// NewCompanyController creates a new instance of CompanyController
func NewCompanyController(db *database.DBinstanceStruct) *CompanyController {
	return &CompanyController{
		DB:        db,
		Companies: store.NewCompanyStore(db),
	}
}

// CreateCompanyRequest is the body accepted by CreateCompany
type CreateCompanyRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Website     string  `json:"website"`
	Location    string  `json:"location"`
	Logo        *string `json:"logo"`
}

// CreateCompany registers a company owned by the logged in admin.
// @Summary Create company
// @Description Only admin can access this endpoint. Company names are unique.
// @Tags Company
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param company body CreateCompanyRequest true "Company information"
// @Success 201 {object} model.Company "Successfully create company"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 409 {object} utilities.ErrorResponse "Company name already taken"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company [post]
func (cc *CompanyController) CreateCompany(c *gin.Context) {
	user, ok := utilities.MustExtractUser(c)
	if !ok {
		return
	}

	req := CreateCompanyRequest{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	company := model.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Logo:        req.Logo,
		OwnerID:     user.ID,
	}
	if err := cc.Companies.Create(c.Request.Context(), &company); err != nil {
		utilities.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// GetCompanyByID retrieves a company by its id.
// @Summary Retrieve company by given ID
// @Tags Company
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param company_id path string true "ID of company"
// @Success 200 {object} model.Company "Successfully retrieve company"
// @Failure 400 {object} utilities.ErrorResponse "Invalid company id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Company not exist"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/{company_id} [get]
func (cc *CompanyController) GetCompanyByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid company id"})
		return
	}

	company, err := cc.Companies.GetByID(c.Request.Context(), id)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
