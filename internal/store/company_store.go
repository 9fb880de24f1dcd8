package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
)

// CompanyStore reads and registers companies
type CompanyStore struct {
	DB *database.DBinstanceStruct
}

// NewCompanyStore creates a new instance of CompanyStore
func NewCompanyStore(db *database.DBinstanceStruct) *CompanyStore {
	return &CompanyStore{DB: db}
}

// GetByID returns the company with the given id
func (s *CompanyStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, translate(err, "Company", "retrieve")
	}
	return &company, nil
}

// Create inserts a company. Names are unique.
func (s *CompanyStore) Create(ctx context.Context, company *model.Company) error {
	company.Name = strings.TrimSpace(company.Name)
	if company.Name == "" {
		return apperr.Validation("Invalid company", map[string]string{"name": "name is required"})
	}
	if company.OwnerID == uuid.Nil {
		return apperr.Validation("Invalid company", map[string]string{"owner_id": "owner_id is required"})
	}
	return translate(s.DB.WithContext(ctx).Create(company).Error, "Company", "create")
}
