package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
)

func TestCompanyStore(t *testing.T) {
	db := database.NewSQLiteTestDB(t)
	s := NewCompanyStore(db)
	ctx := context.Background()

	got, err := s.GetByID(ctx, database.TestCompany1.ID)
	require.NoError(t, err)
	assert.Equal(t, "TechNova", got.Name)

	_, err = s.GetByID(ctx, uuid.New())
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	c := &model.Company{Name: "  CloudNine ", OwnerID: database.TestAdminUser2.ID}
	require.NoError(t, s.Create(ctx, c))
	assert.Equal(t, "CloudNine", c.Name)
	assert.NotEqual(t, uuid.Nil, c.ID)

	dup := &model.Company{Name: "CloudNine", OwnerID: database.TestAdminUser2.ID}
	assert.True(t, apperr.Is(s.Create(ctx, dup), apperr.CodeConflict))

	assert.True(t, apperr.Is(s.Create(ctx, &model.Company{OwnerID: database.TestAdminUser2.ID}), apperr.CodeValidation))
}
