package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/model"
)

func TestNewSQLite_MigratesAndSeeds(t *testing.T) {
	db := NewSQLiteTestDB(t)

	for _, table := range model.MigrateAble {
		assert.True(t, db.Migrator().HasTable(table))
	}

	var jobs int64
	require.NoError(t, db.Model(&model.Job{}).Count(&jobs).Error)
	assert.Equal(t, int64(3), jobs)

	var job model.Job
	require.NoError(t, db.First(&job, "id = ?", TestJob1.ID).Error)
	assert.Equal(t, TestJob1.Requirements, job.Requirements)
	assert.Equal(t, TestAdminUser1.ID, job.CreatedByID)
}

func TestHealth(t *testing.T) {
	db := NewSQLiteTestDB(t)
	stats := db.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestClose(t *testing.T) {
	db, err := NewDBInstance(&DBConfig{Driver: DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)

	assert.NoError(t, db.Close())
	assert.Equal(t, "down", db.Health()["status"])
}

func TestNewDBInstance_UnsupportedDriver(t *testing.T) {
	_, err := NewDBInstance(&DBConfig{Driver: "mongodb", Host: "h", Port: "1", User: "u", DBName: "d"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestGetDsn(t *testing.T) {
	cfg := &DBConfig{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", DBName: "jobs"}
	dsn, err := cfg.getDsn()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/jobs?sslmode=disable", dsn)

	_, err = (&DBConfig{Driver: DriverPostgres, UseConstr: true}).getDsn()
	assert.Error(t, err)

	_, err = (&DBConfig{Driver: DriverPostgres, Host: "db"}).getDsn()
	assert.Error(t, err)

	_, err = (&DBConfig{Driver: DriverSQLite}).getDsn()
	assert.Error(t, err)
}

func TestPostgresContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	td, db, err := GetTestDB()
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = td(ctx)
		testDBInstance, teardown = nil, nil
	})

	assert.Equal(t, "up", db.Health()["status"])
	assert.True(t, db.Migrator().HasIndex(&model.Application{}, "idx_applications_job_applicant"))
}
