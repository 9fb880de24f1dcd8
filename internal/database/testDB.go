package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	// database/sql driver used for raw checks against the test container
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	m "jobboard-backend/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// TestDSN is the connection string of the running postgres test container
var TestDSN string

// Exported test users, company and jobs. Ids are fixed so every seeded
// database carries the same fixtures.
var (
	TestAdminUser1 = m.User{
		ID:       uuid.MustParse("a0000000-0000-4000-8000-000000000001"),
		Fullname: "Recruiter One",
		Email:    "recruiter1@example.com",
		Role:     m.RoleAdmin,
	}
	TestAdminUser2 = m.User{
		ID:       uuid.MustParse("a0000000-0000-4000-8000-000000000002"),
		Fullname: "Recruiter Two",
		Email:    "recruiter2@example.com",
		Role:     m.RoleAdmin,
	}
	TestApplicant1 = m.User{
		ID:          uuid.MustParse("b0000000-0000-4000-8000-000000000001"),
		Fullname:    "Nguyen Van A",
		Email:       "applicant1@example.com",
		PhoneNumber: "0900000001",
		Role:        m.RoleApplicant,
	}
	TestApplicant2 = m.User{
		ID:          uuid.MustParse("b0000000-0000-4000-8000-000000000002"),
		Fullname:    "Tran Thi B",
		Email:       "applicant2@example.com",
		PhoneNumber: "0900000002",
		Role:        m.RoleApplicant,
	}

	TestCompany1 = m.Company{
		ID:          uuid.MustParse("c0000000-0000-4000-8000-000000000001"),
		Name:        "TechNova",
		Description: "Innovative platform solutions",
		Location:    "Hanoi",
		Logo:        ptr("https://cdn.example.com/technova.png"),
		OwnerID:     TestAdminUser1.ID,
	}
	TestCompany2 = m.Company{
		ID:       uuid.MustParse("c0000000-0000-4000-8000-000000000002"),
		Name:     "DataForge",
		Location: "Ho Chi Minh City",
		OwnerID:  TestAdminUser2.ID,
	}

	TestJob1 = m.Job{
		ID:              uuid.MustParse("d0000000-0000-4000-8000-000000000001"),
		Title:           "Backend Engineer",
		Description:     "Work on Go services and database layers.",
		Requirements:    []string{"Go", "SQL"},
		Salary:          30,
		ExperienceLevel: 2,
		Location:        "Hanoi",
		JobType:         "Full-time",
		Position:        2,
		CompanyID:       TestCompany1.ID,
		CreatedByID:     TestAdminUser1.ID,
	}
	TestJob2 = m.Job{
		ID:              uuid.MustParse("d0000000-0000-4000-8000-000000000002"),
		Title:           "Frontend Developer",
		Description:     "Build the component library in React.",
		Requirements:    []string{"TypeScript"},
		Salary:          25,
		ExperienceLevel: 1,
		Location:        "Ho Chi Minh City",
		JobType:         "Part-time",
		Position:        1,
		CompanyID:       TestCompany1.ID,
		CreatedByID:     TestAdminUser1.ID,
	}
	TestJob3 = m.Job{
		ID:              uuid.MustParse("d0000000-0000-4000-8000-000000000003"),
		Title:           "Data Analyst",
		Description:     "Dashboards and data cleansing.",
		Requirements:    []string{"SQL", "Statistics"},
		Salary:          20,
		ExperienceLevel: 0,
		Location:        "Hanoi",
		JobType:         "Internship",
		Position:        3,
		CompanyID:       TestCompany2.ID,
		CreatedByID:     TestAdminUser2.ID,
	}
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName)

	// make sure the server accepts plain database/sql clients before gorm connects
	raw, err := sql.Open("postgres", dsn)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}
	pingErr := raw.PingContext(context.Background())
	_ = raw.Close()
	if pingErr != nil {
		return dbContainer.Terminate, nil, pingErr
	}

	db, err := NewDBInstance(&DBConfig{
		Driver:    DriverPostgres,
		UseConstr: true,
		Constr:    dsn,
	})
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	TestDSN = dsn
	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// NewSQLiteTestDB returns a seeded, private in-memory sqlite database that
// is closed when the test ends.
func NewSQLiteTestDB(t testing.TB) *DBinstanceStruct {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := NewDBInstance(&DBConfig{
		Driver:     DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s_%s?mode=memory&cache=shared&_foreign_keys=1", name, uuid.NewString()),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := seedTestData(db); err != nil {
		t.Fatalf("failed to seed sqlite test database: %v", err)
	}
	return db
}

// seedTestData inserts the exported fixtures if the database is empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	users := []m.User{TestAdminUser1, TestAdminUser2, TestApplicant1, TestApplicant2}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	companies := []m.Company{TestCompany1, TestCompany2}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}

	// insert one by one so created_at is strictly increasing
	for _, job := range []*m.Job{&TestJob1, &TestJob2, &TestJob3} {
		j := *job
		if err := db.Create(&j).Error; err != nil {
			return err
		}
		job.CreatedAt = j.CreatedAt
		job.UpdatedAt = j.UpdatedAt
		time.Sleep(2 * time.Millisecond)
	}

	return nil
}

// ptr helper
func ptr[T any](v T) *T { return &v }
