// Command-line tool to fill an empty database with a demo company, an admin and a few jobs.
package main

import (
	"context"
	"fmt"
	"log"

	"jobboard-backend/internal/auth"
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/store"
)

func salary(v float64) *float64 { return &v }

func main() {
	ctx := context.Background()
	cfg := config.Load()
	auth.Configure(cfg.JWT)

	db, err := database.NewDBInstance(database.FromConfig(cfg))
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close()

	var count int64
	if err := db.Model(&model.Job{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count jobs: %v", err)
	}
	if count > 0 {
		fmt.Println("Database already has jobs, nothing to seed.")
		return
	}

	admin := model.User{Fullname: "Demo Recruiter", Email: "recruiter@jobboard.local", Role: model.RoleAdmin}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	company := model.Company{
		Name:     "Demo Tech",
		Location: "Hanoi",
		Website:  "https://demo.example",
		OwnerID:  admin.ID,
	}
	if err := store.NewCompanyStore(db).Create(ctx, &company); err != nil {
		log.Fatalf("failed to create company: %v", err)
	}

	jobs := store.NewJobStore(db)
	inputs := []model.JobInput{
		{
			Title:           "Backend Engineer",
			Description:     "Build and operate Go services",
			Requirements:    []string{"Go", "PostgreSQL"},
			Salary:          salary(30),
			ExperienceLevel: 3,
			Location:        "Hanoi",
			JobType:         "Full-time",
			Position:        2,
		},
		{
			Title:           "Frontend Engineer",
			Description:     "Own the candidate facing web app",
			Requirements:    []string{"TypeScript", "React"},
			Salary:          salary(25),
			ExperienceLevel: 2,
			Location:        "Ho Chi Minh City",
			JobType:         "Full-time",
			Position:        1,
		},
		{
			Title:           "Data Analyst Intern",
			Description:     "Help the team turn hiring data into reports",
			Requirements:    []string{"SQL"},
			Salary:          salary(8),
			ExperienceLevel: 0,
			Location:        "Da Nang",
			JobType:         "Internship",
			Position:        3,
		},
	}
	for _, in := range inputs {
		in.CompanyID = company.ID
		job, err := jobs.Create(ctx, in, admin.ID)
		if err != nil {
			log.Fatalf("failed to create job %q: %v", in.Title, err)
		}
		fmt.Printf("Created job %s (%s)\n", job.Title, job.ID)
	}

	token, err := auth.GenerateToken(admin.ID)
	if err != nil {
		log.Printf("skipping token: %v", err)
		return
	}
	fmt.Printf("Recruiter token: %s\n", token)
}
