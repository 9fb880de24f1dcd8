// Command-line tool to create an admin user and print an access token for it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"jobboard-backend/internal/auth"
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
)

func main() {
	email := flag.String("email", "", "email of the new admin")
	fullname := flag.String("name", "Admin", "full name of the new admin")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		fmt.Println("usage: create-admin -email admin@example.com [-name \"Jane Doe\"]")
		os.Exit(2)
	}

	cfg := config.Load()
	auth.Configure(cfg.JWT)

	db, err := database.NewDBInstance(database.FromConfig(cfg))
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close()

	admin := model.User{
		Fullname: strings.TrimSpace(*fullname),
		Email:    strings.ToLower(strings.TrimSpace(*email)),
		Role:     model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("failed to create admin: ", err)
	}

	token, err := auth.GenerateToken(admin.ID)
	if err != nil {
		log.Fatal("failed to generate token: ", err)
	}

	fmt.Println("Admin created successfully!")
	fmt.Println("======================================")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Token: %s\n", token)
	fmt.Printf("Token expires in %s\n", auth.TokenExpiry)
	fmt.Println("======================================")
}
