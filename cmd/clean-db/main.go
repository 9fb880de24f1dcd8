// Command-line tool to clean the database by dropping every table the service migrates.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
)

func main() {
	cfg := config.Load()

	fmt.Printf("⚠️ WARNING: This command will DROP ALL job board tables in the %s database.\n", cfg.Database.Driver)
	fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	input = strings.TrimSpace(strings.ToLower(input))

	if input != "yes" {
		fmt.Println("Operation cancelled.")
		return
	}

	db, err := database.NewDBInstance(database.FromConfig(cfg))
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close()

	// Dependents first so foreign keys never block a drop.
	tables := make([]interface{}, 0, len(model.MigrateAble))
	for i := len(model.MigrateAble) - 1; i >= 0; i-- {
		tables = append(tables, model.MigrateAble[i])
	}
	if err := db.Migrator().DropTable(tables...); err != nil {
		log.Fatalf("failed to drop tables: %v", err)
	}

	fmt.Println("✅ All tables dropped successfully.")
}
