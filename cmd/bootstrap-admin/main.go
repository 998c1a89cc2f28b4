// Command bootstrap-admin provisions the designated administrator
// account. Meant to run once at deployment time; it is safe to re-run,
// an existing account is only repaired if its role drifted.
package main

import (
	"log"
	"os"

	"cabbook-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@gmail.com"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	db, err := database.Connect(dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.EnsureAdmin(db, adminEmail, adminPassword); err != nil {
		log.Fatalf("Failed to provision admin account: %v", err)
	}

	log.Println("📧 Admin login:")
	log.Printf("  %s / %s (admin)", adminEmail, adminPassword)
}
