package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func Connect(dbURL string) (*sqlx.DB, error) {
	log.Println("🔌 Connecting to database...")

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Database connection established")
	return db, nil
}

// Migrate creates the schema. Statements are kept portable: timestamps
// are epoch seconds written by the application, so the same migrations
// run against Postgres in production and SQLite in tests.
func Migrate(db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL CHECK(role IN ('user', 'admin')),
			fcm_token TEXT,
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			user_name TEXT NOT NULL,
			user_phone TEXT NOT NULL DEFAULT '',
			user_email TEXT NOT NULL DEFAULT '',
			pickup_location TEXT NOT NULL,
			dropoff_location TEXT NOT NULL,
			ride_date TEXT NOT NULL,
			ride_time TEXT NOT NULL,
			cab_type TEXT NOT NULL CHECK(cab_type IN ('economy', 'premium', 'luxury')),
			special_instructions TEXT NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL,
			distance DOUBLE PRECISION NOT NULL,
			status TEXT NOT NULL CHECK(status IN ('pending', 'in-progress', 'completed', 'cancelled')),
			driver_id TEXT,
			created_at BIGINT NOT NULL,
			updated_at BIGINT,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
