package database

import (
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"cabbook-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken is returned when a registration hits an existing email.
var ErrEmailTaken = errors.New("email already registered")

func GetUserByEmail(db *sqlx.DB, email string) (*models.User, error) {
	var user models.User
	query := db.Rebind("SELECT * FROM users WHERE email = ?")
	if err := db.Get(&user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByID(db *sqlx.DB, id string) (*models.User, error) {
	var user models.User
	query := db.Rebind("SELECT * FROM users WHERE id = ?")
	if err := db.Get(&user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new profile with a bcrypt-hashed password.
// The id and timestamps are assigned here.
func CreateUser(db *sqlx.DB, email, password, name, phone, role string) (*models.User, error) {
	var exists bool
	if err := db.Get(&exists, db.Rebind("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)"), email); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	user := &models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  string(hashed),
		Name:      name,
		Phone:     phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO users (id, email, password, name, phone, role, created_at, updated_at)
		VALUES (:id, :email, :password, :name, :phone, :role, :created_at, :updated_at)
	`
	if _, err := db.NamedExec(query, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the mutable profile fields.
func UpdateProfile(db *sqlx.DB, id, name, phone string) error {
	query := db.Rebind("UPDATE users SET name = ?, phone = ?, updated_at = ? WHERE id = ?")
	res, err := db.Exec(query, name, phone, time.Now().Unix(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetFCMToken stores the device token used for push notifications.
func SetFCMToken(db *sqlx.DB, id, token string) error {
	query := db.Rebind("UPDATE users SET fcm_token = ?, updated_at = ? WHERE id = ?")
	_, err := db.Exec(query, token, time.Now().Unix(), id)
	return err
}

// EnsureAdmin makes sure the designated administrator account exists
// with role "admin". It is idempotent: an existing account is left
// alone unless its role drifted, in which case the role is repaired.
// A unique violation from a concurrent creator is treated as "already
// exists" followed by the same role repair.
func EnsureAdmin(db *sqlx.DB, email, password string) error {
	user, err := GetUserByEmail(db, email)
	if err == sql.ErrNoRows {
		if _, err := CreateUser(db, email, password, "Admin", "", "admin"); err != nil {
			if !errors.Is(err, ErrEmailTaken) {
				return err
			}
			// Lost the race to another process, fall through to repair.
			if user, err = GetUserByEmail(db, email); err != nil {
				return err
			}
		} else {
			log.Printf("✅ Admin account created: %s", email)
			return nil
		}
	} else if err != nil {
		return err
	}

	if user.Role != "admin" {
		query := db.Rebind("UPDATE users SET role = 'admin', updated_at = ? WHERE id = ?")
		if _, err := db.Exec(query, time.Now().Unix(), user.ID); err != nil {
			return err
		}
		log.Printf("🔧 Repaired role for admin account: %s", email)
		return nil
	}

	log.Printf("✓ Admin account already present: %s", email)
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	// lib/pq reports 23505, sqlite reports "UNIQUE constraint failed".
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
