package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"cabbook-backend/internal/database"
	"cabbook-backend/internal/middleware"
	"cabbook-backend/internal/models"
	"cabbook-backend/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type AuthResponse struct {
	OK    bool                 `json:"ok"`
	Token string               `json:"token,omitempty"`
	User  *models.UserResponse `json:"user,omitempty"`
	Error string               `json:"error,omitempty"`
}

func issueToken(user *models.User) (string, error) {
	jwtSecret := os.Getenv("APP_JWT_SECRET")
	if jwtSecret == "" {
		return "", errors.New("JWT secret not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	})

	return token.SignedString([]byte(jwtSecret))
}

func Login(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		log.Printf("🔐 Login attempt for: %s", req.Email)

		user, err := database.GetUserByEmail(db, req.Email)
		if err != nil {
			log.Printf("❌ User not found: %s", req.Email)
			utils.RespondJSON(w, http.StatusUnauthorized, AuthResponse{OK: false, Error: "Invalid email or password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			log.Printf("❌ Invalid password for: %s", req.Email)
			utils.RespondJSON(w, http.StatusUnauthorized, AuthResponse{OK: false, Error: "Invalid email or password"})
			return
		}

		tokenString, err := issueToken(user)
		if err != nil {
			log.Printf("❌ Failed to create token: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to create token")
			return
		}

		userResponse := user.ToUserResponse()
		log.Printf("✅ Login successful: %s (%s)", user.Email, user.Role)

		utils.RespondJSON(w, http.StatusOK, AuthResponse{
			OK:    true,
			Token: tokenString,
			User:  &userResponse,
		})
	}
}

// Register creates a session credential and a profile with role "user",
// then signs the new account in.
func Register(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		errs := make(map[string]string)
		if !strings.Contains(req.Email, "@") {
			errs["email"] = "Please enter a valid email address"
		}
		if len(req.Password) < 6 {
			errs["password"] = "Password must be at least 6 characters"
		}
		if strings.TrimSpace(req.Name) == "" {
			errs["name"] = "Name is required"
		}
		if strings.TrimSpace(req.Phone) == "" {
			errs["phone"] = "Phone number is required"
		}
		if len(errs) > 0 {
			utils.RespondValidationErrors(w, errs)
			return
		}

		log.Printf("📝 Registration attempt for: %s", req.Email)

		user, err := database.CreateUser(db, req.Email, req.Password, req.Name, req.Phone, "user")
		if errors.Is(err, database.ErrEmailTaken) {
			utils.RespondJSON(w, http.StatusConflict, AuthResponse{OK: false, Error: "An account with this email already exists"})
			return
		}
		if err != nil {
			log.Printf("❌ Failed to create account: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to create account")
			return
		}

		tokenString, err := issueToken(user)
		if err != nil {
			log.Printf("❌ Failed to create token: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to create token")
			return
		}

		userResponse := user.ToUserResponse()
		log.Printf("✅ Account created: %s", user.Email)

		utils.RespondJSON(w, http.StatusCreated, AuthResponse{
			OK:    true,
			Token: tokenString,
			User:  &userResponse,
		})
	}
}

// GetAuthStatus resolves the authenticated user's profile. A valid
// session whose profile row is missing degrades softly: the response is
// built from the token claims instead of failing.
func GetAuthStatus(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := database.GetUserByID(db, claims.UserID)
		if err == sql.ErrNoRows {
			log.Printf("⚠️ No profile for authenticated user %s, answering from claims", claims.UserID)
			utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
				"ok": true,
				"user": models.UserResponse{
					ID:    claims.UserID,
					Email: claims.Email,
					Role:  claims.Role,
				},
				"profile_missing": true,
			})
			return
		}
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Database error")
			return
		}

		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"ok":       true,
			"user":     user.ToUserResponse(),
			"is_admin": user.Role == "admin",
		})
	}
}
