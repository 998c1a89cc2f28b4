package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"cabbook-backend/internal/database"
	"cabbook-backend/internal/middleware"
	"cabbook-backend/pkg/utils"

	"github.com/jmoiron/sqlx"
)

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type RegisterFCMTokenRequest struct {
	Token string `json:"token"`
}

// UpdateProfile changes the authenticated user's name and phone.
func UpdateProfile(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		errs := make(map[string]string)
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

		err := database.UpdateProfile(db, claims.UserID, req.Name, req.Phone)
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, "Profile not found")
			return
		}
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update profile")
			return
		}

		user, err := database.GetUserByID(db, claims.UserID)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Database error")
			return
		}

		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"user":    user.ToUserResponse(),
		})
	}
}

// RegisterFCMToken stores the caller's push notification device token.
func RegisterFCMToken(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req RegisterFCMTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
			utils.RespondError(w, http.StatusBadRequest, "Token is required")
			return
		}

		if err := database.SetFCMToken(db, claims.UserID, req.Token); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to register token")
			return
		}

		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	}
}
