package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError sends an error response
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// RespondValidationErrors sends per-field validation messages
func RespondValidationErrors(w http.ResponseWriter, errs map[string]string) {
	RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"errors":  errs,
	})
}
