package handlers

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"cabbook-backend/internal/directory"
	"cabbook-backend/internal/services"
	"cabbook-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// GetDrivers lists the static driver roster with optional status tab
// and search filtering.
func GetDrivers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tab := r.URL.Query().Get("status")
		search := r.URL.Query().Get("search")
		utils.RespondJSON(w, http.StatusOK, directory.Filter(directory.All(), tab, search))
	}
}

func validImageFile(filename string, size int64) bool {
	if size <= 0 || size > 5*1024*1024 {
		return false
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// UploadDriverPhoto stores a new profile photo for a roster driver and
// swaps the roster entry's photo URL for the process lifetime.
func UploadDriverPhoto(storage *services.StorageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if storage == nil {
			utils.RespondError(w, http.StatusServiceUnavailable, "Photo storage not configured")
			return
		}

		id := chi.URLParam(r, "id")
		if _, found := directory.Get(id); !found {
			utils.RespondError(w, http.StatusNotFound, "Driver not found")
			return
		}

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid form data")
			return
		}

		file, header, err := r.FormFile("photo")
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "photo file is required")
			return
		}
		defer file.Close()

		if !validImageFile(header.Filename, header.Size) {
			utils.RespondError(w, http.StatusBadRequest, "Photo must be a jpg, png or webp up to 5MB")
			return
		}

		url, err := storage.UploadDriverPhoto(r.Context(), file, id)
		if err != nil {
			log.Printf("❌ Driver photo upload failed: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		directory.SetPhoto(id, url)
		log.Printf("📸 Driver %s photo updated", id)

		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"photo":   url,
		})
	}
}
