package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"cabbook-backend/internal/booking"
	"cabbook-backend/internal/database"
	"cabbook-backend/internal/metrics"
	"cabbook-backend/internal/services"
	"cabbook-backend/internal/websocket"
	"cabbook-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetAllBookings lists every booking for the admin dashboard, with the
// same optional status/search filters as the rider listing.
func GetAllBookings(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := database.GetAllBookings(db)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}

		tab := r.URL.Query().Get("status")
		search := r.URL.Query().Get("search")
		utils.RespondJSON(w, http.StatusOK, booking.Filter(bookings, tab, search))
	}
}

// UpdateBookingStatus applies an admin-issued status transition. The
// transition table is enforced here, whatever a dashboard menu offers:
// illegal moves answer 409 and change nothing.
func UpdateBookingStatus(db *sqlx.DB, hub *websocket.Hub, fcm *services.FCMService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if !booking.IsValidStatus(req.Status) {
			utils.RespondError(w, http.StatusBadRequest, "Unknown status: "+req.Status)
			return
		}

		b, err := database.GetBooking(db, id)
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, "Booking not found")
			return
		}
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Database error")
			return
		}

		if !booking.CanTransition(b.Status, req.Status) {
			log.Printf("❌ Illegal status transition %s → %s for booking %s", b.Status, req.Status, id)
			utils.RespondError(w, http.StatusConflict, "Cannot move booking from "+b.Status+" to "+req.Status)
			return
		}

		if err := database.UpdateBookingStatus(db, id, req.Status); err != nil {
			log.Printf("❌ Failed to update booking %s: %v", id, err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update booking status")
			return
		}

		log.Printf("🔄 Booking %s: %s → %s", id, b.Status, req.Status)
		metrics.IncStatusTransition(req.Status)
		websocket.NotifyBookingChange(hub, db, b.UserID)

		if fcm != nil {
			if owner, err := database.GetUserByID(db, b.UserID); err == nil && owner.FCMToken != nil {
				if err := fcm.SendBookingStatusUpdate(*owner.FCMToken, id, req.Status); err != nil {
					log.Printf("⚠️ Status update push failed: %v", err)
				}
			}
		}

		updated, err := database.GetBooking(db, id)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Database error")
			return
		}

		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"booking": updated,
		})
	}
}
