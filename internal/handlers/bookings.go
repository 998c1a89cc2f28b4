package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"cabbook-backend/internal/booking"
	"cabbook-backend/internal/database"
	"cabbook-backend/internal/directory"
	"cabbook-backend/internal/metrics"
	"cabbook-backend/internal/middleware"
	"cabbook-backend/internal/models"
	"cabbook-backend/internal/services"
	"cabbook-backend/internal/websocket"
	"cabbook-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
)

type CreateBookingRequest struct {
	PickupLocation      string `json:"pickup_location"`
	DropoffLocation     string `json:"dropoff_location"`
	RideDate            string `json:"ride_date"`
	RideTime            string `json:"ride_time"`
	CabType             string `json:"cab_type"`
	SpecialInstructions string `json:"special_instructions"`
}

type CreateBookingResponse struct {
	Success   bool            `json:"success"`
	BookingID string          `json:"booking_id,omitempty"`
	Booking   *models.Booking `json:"booking,omitempty"`
}

// CreateBooking validates a submission, prices it and persists it as
// pending, tagged with the caller's identity and denormalized contact
// info captured at booking time.
func CreateBooking(db *sqlx.DB, hub *websocket.Hub, fcm *services.FCMService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Please log in to book a ride")
			return
		}

		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		errs := booking.Validate(booking.SubmitInput{
			PickupLocation:      req.PickupLocation,
			DropoffLocation:     req.DropoffLocation,
			RideDate:            req.RideDate,
			RideTime:            req.RideTime,
			CabType:             req.CabType,
			SpecialInstructions: req.SpecialInstructions,
		}, time.Now())
		if len(errs) > 0 {
			utils.RespondValidationErrors(w, errs)
			return
		}

		// Contact info is denormalized from the profile at booking time
		// and never re-synced.
		userName := "User"
		userPhone := ""
		userEmail := claims.Email
		if user, err := database.GetUserByID(db, claims.UserID); err == nil {
			userName = user.Name
			userPhone = user.Phone
			userEmail = user.Email
		}

		b := &models.Booking{
			UserID:              claims.UserID,
			UserName:            userName,
			UserPhone:           userPhone,
			UserEmail:           userEmail,
			PickupLocation:      req.PickupLocation,
			DropoffLocation:     req.DropoffLocation,
			RideDate:            req.RideDate,
			RideTime:            req.RideTime,
			CabType:             req.CabType,
			SpecialInstructions: req.SpecialInstructions,
			Price:               booking.EstimatePrice(req.CabType),
			Distance:            booking.MockDistance,
		}

		if err := database.CreateBooking(db, b); err != nil {
			log.Printf("❌ Failed to create booking: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to book ride. Please try again.")
			return
		}

		log.Printf("🚕 Booking created: %s (%s, ₹%.2f) for %s", b.ID, b.CabType, b.Price, claims.Email)
		metrics.IncBookingCreated()
		websocket.NotifyBookingChange(hub, db, claims.UserID)

		if fcm != nil {
			if user, err := database.GetUserByID(db, claims.UserID); err == nil && user.FCMToken != nil {
				if err := fcm.SendBookingConfirmation(*user.FCMToken, b.ID, b.Price); err != nil {
					log.Printf("⚠️ Booking confirmation push failed: %v", err)
				}
			}
		}

		utils.RespondJSON(w, http.StatusCreated, CreateBookingResponse{
			Success:   true,
			BookingID: b.ID,
			Booking:   b,
		})
	}
}

// GetMyBookings lists the caller's bookings, newest first. The optional
// status and search query parameters apply the same tab and search
// predicates the listing UI uses.
func GetMyBookings(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		bookings, err := database.GetUserBookings(db, claims.UserID)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}

		tab := r.URL.Query().Get("status")
		search := r.URL.Query().Get("search")
		utils.RespondJSON(w, http.StatusOK, booking.Filter(bookings, tab, search))
	}
}

// GetBooking returns a single booking's full attributes. Non-admins can
// only see their own: a foreign booking answers 404, not 403, so ids
// are not probeable. In-progress bookings without an assigned driver
// get the demo driver attached.
func GetBooking(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id := chi.URLParam(r, "id")
		b, err := database.GetBooking(db, id)
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, "Booking not found")
			return
		}
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Database error")
			return
		}

		if claims.Role != "admin" && b.UserID != claims.UserID {
			utils.RespondError(w, http.StatusNotFound, "Booking not found")
			return
		}

		detail := models.BookingDetail{Booking: *b}
		if b.Status == booking.StatusInProgress {
			if b.DriverID != nil {
				if d, found := directory.Get(*b.DriverID); found {
					detail.Driver = &d
				}
			}
			if detail.Driver == nil {
				demo := directory.DemoDriver
				detail.Driver = &demo
			}
		}

		utils.RespondJSON(w, http.StatusOK, detail)
	}
}

// CancelBooking is the rider-initiated transition. Only the owner may
// cancel, and only while the booking is still pending.
func CancelBooking(db *sqlx.DB, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id := chi.URLParam(r, "id")
		b, err := database.GetBooking(db, id)
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, "Booking not found")
			return
		}
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Database error")
			return
		}

		if b.UserID != claims.UserID {
			utils.RespondError(w, http.StatusNotFound, "Booking not found")
			return
		}

		if !booking.CanCancel(b.Status) {
			utils.RespondError(w, http.StatusConflict, "Only pending bookings can be cancelled")
			return
		}

		if err := database.UpdateBookingStatus(db, id, booking.StatusCancelled); err != nil {
			log.Printf("❌ Failed to cancel booking %s: %v", id, err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to cancel booking")
			return
		}

		log.Printf("🚫 Booking cancelled by rider: %s", id)
		metrics.IncStatusTransition(booking.StatusCancelled)
		websocket.NotifyBookingChange(hub, db, b.UserID)

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
