package database

import (
	"time"

	"cabbook-backend/internal/booking"
	"cabbook-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateBooking persists a new booking. The id, creation timestamp and
// initial status are assigned here: a booking always enters the store
// as pending, whatever the caller put in the struct.
func CreateBooking(db *sqlx.DB, b *models.Booking) error {
	b.ID = uuid.New().String()
	b.Status = booking.StatusPending
	b.CreatedAt = time.Now().Unix()
	b.UpdatedAt = nil

	query := `
		INSERT INTO bookings (
			id, user_id, user_name, user_phone, user_email,
			pickup_location, dropoff_location, ride_date, ride_time,
			cab_type, special_instructions, price, distance, status,
			driver_id, created_at, updated_at
		) VALUES (
			:id, :user_id, :user_name, :user_phone, :user_email,
			:pickup_location, :dropoff_location, :ride_date, :ride_time,
			:cab_type, :special_instructions, :price, :distance, :status,
			:driver_id, :created_at, :updated_at
		)
	`
	_, err := db.NamedExec(query, b)
	return err
}

// GetUserBookings returns the bookings owned by a user, newest first.
func GetUserBookings(db *sqlx.DB, userID string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	query := db.Rebind("SELECT * FROM bookings WHERE user_id = ? ORDER BY created_at DESC")
	if err := db.Select(&bookings, query, userID); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetAllBookings returns every booking, newest first.
func GetAllBookings(db *sqlx.DB) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := db.Select(&bookings, "SELECT * FROM bookings ORDER BY created_at DESC"); err != nil {
		return nil, err
	}
	return bookings, nil
}

func GetBooking(db *sqlx.DB, id string) (*models.Booking, error) {
	var b models.Booking
	query := db.Rebind("SELECT * FROM bookings WHERE id = ?")
	if err := db.Get(&b, query, id); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBookingStatus writes a new status and stamps updated_at. No
// other field changes. Transition legality is the caller's problem,
// the store applies whatever it is told (last write wins).
func UpdateBookingStatus(db *sqlx.DB, id, status string) error {
	query := db.Rebind("UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?")
	_, err := db.Exec(query, status, time.Now().Unix(), id)
	return err
}
