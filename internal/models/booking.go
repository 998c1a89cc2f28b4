package models

type Booking struct {
	ID                  string  `json:"id" db:"id"`
	UserID              string  `json:"user_id" db:"user_id"`
	UserName            string  `json:"user_name" db:"user_name"`
	UserPhone           string  `json:"user_phone" db:"user_phone"`
	UserEmail           string  `json:"user_email" db:"user_email"`
	PickupLocation      string  `json:"pickup_location" db:"pickup_location"`
	DropoffLocation     string  `json:"dropoff_location" db:"dropoff_location"`
	RideDate            string  `json:"ride_date" db:"ride_date"` // YYYY-MM-DD
	RideTime            string  `json:"ride_time" db:"ride_time"` // offered slot label, e.g. "09:30"
	CabType             string  `json:"cab_type" db:"cab_type"`   // "economy", "premium" or "luxury"
	SpecialInstructions string  `json:"special_instructions" db:"special_instructions"`
	Price               float64 `json:"price" db:"price"`
	Distance            float64 `json:"distance" db:"distance"`
	Status              string  `json:"status" db:"status"`
	DriverID            *string `json:"driver_id,omitempty" db:"driver_id"`
	CreatedAt           int64   `json:"created_at" db:"created_at"`
	UpdatedAt           *int64  `json:"updated_at,omitempty" db:"updated_at"`
}

// BookingDetail is a booking plus the assigned driver, when one exists.
type BookingDetail struct {
	Booking
	Driver *Driver `json:"driver,omitempty"`
}
