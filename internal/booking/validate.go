package booking

import (
	"strings"
	"time"
)

// TimeSlots is the fixed set of offered pickup time slots.
var TimeSlots = []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30"}

const minLocationLen = 3

// SubmitInput carries the rider-supplied booking form fields.
type SubmitInput struct {
	PickupLocation      string
	DropoffLocation     string
	RideDate            string // YYYY-MM-DD
	RideTime            string
	CabType             string
	SpecialInstructions string
}

// IsOfferedSlot reports whether t is one of the fixed time slots.
func IsOfferedSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// Validate checks a booking submission field by field and returns a
// field -> message map. An empty map means the input is acceptable.
// The ride date must be today or later relative to now.
func Validate(in SubmitInput, now time.Time) map[string]string {
	errs := make(map[string]string)

	if len(strings.TrimSpace(in.PickupLocation)) < minLocationLen {
		errs["pickup_location"] = "Pickup location is required"
	}
	if len(strings.TrimSpace(in.DropoffLocation)) < minLocationLen {
		errs["dropoff_location"] = "Dropoff location is required"
	}

	if in.RideDate == "" {
		errs["ride_date"] = "Please select a date"
	} else if d, err := time.Parse("2006-01-02", in.RideDate); err != nil {
		errs["ride_date"] = "Date must be in YYYY-MM-DD format"
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			errs["ride_date"] = "Date cannot be in the past"
		}
	}

	if in.RideTime == "" {
		errs["ride_time"] = "Please select a time"
	} else if !IsOfferedSlot(in.RideTime) {
		errs["ride_time"] = "Time must be one of the offered slots"
	}

	if !IsValidCabType(in.CabType) {
		errs["cab_type"] = "Cab type must be economy, premium or luxury"
	}

	return errs
}
