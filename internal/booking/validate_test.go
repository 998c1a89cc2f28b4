package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func validInput() SubmitInput {
	return SubmitInput{
		PickupLocation:  "Chennai Central",
		DropoffLocation: "Airport",
		RideDate:        "2026-09-02",
		RideTime:        "09:30",
		CabType:         CabEconomy,
	}
}

func TestValidateAcceptsGoodInput(t *testing.T) {
	assert.Empty(t, Validate(validInput(), testNow))
}

func TestValidateAcceptsToday(t *testing.T) {
	in := validInput()
	in.RideDate = "2026-09-01"
	assert.Empty(t, Validate(in, testNow))
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitInput)
		field  string
	}{
		{"short pickup", func(in *SubmitInput) { in.PickupLocation = "ab" }, "pickup_location"},
		{"blank dropoff", func(in *SubmitInput) { in.DropoffLocation = "   " }, "dropoff_location"},
		{"missing date", func(in *SubmitInput) { in.RideDate = "" }, "ride_date"},
		{"malformed date", func(in *SubmitInput) { in.RideDate = "02/09/2026" }, "ride_date"},
		{"past date", func(in *SubmitInput) { in.RideDate = "2026-08-31" }, "ride_date"},
		{"missing time", func(in *SubmitInput) { in.RideTime = "" }, "ride_time"},
		{"unoffered slot", func(in *SubmitInput) { in.RideTime = "13:15" }, "ride_time"},
		{"bad cab type", func(in *SubmitInput) { in.CabType = "suv" }, "cab_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			errs := Validate(in, testNow)
			assert.Contains(t, errs, tt.field)
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidateInstructionsAreOptional(t *testing.T) {
	in := validInput()
	in.SpecialInstructions = ""
	assert.Empty(t, Validate(in, testNow))
}

func TestIsOfferedSlot(t *testing.T) {
	assert.True(t, IsOfferedSlot("09:00"))
	assert.True(t, IsOfferedSlot("12:30"))
	assert.False(t, IsOfferedSlot("08:30"))
	assert.False(t, IsOfferedSlot("9:00"))
}
