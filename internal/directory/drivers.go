// Package directory holds the static driver roster. The roster lives
// in memory only: drivers have no persisted lifecycle, real assignment
// and onboarding are handled outside this system.
package directory

import (
	"strings"
	"sync"

	"cabbook-backend/internal/models"
)

// Driver directory statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnRide   = "on-ride"
)

var mu sync.RWMutex

var roster = []models.Driver{
	{
		ID:             "1",
		Name:           "Rajkumar Subramaniam",
		Photo:          "https://source.unsplash.com/photo-1581092795360-fd1ca04f0952",
		Phone:          "+91 94865 12345",
		Rating:         4.8,
		Location:       "Chennai, Tamil Nadu",
		CarModel:       "Maruti Swift Dzire",
		CarNumber:      "TN 01 AX 2345",
		Experience:     "5 years",
		Status:         StatusActive,
		CompletedRides: 583,
	},
	{
		ID:             "2",
		Name:           "Anitha Krishnan",
		Photo:          "https://source.unsplash.com/photo-1649972904349-6e44c42644a7",
		Phone:          "+91 73339 28754",
		Rating:         4.7,
		Location:       "Coimbatore, Tamil Nadu",
		CarModel:       "Honda City",
		CarNumber:      "TN 37 BF 9807",
		Experience:     "3 years",
		Status:         StatusOnRide,
		CompletedRides: 412,
	},
	{
		ID:             "3",
		Name:           "Venkatesh Murugan",
		Photo:          "https://source.unsplash.com/photo-1581091226825-a6a2a5aee158",
		Phone:          "+91 98432 67123",
		Rating:         4.5,
		Location:       "Madurai, Tamil Nadu",
		CarModel:       "Hyundai Xcent",
		CarNumber:      "TN 59 HG 6543",
		Experience:     "4 years",
		Status:         StatusActive,
		CompletedRides: 497,
	},
	{
		ID:             "4",
		Name:           "Priya Chandrasekhar",
		Photo:          "https://source.unsplash.com/photo-1581092795360-fd1ca04f0952",
		Phone:          "+91 85671 45678",
		Rating:         4.9,
		Location:       "Salem, Tamil Nadu",
		CarModel:       "Toyota Etios",
		CarNumber:      "TN 27 CT 4362",
		Experience:     "6 years",
		Status:         StatusInactive,
		CompletedRides: 721,
	},
	{
		ID:             "5",
		Name:           "Senthil Kumar",
		Photo:          "https://source.unsplash.com/photo-1581091226825-a6a2a5aee158",
		Phone:          "+91 94432 87654",
		Rating:         4.6,
		Location:       "Tiruchirappalli, Tamil Nadu",
		CarModel:       "Maruti Ertiga",
		CarNumber:      "TN 45 KL 7890",
		Experience:     "2 years",
		Status:         StatusActive,
		CompletedRides: 289,
	},
}

// DemoDriver is attached to in-progress bookings that have no assigned
// driver yet, so ride details always have someone to show.
var DemoDriver = models.Driver{
	ID:             "driver-1",
	Name:           "Rajesh Kumar",
	Photo:          "https://i.pravatar.cc/150?img=32",
	Phone:          "+91 9876543210",
	Rating:         4.7,
	Location:       "New Delhi, India",
	CarModel:       "Maruti Suzuki Swift",
	CarNumber:      "DL 01 AB 1234",
	Experience:     "5 years",
	Status:         StatusOnRide,
	CompletedRides: 320,
}

// All returns a copy of the roster.
func All() []models.Driver {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]models.Driver, len(roster))
	copy(out, roster)
	return out
}

// Get returns the driver with the given id.
func Get(id string) (models.Driver, bool) {
	mu.RLock()
	defer mu.RUnlock()
	for _, d := range roster {
		if d.ID == id {
			return d, true
		}
	}
	return models.Driver{}, false
}

// SetPhoto swaps a driver's photo URL for the process lifetime.
func SetPhoto(id, url string) bool {
	mu.Lock()
	defer mu.Unlock()
	for i := range roster {
		if roster[i].ID == id {
			roster[i].Photo = url
			return true
		}
	}
	return false
}

// Filter returns the drivers matching a status tab and a search term.
// The search term is matched case-insensitively over name, car model,
// car number and location.
func Filter(drivers []models.Driver, tab, search string) []models.Driver {
	out := make([]models.Driver, 0, len(drivers))
	term := strings.ToLower(strings.TrimSpace(search))

	for _, d := range drivers {
		if tab != "" && tab != "all" && d.Status != tab {
			continue
		}
		if term != "" {
			match := strings.Contains(strings.ToLower(d.Name), term) ||
				strings.Contains(strings.ToLower(d.CarModel), term) ||
				strings.Contains(strings.ToLower(d.CarNumber), term) ||
				strings.Contains(strings.ToLower(d.Location), term)
			if !match {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}
