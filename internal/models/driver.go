package models

type Driver struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Photo          string  `json:"photo"`
	Phone          string  `json:"phone"`
	Rating         float64 `json:"rating"`
	Location       string  `json:"location"`
	CarModel       string  `json:"car_model"`
	CarNumber      string  `json:"car_number"`
	Experience     string  `json:"experience"`
	Status         string  `json:"status"` // "active", "inactive" or "on-ride"
	CompletedRides int     `json:"completed_rides"`
}
