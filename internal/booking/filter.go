package booking

import (
	"strings"

	"cabbook-backend/internal/models"
)

// TabAll disables status filtering.
const TabAll = "all"

// Filter returns the bookings matching a status tab and a free-text
// search term. Tab and search combine as an intersection. The source
// slice is never mutated.
//
// The search term is matched case-insensitively as a substring of the
// rider name, pickup, dropoff and booking id. Phone numbers are matched
// on the raw term without case folding.
func Filter(bookings []models.Booking, tab, search string) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	term := strings.ToLower(strings.TrimSpace(search))
	raw := strings.TrimSpace(search)

	for _, b := range bookings {
		if tab != "" && tab != TabAll && b.Status != tab {
			continue
		}
		if term != "" && !matchesSearch(&b, term, raw) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesSearch(b *models.Booking, term, raw string) bool {
	return strings.Contains(strings.ToLower(b.UserName), term) ||
		strings.Contains(strings.ToLower(b.PickupLocation), term) ||
		strings.Contains(strings.ToLower(b.DropoffLocation), term) ||
		strings.Contains(strings.ToLower(b.ID), term) ||
		strings.Contains(b.UserPhone, raw)
}
