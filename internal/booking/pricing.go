package booking

// Cab types offered by the booking form.
const (
	CabEconomy = "economy"
	CabPremium = "premium"
	CabLuxury  = "luxury"
)

const (
	// BaseFare is charged on every ride regardless of cab type.
	BaseFare = 2.5

	// MockDistance is the fixed demo distance in miles. Real distance
	// computation is out of scope, every ride is priced at 5 miles.
	MockDistance = 5.0
)

var perMileRates = map[string]float64{
	CabEconomy: 1.5,
	CabPremium: 2.5,
	CabLuxury:  4.0,
}

// IsValidCabType reports whether t is an offered cab type.
func IsValidCabType(t string) bool {
	_, ok := perMileRates[t]
	return ok
}

// EstimatePrice returns the fare for a cab type: base fare plus the
// per-mile rate times the mock distance. Unknown cab types price as
// economy, callers are expected to validate first.
func EstimatePrice(cabType string) float64 {
	rate, ok := perMileRates[cabType]
	if !ok {
		rate = perMileRates[CabEconomy]
	}
	return BaseFare + rate*MockDistance
}
