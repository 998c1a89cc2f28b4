package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatePrice(t *testing.T) {
	tests := []struct {
		cabType string
		want    float64
	}{
		{CabEconomy, 10.0},
		{CabPremium, 15.0},
		{CabLuxury, 22.5},
	}

	for _, tt := range tests {
		t.Run(tt.cabType, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimatePrice(tt.cabType))
		})
	}
}

func TestEstimatePriceUnknownTypeFallsBackToEconomy(t *testing.T) {
	assert.Equal(t, 10.0, EstimatePrice("rickshaw"))
}

func TestIsValidCabType(t *testing.T) {
	assert.True(t, IsValidCabType("economy"))
	assert.True(t, IsValidCabType("premium"))
	assert.True(t, IsValidCabType("luxury"))
	assert.False(t, IsValidCabType("Economy"))
	assert.False(t, IsValidCabType(""))
}
