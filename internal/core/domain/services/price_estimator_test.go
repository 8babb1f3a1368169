package services_test

import (
	"testing"

	"frete/internal/core/domain/model/shipment"
	"frete/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestPriceEstimator_Estimate(t *testing.T) {
	estimator := services.NewPriceEstimator()

	tests := []struct {
		name     string
		weightKg float64
		category shipment.Category
		expected float64
	}{
		{"construction materials use 1.5x", 10, shipment.CategoryConstruction, 2000 + 100*10*1.5},
		{"furniture uses 1.2x", 5, shipment.CategoryFurniture, 2600},
		{"appliances use 1.0x", 8, shipment.CategoryAppliances, 2000 + 100*8*1.0},
		{"other uses 1.0x", 8, shipment.CategoryOther, 2800},
		{"unknown category falls back to 1.0x", 8, shipment.Category("livestock"), 2800},
		{"empty category falls back to 1.0x", 8, shipment.Category(""), 2800},
		{"fractional weight", 2.5, shipment.CategoryFurniture, 2000 + 100*2.5*1.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, estimator.Estimate(tc.weightKg, tc.category), 0.001)
		})
	}
}

func TestPriceEstimator_IsDeterministic(t *testing.T) {
	estimator := services.NewPriceEstimator()

	first := estimator.Estimate(37.5, shipment.CategoryConstruction)
	second := estimator.Estimate(37.5, shipment.CategoryConstruction)

	assert.Equal(t, first, second)
}
