package services

import (
	"frete/internal/core/domain/model/shipment"
)

// Pricing constants, in Kwanza.
const (
	// baseFee is the flat fee applied to every shipment.
	baseFee = 2000.0
	// perKgRate is the charge per kilogram of cargo.
	perKgRate = 100.0
	// fixedDistanceKm is a placeholder until a routing service provides real
	// distances.
	// TODO: integrate a maps/routing API to compute the actual distance.
	fixedDistanceKm = 10.0
)

// PriceEstimator is a domain service that quotes a freight price from the
// shipment attributes. It is pure and deterministic: same weight and
// category always produce the same price, and estimation never fails.
//
// The estimate is only a fallback: it is applied when a shipment is created
// without an explicit price and never overwrites one.
type PriceEstimator struct{}

// NewPriceEstimator creates a new PriceEstimator instance.
func NewPriceEstimator() PriceEstimator {
	return PriceEstimator{}
}

// Estimate computes the estimated freight price:
//
//	price = baseFee + weightKg * perKgRate * categoryMultiplier
//
// Unknown categories fall back to the default multiplier of 1.0 rather than
// failing; weight validation is the caller's concern.
func (e PriceEstimator) Estimate(weightKg float64, category shipment.Category) float64 {
	return baseFee + weightKg*perKgRate*e.categoryMultiplier(category)
}

// categoryMultiplier returns the pricing weight of a cargo category.
func (e PriceEstimator) categoryMultiplier(category shipment.Category) float64 {
	switch category {
	case shipment.CategoryConstruction:
		return 1.5
	case shipment.CategoryFurniture:
		return 1.2
	case shipment.CategoryAppliances:
		return 1.0
	default:
		return 1.0
	}
}
