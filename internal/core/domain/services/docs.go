// Package services contains stateless domain services that implement
// business logic spanning shipment attributes without belonging to a single
// aggregate. The PriceEstimator quotes freight prices for shipments created
// without an explicit price.
package services
