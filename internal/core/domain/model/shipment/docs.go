// Package shipment provides the domain model for freight shipments.
// It implements the Shipment aggregate root together with the Status state
// machine that governs the shipment lifecycle.
//
// Key business rules:
//   - A shipment is created in Pending status with no driver assigned
//   - Accepting a shipment moves it to InTransit and attaches the driver
//   - A shipment with Pending status never has a driver; any other status
//     always has one
//   - A freight price, once set, is never overwritten by the estimator
package shipment
