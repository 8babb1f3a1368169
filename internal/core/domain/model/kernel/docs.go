// Package kernel holds the shared building blocks of the domain model.
// It currently provides the UUID value object used as the identity of every
// entity and aggregate in the freight-dispatch system.
package kernel
