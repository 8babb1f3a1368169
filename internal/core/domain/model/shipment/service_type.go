package shipment

import (
	"fmt"

	"frete/internal/pkg/errs"
)

// ServiceType distinguishes immediate pickups from scheduled ones.
type ServiceType string

const (
	ServiceImmediate ServiceType = "IMMEDIATE"
	ServiceScheduled ServiceType = "SCHEDULED"
)

// OrDefault returns the service type itself, or ServiceImmediate when empty.
func (t ServiceType) OrDefault() ServiceType {
	if t == "" {
		return ServiceImmediate
	}
	return t
}

// Validate checks that the service type is one of the known values.
func (t ServiceType) Validate() error {
	switch t {
	case ServiceImmediate, ServiceScheduled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("service type", fmt.Errorf("%q is not a valid service type", string(t)))
	}
}

func (t ServiceType) String() string {
	return string(t)
}
