package shipment

import (
	"errors"
	"fmt"

	"frete/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Pending ──accept──> InTransit ──> Delivered | Cancelled
//
// A shipment never returns to Pending once a driver has accepted it.
// The InTransit -> Delivered/Cancelled transitions are driven outside this
// core and only the consistency rules are enforced here.
type Status int

const (
	// StatusUnknown is the zero value and is never a valid persisted status.
	StatusUnknown Status = iota

	// StatusPending marks a shipment waiting to be claimed by a driver.
	StatusPending

	// StatusInTransit marks a shipment claimed by a driver and in progress.
	StatusInTransit

	// StatusDelivered marks a shipment delivered to its destination.
	StatusDelivered

	// StatusCancelled marks a shipment cancelled before delivery.
	StatusCancelled
)

// ErrInvalidStatus is the sentinel for operations attempted in a status that
// does not allow them.
var ErrInvalidStatus = errors.New("operation is not allowed in the current shipment status")

// InvalidStatusError reports an operation rejected because of the shipment's
// current status. The message always names the current status so callers can
// surface the conflicting state.
type InvalidStatusError struct {
	Operation string
	Current   Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("cannot %s shipment in status %s", e.Operation, e.Current)
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for anything that is not a valid persisted status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status holds one of the valid persisted values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation ("PENDING", "IN_TRANSIT", ...).
// Safe to call on any value; invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateAccept checks whether a driver may accept a shipment in this
// status without performing the transition. Only Pending shipments can be
// accepted; the returned error names the current status.
func (s Status) ValidateAccept() error {
	if s != StatusPending {
		return &InvalidStatusError{Operation: "accept", Current: s}
	}
	return nil
}

// ValidateReject checks whether a driver may decline a shipment in this
// status. Declining never changes the shipment, but it is only meaningful
// while the shipment is still Pending.
func (s Status) ValidateReject() error {
	if s != StatusPending {
		return &InvalidStatusError{Operation: "reject", Current: s}
	}
	return nil
}

// Accept transitions the status to InTransit.
// Valid only from Pending; the returned error names the current status.
func (s Status) Accept() (Status, error) {
	if err := s.ValidateAccept(); err != nil {
		return StatusUnknown, err
	}
	return StatusInTransit, nil
}

// ValidateCanHaveDriver enforces the consistency rule between status and
// driver assignment: Pending shipments must have no driver, every other
// status requires one.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s == StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	}

	if !driver && s != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s),
		)
	}

	return nil
}
