package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, so a zero-value object always fails with a message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding it in a struct makes zero-value instances
// detectable: the guard of a zero value reports not-constructed.
//
// Example:
//
//	type Shipment struct {
//	    title string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewShipment(title string) Shipment {
//	    return Shipment{title: title, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s Shipment) Validate() error {
//	    return s.guard.Validate(ErrShipmentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the holder as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
