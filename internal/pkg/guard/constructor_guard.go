// Package guard provides ConstructorGuard, a marker embedded in value objects,
// aggregates, commands and queries to detect zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
//
// Example:
//
//	type AssignRiderCommand struct {
//	    parcelID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c AssignRiderCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
