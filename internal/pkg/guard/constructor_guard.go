// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that a zero value can be told apart from one built
// by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A struct embedding it
// as a zero value fails Validate.
//
// Example:
//
//	type RackSelection struct {
//	    facility string
//	    rack     RackKey
//	    guard    guard.ConstructorGuard
//	}
//
//	func (s RackSelection) Validate() error {
//	    return s.guard.Validate(ErrRackSelectionIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard was not created through NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
