// Package mission models one delivery mission attempt: the package being
// flown, the control key issued at launch, the lifecycle status mirrored from
// the backend and the pickup-code (OTP) dispatch state.
//
// One Mission is tracked per operator session. Resetting it starts a new
// epoch so that late results from the previous attempt can be recognised and
// dropped.
package mission
