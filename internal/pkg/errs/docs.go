// Package errs provides the error taxonomy of the mission-control service.
//
// Validation family (raised before any network call, never retried):
//   - ValueIsRequiredError: a precondition is missing (no package, no rack, ...)
//   - ValueIsInvalidError: an input cannot be used (coordinates that do not parse)
//   - ValueIsOutOfRangeError: an input is outside its bounds
//
// Lookups:
//   - ObjectNotFoundError: a session, view or drone id is unknown
//
// Remote failures:
//   - TransportError: the backend or mail service could not be reached or
//     answered with an unreadable body. Pollers retry on their next tick.
//   - BusinessError: the backend rejected the request with its own message
//     (rack already occupied, control key not found, OTP not generated yet).
//     The message is surfaced to the operator verbatim through Message.
//
// Every type has a sentinel (ErrValueIsRequired, ErrTransport, ...) returned by
// Unwrap so callers classify errors with errors.Is.
package errs
