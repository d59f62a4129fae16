// Package kernel provides the primitives shared by every part of the mission
// domain model.
//
// The package includes:
//   - Location: a validated latitude/longitude pair, with parsing of operator
//     input and the arithmetic mean used for map focus
//   - UUID: identifiers for operator sessions and telemetry views
//
// Both are immutable value objects whose zero value fails validation.
package kernel
