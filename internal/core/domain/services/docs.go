// Package services provides domain services that compute results across
// several domain values without belonging to any single one of them.
//
// The package includes:
//   - ViewportCalculator: derives the map focal point and zoom for a drone
//     from its live position and mission geometry
package services
