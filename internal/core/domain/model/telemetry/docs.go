// Package telemetry models what the monitoring backend reports about a drone
// in flight: a Snapshot of live parameters, the mission Geometry around the
// drone and the map Viewport derived from it.
//
// Every parameter is a Reading that is either a concrete value or Unknown.
// Unknown renders as "N/A" so a missing value is never shown as a number.
// Snapshots are replaced whole on every poll and never merged field by field.
package telemetry
