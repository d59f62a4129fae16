// Package monitoring keeps live telemetry views of drones in flight.
//
// A View follows one drone at a time. Once opened it fetches the flight
// parameters and the mission geometry immediately and then on every poll
// interval. The two fetches run in parallel and fail independently, so a
// geometry outage never blanks the parameters and vice versa. After each
// successful geometry fetch the map viewport is recomputed.
//
// Switching the drone bumps the view generation, resets every reading to
// Unknown and restarts polling. Results of fetches issued under an older
// generation are discarded. Subscribers receive the latest state after every
// tick; a slow subscriber only ever misses intermediate states.
package monitoring
