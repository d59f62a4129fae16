// Package missioncontrol holds the operator's mission-control session: the
// orchestration context that lives from activation of the mission-control
// screen until the operator leaves it.
//
// A Session combines five cooperating parts:
//   - coordinate resolver: a drone without a source position cannot be
//     selected until the operator supplies one through a CoordinatePrompt
//   - rack allocator: cached DDT occupancy and the operator's rack choice
//   - launch controller: precondition checks, launch and reset
//   - status poller: a periodic.Task polling the backend while Processing
//   - pickup dispatcher: OTP fetch and email on delivery, rack release on pickup
//
// # Concurrency
//
// Operator actions on one session are serialised. Session state sits behind a
// mutex that is never held across a network call. Every background result is
// tagged with the mission epoch (or drone selection generation) it was issued
// for and is dropped if the tag no longer matches, so a poll that completes
// after a reset, a drone switch or Close never writes into the new state.
//
// The backend owns rack occupancy. A rack the cache shows as free may still be
// rejected at launch; that rejection is an ordinary *errs.BusinessError.
package missioncontrol
