// Package facility models drop-off terminals (DDTs) and their rack slots.
//
// The client holds a read-through copy of each facility as last reported by
// the backend. That copy is a hint: it is used to refuse obviously occupied
// racks without a network call, while the backend stays the arbiter of every
// reservation.
package facility
