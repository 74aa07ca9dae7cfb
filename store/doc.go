// Package store persists planner jobs -- inputs, outputs, timestamps and
// status -- as opaque JSON blobs in an embedded SQLite database, as
// spec.md §6 describes the persistent-store collaborator.
//
// The store never interprets the planner's input or output shapes; it
// stores and returns the raw JSON bytes the caller gives it, satisfying
// the round-trip-equality requirement in spec.md §9 without re-deriving
// a canonical encoding on read.
package store
