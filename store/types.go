package store

import "time"

// Status is the lifecycle state of a persisted planning job.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Job is the tuple spec.md §6 describes the persistent store as
// receiving and returning verbatim: a name, the raw request and
// response bodies, timestamps and a status. The store never parses
// Input or Output -- they are opaque JSON blobs supplied by the caller.
type Job struct {
	ID        string
	Name      string
	Input     []byte
	Output    []byte
	Status    Status
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
