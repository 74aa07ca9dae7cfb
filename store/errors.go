package store

import "errors"

var (
	// ErrNotFound is returned by Load when no job with the given public
	// id exists.
	ErrNotFound = errors.New("store: job not found")
	// ErrClosed is returned by any operation attempted after Close.
	ErrClosed = errors.New("store: database is closed")
)
