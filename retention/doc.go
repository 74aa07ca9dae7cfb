// Package retention schedules periodic pruning of old planning jobs from
// the store, so a long-running server does not accumulate an unbounded
// SQLite file.
package retention
