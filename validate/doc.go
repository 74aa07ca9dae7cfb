// Package validate implements S6 of the coverage path planner pipeline:
// a collision self-check over the assembled waypoints, and the path
// length and coverage-fraction metadata the planner reports alongside a
// trajectory.
//
// Errors: CheckCollisions returns a wrapped core.ErrCollisionDetected the
// moment any waypoint falls strictly inside a forbidden rectangle; this
// is fatal and the planner returns it without a trajectory. PathLength
// and CoverageFraction never fail.
package validate
