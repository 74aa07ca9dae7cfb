// Package planner orchestrates the coverage path planner's full S1-S6
// pipeline behind a single pure function, Plan.
//
// Plan never performs I/O and never mutates its inputs; calling it
// concurrently with the same wall, obstacles and params always produces
// byte-identical trajectories, since every stage iterates its inputs in a
// fixed, deterministic order.
//
// Error taxonomy:
//
//   - core.ErrInvalidParameters (fatal): bad wall or parameter values, or
//     a structurally invalid obstacle rectangle.
//   - core.ErrCollisionDetected (fatal): the assembled path passes
//     through a forbidden rectangle; this should never happen given a
//     correct S1-S5 implementation and indicates a pipeline bug.
//   - Obstacles dropped for lying outside the wall, and walls too small
//     to fit a single lane, are soft conditions reported through
//     core.Meta.Warnings, not errors.
//   - An empty trajectory (no free space to cover) is not an error
//     either: Plan returns a Trajectory with zero waypoints and a
//     core.WarnNoFreeSpace warning.
package planner
