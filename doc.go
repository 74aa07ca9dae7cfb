// Package covplan plans boustrophedon (back-and-forth) coverage paths for a
// wall-finishing robot working a single rectangular wall with axis-aligned
// rectangular obstacles.
//
// The planner runs as a pure, deterministic pipeline with no I/O:
//
//	obstacle/   — inflate obstacles by the tool's safe margin, clip to the
//	              wall, merge overlapping ones (a disjoint-set union)
//	lane/       — pick vertical or horizontal lane orientation, generate
//	              evenly spaced lanes, subtract obstacle shadows from each
//	trajectory/ — discretize surviving lane segments into waypoints,
//	              alternating direction lane to lane
//	validate/   — collision self-check, path length, coverage fraction
//	planner/    — Plan() wires the above into a single call
//
// Everything above is pure: same input, same output, no goroutines beyond
// the caller's. The ambient packages turn that core into a service:
//
//	store/     — persists planning jobs as JSON blobs in SQLite
//	api/       — HTTP handlers (plan, fetch, stream over WebSocket)
//	render/    — PNG preview of a trajectory, for operators only
//	retention/ — scheduled pruning of old jobs
//	cmd/covplan — CLI: plan a job file, serve the API, or watch a directory
//
// See SPEC_FULL.md for the full coordinate system, algorithm, and error
// taxonomy this package implements.
package covplan
