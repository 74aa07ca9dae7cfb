// Package api serves the coverage path planner over HTTP, as spec.md §6
// describes the request-endpoint collaborator's contact surface: accept
// a JSON document matching PlannerParams/Wall/obstacles, return the
// computed Trajectory as JSON, and persist the exchange through store.
//
// Routes:
//
//	POST /v1/plans            submit a planning job, returns the stored job id and trajectory
//	GET  /v1/plans/:id         retrieve a previously computed job
//	GET  /v1/plans/:id/stream  websocket echo of a job's waypoints, for playback UIs
//
// core.ErrInvalidParameters maps to 400, core.ErrCollisionDetected (a
// planner self-inconsistency) maps to 500, per spec.md §6.
package api
