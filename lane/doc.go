// Package lane implements S2-S4 of the coverage path planner pipeline:
// choosing a sweep orientation, generating evenly spaced lanes across the
// wall, and cutting each lane against the forbidden rectangles to produce
// the free segments the trajectory stage stitches into a path.
//
// What:
//
//   - SelectOrientation resolves core.OrientationAuto to Vertical or
//     Horizontal by comparing wall width to height; an explicit
//     orientation in PlannerParams is returned unchanged.
//   - GenerateLanes places lanes at x_i = S/2 + i*d across the spacing
//     axis, where d is PlannerParams.Spacing(), and appends one final
//     lane flush with the far wall edge whenever the regular spacing
//     would leave a strip uncovered.
//   - SegmentLanes projects forbidden rectangles onto each lane's free
//     axis, merges overlapping projections, and subtracts them from the
//     lane's full extent to yield zero or more FreeSegments per lane.
//
// Errors: none. An unreachably small wall yields zero lanes and a
// core.WarnWallTooSmall warning rather than an error; a fully obstructed
// lane yields zero free segments.
package lane
