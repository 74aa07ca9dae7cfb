package trajectory

import (
	"math"

	"github.com/wallbot/covplan/core"
)

// Assemble stitches lanes and their per-lane free segments (as produced
// by lane.SegmentLanes, same order, same length) into a single
// boustrophedon waypoint path.
func Assemble(lanes []core.Lane, segs [][]core.FreeSegment, params core.PlannerParams) []core.Waypoint {
	step := math.Max(params.Spacing(), params.ToolWidth/2)

	var waypoints []core.Waypoint
	ascending := true
	for i, l := range lanes {
		free := segs[i]
		if len(free) == 0 {
			continue
		}
		heading := headingFor(l.Axis, ascending)
		for _, seg := range orderedSegments(free, ascending) {
			for _, coord := range discretize(seg.From, seg.To, step, ascending) {
				waypoints = append(waypoints, toWaypoint(l.Axis, l.Coordinate, coord, heading))
			}
		}
		ascending = !ascending
	}

	return waypoints
}

// orderedSegments returns free in ascending-From order when ascending,
// or reverse order when not; lane.SegmentLanes already yields segments
// sorted ascending by From.
func orderedSegments(free []core.FreeSegment, ascending bool) []core.FreeSegment {
	if ascending {
		return free
	}
	reversed := make([]core.FreeSegment, len(free))
	for i, s := range free {
		reversed[len(free)-1-i] = s
	}

	return reversed
}

// discretize samples [from, to] at step, always including from's side
// first in the traversal direction, and appends a final point flush with
// the far end whenever the regular step would stop short of it. Points
// are returned in traversal order (reversed when !ascending).
func discretize(from, to float64, step float64, ascending bool) []float64 {
	var points []float64
	for x := from; x <= to+core.EpsGeom; x += step {
		points = append(points, x)
	}
	if len(points) == 0 {
		points = append(points, from)
	}
	if to-points[len(points)-1] > core.EpsGeom {
		points = append(points, to)
	}
	if !ascending {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	return points
}

func toWaypoint(axis core.Orientation, laneCoord, freeCoord, heading float64) core.Waypoint {
	if axis == core.OrientationVertical {
		return core.Waypoint{X: laneCoord, Y: freeCoord, Theta: heading}
	}

	return core.Waypoint{X: freeCoord, Y: laneCoord, Theta: heading}
}
