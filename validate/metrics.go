package validate

import (
	"math"

	"github.com/wallbot/covplan/core"
)

// PathLength sums the Euclidean distance between consecutive waypoints in
// a fixed left-to-right pass, so repeated calls on the same trajectory
// always return the identical float64 bit pattern.
func PathLength(waypoints []core.Waypoint) float64 {
	var total float64
	for i := 1; i < len(waypoints); i++ {
		dx := waypoints[i].X - waypoints[i-1].X
		dy := waypoints[i].Y - waypoints[i-1].Y
		total += math.Hypot(dx, dy)
	}

	return total
}

// CoverageFraction estimates the fraction of the wall area actually
// swept: each free segment contributes its length times the lane
// spacing d, and the first and last generated lanes additionally
// contribute S/2 per unit length to account for the tool covering a full
// S-wide strip at the two wall edges rather than the interior d-wide
// overlap band. The result is clamped to [0,1].
func CoverageFraction(wall core.Wall, lanes []core.Lane, segs [][]core.FreeSegment, params core.PlannerParams) float64 {
	if len(lanes) == 0 || wall.Width <= 0 || wall.Height <= 0 {
		return 0
	}
	d := params.Spacing()

	var covered float64
	for _, laneSegs := range segs {
		for _, s := range laneSegs {
			covered += s.Length() * d
		}
	}

	half := params.ToolWidth / 2
	covered += half * sumLengths(segs[0])
	if len(segs) > 1 {
		covered += half * sumLengths(segs[len(segs)-1])
	}

	fraction := covered / (wall.Width * wall.Height)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}

	return fraction
}

func sumLengths(segs []core.FreeSegment) float64 {
	var total float64
	for _, s := range segs {
		total += s.Length()
	}

	return total
}
