package lane

import "github.com/wallbot/covplan/core"

// SegmentLanes cuts each lane against forbidden, returning one
// []core.FreeSegment per lane (same order, same length as lanes; an
// entirely blocked lane yields an empty, non-nil-vs-nil-agnostic slice).
//
// For a vertical lane the cross axis is X: a rectangle blocks the lane
// only when it strictly straddles the lane's X coordinate (a lane tangent
// to a rectangle's edge is not considered blocked -- the inflation margin
// is the sole buffer), and its Y range is projected onto the lane's free
// axis. Horizontal lanes work the mirror way. Projections are merged
// before subtraction so adjacent or overlapping obstacles do not
// fragment a lane more than necessary, and any surviving stretch
// shorter than core.EpsSeg is discarded as geometrically insignificant.
func SegmentLanes(lanes []core.Lane, forbidden []core.Rectangle) [][]core.FreeSegment {
	out := make([][]core.FreeSegment, len(lanes))
	for i, l := range lanes {
		holes := mergeIntervals(projections(l, forbidden))
		free := subtract(interval{l.Start, l.End}, holes, core.EpsSeg)
		segs := make([]core.FreeSegment, len(free))
		for j, f := range free {
			segs[j] = core.FreeSegment{Axis: l.Axis, Coordinate: l.Coordinate, From: f.from, To: f.to}
		}
		out[i] = segs
	}

	return out
}

func projections(l core.Lane, forbidden []core.Rectangle) []interval {
	var ivs []interval
	for _, r := range forbidden {
		if l.Axis == core.OrientationVertical {
			if r.X+core.EpsGeom < l.Coordinate && l.Coordinate < r.Right()-core.EpsGeom {
				ivs = append(ivs, interval{r.Y, r.Top()})
			}
			continue
		}
		if r.Y+core.EpsGeom < l.Coordinate && l.Coordinate < r.Top()-core.EpsGeom {
			ivs = append(ivs, interval{r.X, r.Right()})
		}
	}

	return ivs
}
