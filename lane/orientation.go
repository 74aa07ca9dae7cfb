package lane

import "github.com/wallbot/covplan/core"

// SelectOrientation resolves the sweep orientation for wall. An explicit
// PlannerParams.Orientation is honored as-is; core.OrientationAuto picks
// Vertical when the wall is at least as tall as it is wide (lanes run
// along the longer dimension, spaced across the shorter one, minimizing
// the number of end-of-lane turns) and Horizontal otherwise.
func SelectOrientation(wall core.Wall, params core.PlannerParams) core.Orientation {
	if params.Orientation != core.OrientationAuto {
		return params.Orientation
	}
	if wall.Width <= wall.Height {
		return core.OrientationVertical
	}

	return core.OrientationHorizontal
}
