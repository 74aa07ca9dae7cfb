package trajectory

import "github.com/wallbot/covplan/core"

// headingFor returns the tool heading for a sweep along axis in the given
// direction: vertical lanes run along Y (North ascending, South
// descending); horizontal lanes run along X (East ascending, West
// descending).
func headingFor(axis core.Orientation, ascending bool) float64 {
	if axis == core.OrientationVertical {
		if ascending {
			return core.HeadingNorth
		}
		return core.HeadingSouth
	}
	if ascending {
		return core.HeadingEast
	}
	return core.HeadingWest
}
