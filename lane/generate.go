package lane

import "github.com/wallbot/covplan/core"

// GenerateLanes places lanes across wall at spacing d = params.Spacing(),
// starting at half the tool width from the near edge: x_i = S/2 + i*d.
// Generation stops once a regular step would leave less than S/2 of wall
// remaining on the far side; if the last regular lane does not land flush
// with the far edge (within core.EpsGeom), one additional lane is appended
// at exactly half-tool-width from the far edge so the whole wall is swept.
//
// A wall narrower than the tool along the spacing axis produces zero
// lanes and a core.WarnWallTooSmall warning.
func GenerateLanes(wall core.Wall, params core.PlannerParams, orientation core.Orientation) ([]core.Lane, []string) {
	half := params.ToolWidth / 2
	d := params.Spacing()

	spacingAxisLen, freeAxisLen := wall.Width, wall.Height
	if orientation == core.OrientationHorizontal {
		spacingAxisLen, freeAxisLen = wall.Height, wall.Width
	}

	if spacingAxisLen < params.ToolWidth-core.EpsGeom || freeAxisLen < params.ToolWidth-core.EpsGeom {
		return nil, []string{core.WarnWallTooSmall}
	}

	far := spacingAxisLen - half
	var positions []float64
	for i := 0; ; i++ {
		x := half + float64(i)*d
		if x > far+core.EpsGeom {
			break
		}
		positions = append(positions, x)
	}
	if len(positions) == 0 {
		return nil, []string{core.WarnWallTooSmall}
	}
	if far-positions[len(positions)-1] > core.EpsGeom {
		positions = append(positions, far)
	}

	lanes := make([]core.Lane, len(positions))
	for i, x := range positions {
		lanes[i] = core.Lane{
			Axis:       orientation,
			Coordinate: x,
			Start:      half,
			End:        freeAxisLen - half,
		}
	}

	return lanes, nil
}
