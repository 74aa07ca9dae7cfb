package planner

import (
	"fmt"

	"github.com/wallbot/covplan/core"
	"github.com/wallbot/covplan/lane"
	"github.com/wallbot/covplan/obstacle"
	"github.com/wallbot/covplan/trajectory"
	"github.com/wallbot/covplan/validate"
)

// Plan runs the full S1-S6 pipeline over wall, obstacles and params and
// returns the resulting trajectory. See the package doc for the error
// taxonomy.
func Plan(wall core.Wall, obstacles []core.Rectangle, params core.PlannerParams) (*core.Trajectory, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := wall.Validate(); err != nil {
		return nil, err
	}
	if badIndex, ok := obstacle.ValidateRectangles(obstacles); !ok {
		return nil, fmt.Errorf("%w: obstacle %d has a negative or non-finite dimension", core.ErrInvalidParameters, badIndex)
	}

	forbidden, warnings := obstacle.Preprocess(wall, obstacles, params.SafeMargin)

	orientation := lane.SelectOrientation(wall, params)
	lanes, laneWarnings := lane.GenerateLanes(wall, params, orientation)
	warnings = append(warnings, laneWarnings...)

	segs := lane.SegmentLanes(lanes, forbidden)
	waypoints := trajectory.Assemble(lanes, segs, params)

	if err := validate.CheckCollisions(forbidden, waypoints); err != nil {
		return nil, err
	}

	if len(lanes) > 0 && len(waypoints) == 0 {
		warnings = append(warnings, core.WarnNoFreeSpace)
	}

	meta := core.Meta{
		PathLengthM:      validate.PathLength(waypoints),
		CoverageFraction: validate.CoverageFraction(wall, lanes, segs, params),
		NumWaypoints:     len(waypoints),
		Warnings:         warnings,
	}

	return &core.Trajectory{ForbiddenRects: forbidden, Waypoints: waypoints, Meta: meta}, nil
}
