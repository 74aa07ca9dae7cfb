package trajectory_test

import (
	"fmt"

	"github.com/wallbot/covplan/core"
	"github.com/wallbot/covplan/trajectory"
)

// ExampleAssemble demonstrates stitching two fully free vertical lanes
// into a boustrophedon path: the first lane sweeps north, the second
// sweeps south.
func ExampleAssemble() {
	lanes := []core.Lane{
		{Axis: core.OrientationVertical, Coordinate: 0.25, Start: 0.25, End: 4.75},
		{Axis: core.OrientationVertical, Coordinate: 1.75, Start: 0.25, End: 4.75},
	}
	segs := [][]core.FreeSegment{
		{{Axis: core.OrientationVertical, Coordinate: 0.25, From: 0.25, To: 4.75}},
		{{Axis: core.OrientationVertical, Coordinate: 1.75, From: 0.25, To: 4.75}},
	}
	params := core.PlannerParams{ToolWidth: 0.5, Overlap: 0.1}

	waypoints := trajectory.Assemble(lanes, segs, params)
	fmt.Println("waypoints:", len(waypoints))
	fmt.Println("first:", waypoints[0])
	fmt.Println("last:", waypoints[len(waypoints)-1])
	// Output:
	// waypoints: 22
	// first: {0.25 0.25 1.5707963267948966}
	// last: {1.75 0.25 -1.5707963267948966}
}
