package trajectory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wallbot/covplan/core"
)

func twoFreeLanes() ([]core.Lane, [][]core.FreeSegment) {
	lanes := []core.Lane{
		{Axis: core.OrientationVertical, Coordinate: 0.25, Start: 0.25, End: 4.75},
		{Axis: core.OrientationVertical, Coordinate: 1.75, Start: 0.25, End: 4.75},
	}
	segs := [][]core.FreeSegment{
		{{Axis: core.OrientationVertical, Coordinate: 0.25, From: 0.25, To: 4.75}},
		{{Axis: core.OrientationVertical, Coordinate: 1.75, From: 0.25, To: 4.75}},
	}

	return lanes, segs
}

func TestAssemble_AlternatesDirectionAndHeading(t *testing.T) {
	lanes, segs := twoFreeLanes()
	params := core.PlannerParams{ToolWidth: 0.5, Overlap: 0.1} // d = 0.45, step = 0.45

	waypoints := Assemble(lanes, segs, params)
	require.Len(t, waypoints, 22)

	first := waypoints[0]
	require.Equal(t, core.Waypoint{X: 0.25, Y: 0.25, Theta: core.HeadingNorth}, first)

	endOfLane0 := waypoints[10]
	require.Equal(t, 0.25, endOfLane0.X)
	require.True(t, core.ApproxEqual(endOfLane0.Y, 4.75))

	startOfLane1 := waypoints[11]
	require.Equal(t, 1.75, startOfLane1.X)
	require.True(t, core.ApproxEqual(startOfLane1.Y, 4.75))
	require.Equal(t, core.HeadingSouth, startOfLane1.Theta)

	last := waypoints[len(waypoints)-1]
	require.Equal(t, 1.75, last.X)
	require.True(t, core.ApproxEqual(last.Y, 0.25))
	require.Equal(t, core.HeadingSouth, last.Theta)
}

func TestAssemble_SkipsEmptyLanes(t *testing.T) {
	lanes := []core.Lane{
		{Axis: core.OrientationVertical, Coordinate: 0.25, Start: 0.25, End: 4.75},
		{Axis: core.OrientationVertical, Coordinate: 1.75, Start: 0.25, End: 4.75},
	}
	segs := [][]core.FreeSegment{
		nil, // fully obstructed lane
		{{Axis: core.OrientationVertical, Coordinate: 1.75, From: 0.25, To: 4.75}},
	}
	params := core.PlannerParams{ToolWidth: 0.5, Overlap: 0.1}

	waypoints := Assemble(lanes, segs, params)
	for _, w := range waypoints {
		require.Equal(t, 1.75, w.X, "waypoint from skipped lane leaked through: %+v", w)
	}
	// The sole visited lane is the first non-empty one encountered, so it
	// sweeps ascending.
	require.Equal(t, core.HeadingNorth, waypoints[0].Theta, "first visited lane should sweep ascending")
}

func TestDiscretize_AppendsFlushFinalPoint(t *testing.T) {
	points := discretize(0, 1, 0.3, true)
	want := []float64{0, 0.3, 0.6, 0.9, 1}
	require.Len(t, points, len(want))
	for i := range want {
		require.True(t, core.ApproxEqual(points[i], want[i]), "points[%d] = %v; want %v", i, points[i], want[i])
	}
}

func TestDiscretize_DescendingReversesOrder(t *testing.T) {
	points := discretize(0, 1, 0.5, false)
	require.Equal(t, 1.0, points[0])
	require.Equal(t, 0.0, points[len(points)-1])
}
