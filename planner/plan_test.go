package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wallbot/covplan/core"
)

// E1 - empty 5x3 wall, S=0.5, o=0.1, m=0.1.
func TestPlan_E1_EmptyWall(t *testing.T) {
	wall := core.Wall{Width: 5, Height: 3}
	params, err := core.NewParams(0.5, core.WithOverlap(0.1), core.WithSafeMargin(0.1))
	require.NoError(t, err)

	traj, err := Plan(wall, nil, params)
	require.NoError(t, err)
	require.Empty(t, traj.Meta.Warnings)
	require.GreaterOrEqual(t, traj.Meta.CoverageFraction, 0.99)
	// 7 lanes of 4.5m plus cross-lane transitions.
	require.InDelta(t, 34.0, traj.Meta.PathLengthM, 4.0)
}

// E2 - single obstacle clipped and inflated; no waypoint enters its zone.
func TestPlan_E2_SingleObstacle(t *testing.T) {
	wall := core.Wall{Width: 5, Height: 3}
	params, _ := core.NewParams(0.5, core.WithOverlap(0.1), core.WithSafeMargin(0.1))
	obstacles := []core.Rectangle{{X: 1, Y: 1, Width: 0.5, Height: 0.5}}

	traj, err := Plan(wall, obstacles, params)
	require.NoError(t, err)
	require.Len(t, traj.ForbiddenRects, 1)
	require.True(t, approxRect(traj.ForbiddenRects[0], core.Rectangle{X: 0.9, Y: 0.9, Width: 0.7, Height: 0.7}))
	for _, w := range traj.Waypoints {
		inside := w.X > 0.9 && w.X < 1.6 && w.Y > 0.9 && w.Y < 1.6
		require.False(t, inside, "waypoint %v falls inside the obstacle's forbidden zone", w)
	}
}

// E3 - two touching obstacles merge to a single forbidden rectangle.
func TestPlan_E3_TouchingObstaclesMerge(t *testing.T) {
	wall := core.Wall{Width: 5, Height: 3}
	params, _ := core.NewParams(0.5, core.WithOverlap(0.1), core.WithSafeMargin(0.1))
	obstacles := []core.Rectangle{
		{X: 1, Y: 1, Width: 0.5, Height: 0.5},
		{X: 1.5, Y: 1, Width: 0.5, Height: 0.5},
	}

	traj, err := Plan(wall, obstacles, params)
	require.NoError(t, err)
	require.Len(t, traj.ForbiddenRects, 1)
	got := traj.ForbiddenRects[0]
	require.True(t, core.ApproxEqual(got.Width, 1.2))
	require.True(t, core.ApproxEqual(got.X, 0.9))
}

// E4 - invalid parameters (S=0) return InvalidParameters, no partial output.
func TestPlan_E4_InvalidParameters(t *testing.T) {
	wall := core.Wall{Width: 5, Height: 3}
	params := core.PlannerParams{ToolWidth: 0}

	traj, err := Plan(wall, nil, params)
	require.Nil(t, traj)
	require.ErrorIs(t, err, core.ErrInvalidParameters)
}

// E5 - wall smaller than the tool: empty waypoints, wall_too_small warning,
// not an error.
func TestPlan_E5_WallTooSmall(t *testing.T) {
	wall := core.Wall{Width: 0.3, Height: 0.3}
	params, _ := core.NewParams(0.5)

	traj, err := Plan(wall, nil, params)
	require.NoError(t, err)
	require.Empty(t, traj.Waypoints)
	require.Contains(t, traj.Meta.Warnings, core.WarnWallTooSmall)
}

// E6 - an obstacle covering the entire wall: no_free_space warning, zero
// waypoints.
func TestPlan_E6_ObstacleCoversWall(t *testing.T) {
	wall := core.Wall{Width: 2, Height: 2}
	params, _ := core.NewParams(0.5)
	obstacles := []core.Rectangle{{X: 0, Y: 0, Width: 2, Height: 2}}

	traj, err := Plan(wall, obstacles, params)
	require.NoError(t, err)
	require.Empty(t, traj.Waypoints)
	require.Contains(t, traj.Meta.Warnings, core.WarnNoFreeSpace)
}

func TestPlan_DeterministicAcrossConcurrentCalls(t *testing.T) {
	wall := core.Wall{Width: 5, Height: 3}
	params, _ := core.NewParams(0.5, core.WithOverlap(0.1), core.WithSafeMargin(0.1))
	obstacles := []core.Rectangle{{X: 1, Y: 1, Width: 0.5, Height: 0.5}}

	const n = 8
	results := make(chan *core.Trajectory, n)
	for i := 0; i < n; i++ {
		go func() {
			// require.NoError would call t.FailNow/Goexit here, which would
			// never reach the channel send and deadlock the reader below, so
			// this goroutine reports failures without aborting itself.
			traj, err := Plan(wall, obstacles, params)
			if err != nil {
				t.Error(err)
			}
			results <- traj
		}()
	}

	first := <-results
	for i := 1; i < n; i++ {
		got := <-results
		if got == nil || first == nil {
			continue
		}
		require.Equal(t, first.Meta.PathLengthM, got.Meta.PathLengthM, "path length diverged across concurrent runs")
		require.Len(t, got.Waypoints, len(first.Waypoints), "waypoint count diverged across concurrent runs")
	}
}

func approxRect(a, b core.Rectangle) bool {
	return core.ApproxEqual(a.X, b.X) && core.ApproxEqual(a.Y, b.Y) &&
		core.ApproxEqual(a.Width, b.Width) && core.ApproxEqual(a.Height, b.Height)
}
