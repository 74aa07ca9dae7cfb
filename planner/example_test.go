package planner_test

import (
	"fmt"

	"github.com/wallbot/covplan/core"
	"github.com/wallbot/covplan/planner"
)

// ExamplePlan demonstrates planning coverage of a small obstacle-free
// wall end to end.
func ExamplePlan() {
	wall := core.Wall{Width: 2, Height: 2}
	params, _ := core.NewParams(0.5)

	traj, err := planner.Plan(wall, nil, params)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("waypoints:", traj.Meta.NumWaypoints)
	fmt.Println("warnings:", traj.Meta.Warnings)
	// Output:
	// waypoints: 16
	// warnings: []
}
