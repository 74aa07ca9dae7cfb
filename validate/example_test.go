package validate_test

import (
	"fmt"

	"github.com/wallbot/covplan/core"
	"github.com/wallbot/covplan/validate"
)

// ExamplePathLength demonstrates summing the Euclidean distance across
// an L-shaped three-point path.
func ExamplePathLength() {
	waypoints := []core.Waypoint{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 0}}
	fmt.Println(validate.PathLength(waypoints))
	// Output:
	// 9
}

// ExampleCheckCollisions demonstrates a clean path producing no error.
func ExampleCheckCollisions() {
	forbidden := []core.Rectangle{{X: 1, Y: 1, Width: 1, Height: 1}}
	waypoints := []core.Waypoint{{X: 0, Y: 0}, {X: 0, Y: 5}}
	err := validate.CheckCollisions(forbidden, waypoints)
	fmt.Println(err)
	// Output:
	// <nil>
}
