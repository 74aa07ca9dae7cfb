package validate

import (
	"fmt"

	"github.com/wallbot/covplan/core"
)

// CheckCollisions walks waypoints in order and fails on the first one
// found strictly inside any forbidden rectangle. Waypoints that merely
// touch a rectangle's boundary are not a collision: the tool center is
// allowed to ride the safety-margin edge.
func CheckCollisions(forbidden []core.Rectangle, waypoints []core.Waypoint) error {
	for i, w := range waypoints {
		for _, r := range forbidden {
			if r.StrictlyInside(w.X, w.Y) {
				return fmt.Errorf("%w: waypoint %d at (%.6f,%.6f) inside %v", core.ErrCollisionDetected, i, w.X, w.Y, r)
			}
		}
	}

	return nil
}
