package obstacle

import (
	"math"

	"github.com/wallbot/covplan/core"
)

// ValidateRectangles checks the data-model invariant that every raw
// obstacle record has non-negative width and height (spec.md §3: "four
// finite non-negative reals"). It does not check wall membership --
// obstacles outside the wall are handled as a soft condition by
// Preprocess, not a hard validation failure here.
//
// Returns the index of the first invalid rectangle and false if any
// dimension is negative or non-finite.
//
// Complexity: O(N).
func ValidateRectangles(rs []core.Rectangle) (badIndex int, ok bool) {
	for i, r := range rs {
		if !isFinite(r.X) || !isFinite(r.Y) || !isFinite(r.Width) || !isFinite(r.Height) {
			return i, false
		}
		if r.Width < 0 || r.Height < 0 {
			return i, false
		}
	}

	return -1, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
