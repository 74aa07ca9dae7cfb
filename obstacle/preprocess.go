package obstacle

import "github.com/wallbot/covplan/core"

// Preprocess runs S1 of the planner pipeline: inflate each raw obstacle by
// the safe margin, clip to the wall, drop anything with zero surviving
// area, and merge overlapping survivors into a disjoint set of forbidden
// rectangles.
//
// Returns the forbidden rectangles (each fully inside the wall, pairwise
// interior-disjoint) and any warnings generated along the way
// (core.WarnDegenerateObstacle for each dropped zero-area obstacle).
//
// Complexity: O(N) for inflate+clip, O(N^3) worst case for Merge. Never
// returns an error: a degenerate or out-of-bounds obstacle is dropped and
// reported as a warning, never surfaced as a failure (spec.md §7).
func Preprocess(wall core.Wall, raw []core.Rectangle, safeMargin float64) (forbidden []core.Rectangle, warnings []string) {
	clipped := make([]core.Rectangle, 0, len(raw))
	for _, r := range raw {
		inflated := core.Inflate(r, safeMargin)
		c, ok := wall.Clip(inflated)
		if !ok {
			warnings = append(warnings, core.WarnDegenerateObstacle)
			continue
		}
		clipped = append(clipped, c)
	}

	return Merge(clipped), warnings
}
