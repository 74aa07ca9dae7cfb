// Package obstacle implements S1 of the coverage path planner pipeline:
// turning a wall plus a list of raw, possibly-overlapping obstacle
// rectangles into a disjoint set of forbidden rectangles the tool center
// must never enter.
//
// What:
//
//   - Preprocess inflates every obstacle outward by the safe margin,
//     clips it to the wall, drops anything left with zero area, and
//     merges the survivors with Merge.
//   - Merge repeatedly unions pairs of rectangles that share positive
//     area into their bounding box until a full pass performs no unions
//     (a disjoint-set-union fixpoint).
//
// Why:
//
//   - Bounding-box merging keeps forbidden geometry axis-aligned, which
//     the lane package's interval-subtraction stage (S4) depends on.
//   - Over-approximation is acceptable: the contract is "never enter an
//     obstacle's safety zone," not "tightest possible coverage."
//
// Complexity:
//
//   - Preprocess: O(N) time and memory for N raw obstacles to inflate
//     and clip, plus the cost of Merge on the survivors.
//   - Merge: O(N^3) worst case (O(N^2) pairwise scans per pass, O(N)
//     passes until the fixpoint), memory O(N).
//
// Errors: none. Preprocess never fails; a dropped degenerate obstacle is
// reported as a core.WarnDegenerateObstacle warning, not an error.
package obstacle
