// Package trajectory implements S5 of the coverage path planner pipeline:
// stitching per-lane free segments into a single boustrophedon ("ox-turn")
// path of discretized, headed waypoints.
//
// What:
//
//   - Lanes with zero free segments are skipped entirely; they never
//     contribute a turn.
//   - Non-empty lanes alternate sweep direction: the first is traversed
//     ascending along its free axis, the second descending, and so on.
//   - Each free segment is discretized at step Delta = max(d, S/2), with
//     a final point appended flush with the segment's far end whenever
//     the regular step would leave it short.
//   - Heading follows the sweep direction: vertical lanes point North
//     ascending / South descending; horizontal lanes point East
//     ascending / West descending.
//
// The jump between the last waypoint of one non-empty lane and the first
// waypoint of the next is not itself a distinct waypoint kind -- the
// assembler simply continues onto the next lane's first discretized
// point, in the fixed ascending/descending traversal order. No search is
// made for the next lane's segment whose endpoint lies closest to the
// previous lane's exit: when adjacent lanes are cut by different
// obstacles, the first segment entered is not always the closest one.
package trajectory
