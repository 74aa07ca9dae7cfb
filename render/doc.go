// Package render draws a debug/ops PNG preview of a computed trajectory:
// the wall as a dark background, forbidden rectangles in red, a blue dot
// at each waypoint (no lines are drawn between them), and an index label
// on every tenth waypoint. It exists purely for
// operator visibility and is never consulted by the planner.
package render
