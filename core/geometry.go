package core

// Clip intersects r with the wall's bounding rectangle [0,W]x[0,H] and
// reports whether any positive area survived. A zero-or-negative-area
// result is returned as the zero Rectangle with ok=false.
//
// Complexity: O(1).
func (w Wall) Clip(r Rectangle) (Rectangle, bool) {
	x0 := maxF(r.X, 0)
	y0 := maxF(r.Y, 0)
	x1 := minF(r.Right(), w.Width)
	y1 := minF(r.Top(), w.Height)
	if x1-x0 <= EpsGeom || y1-y0 <= EpsGeom {
		return Rectangle{}, false
	}

	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// Inflate expands r outward by m on every side.
//
// Complexity: O(1).
func Inflate(r Rectangle, m float64) Rectangle {
	return Rectangle{
		X:      r.X - m,
		Y:      r.Y - m,
		Width:  r.Width + 2*m,
		Height: r.Height + 2*m,
	}
}

// OverlapsPositiveArea reports whether a and b share more than EpsGeom of
// area along both axes. Rectangles that merely touch along an edge are
// NOT considered overlapping, per §4.1's "pairs sharing only edges are
// considered disjoint" rule.
//
// Complexity: O(1).
func OverlapsPositiveArea(a, b Rectangle) bool {
	ox := minF(a.Right(), b.Right()) - maxF(a.X, b.X)
	oy := minF(a.Top(), b.Top()) - maxF(a.Y, b.Y)

	return ox > EpsGeom && oy > EpsGeom
}

// BoundingBox returns the smallest Rectangle containing every rect in rs.
// Panics if rs is empty -- callers must guard the empty case themselves,
// matching the teacher's policy of confining precondition panics to
// clearly-programmer-error call sites.
//
// Complexity: O(len(rs)).
func BoundingBox(rs []Rectangle) Rectangle {
	if len(rs) == 0 {
		panic("core: BoundingBox of empty rectangle set")
	}
	x0, y0 := rs[0].X, rs[0].Y
	x1, y1 := rs[0].Right(), rs[0].Top()
	for _, r := range rs[1:] {
		x0 = minF(x0, r.X)
		y0 = minF(y0, r.Y)
		x1 = maxF(x1, r.Right())
		y1 = maxF(y1, r.Top())
	}

	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// StrictlyInside reports whether point (x,y) lies strictly inside r,
// i.e. inset from every edge by EpsGeom. Used by the S6 collision check,
// where a waypoint exactly on a forbidden rectangle's boundary is
// considered safe (the inflation margin is the sole buffer).
//
// Complexity: O(1).
func (r Rectangle) StrictlyInside(x, y float64) bool {
	return r.X+EpsGeom < x && x < r.Right()-EpsGeom &&
		r.Y+EpsGeom < y && y < r.Top()-EpsGeom
}

// ApproxEqual reports whether a and b differ by no more than EpsGeom.
func ApproxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= EpsGeom
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
