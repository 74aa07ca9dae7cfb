package obstacle

import "github.com/wallbot/covplan/core"

// Merge reduces rects to a disjoint set by repeatedly grouping every pair
// that shares positive area into its bounding box, until a full pass
// performs zero unions.
//
// Within a single pass, overlap is resolved via a disjoint-set union over
// rectangle indices (the same union-by-rank/path-compression technique
// the teacher uses for Kruskal's MST, applied to obstacle indices instead
// of graph vertices): any pair with positive-area overlap is unioned, so
// transitive chains (A overlaps B, B overlaps C, A does not overlap C)
// collapse into one group within a single pass rather than needing an
// extra pass to catch them. Bounding-box expansion can introduce new
// overlaps between groups that did not exist before merging, so passes
// repeat until one produces no unions at all -- the disjoint fixpoint
// spec.md §4.1 describes.
//
// Complexity: O(N^2) per pass, O(N) passes worst case -> O(N^3).
func Merge(rects []core.Rectangle) []core.Rectangle {
	for {
		n := len(rects)
		if n < 2 {
			return rects
		}
		d := newDSU(n)
		merged := false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if core.OverlapsPositiveArea(rects[i], rects[j]) {
					d.union(i, j)
					merged = true
				}
			}
		}
		if !merged {
			return rects
		}
		groups := d.groups()
		next := make([]core.Rectangle, 0, len(groups))
		for _, members := range groups {
			if len(members) == 1 {
				next = append(next, rects[members[0]])
				continue
			}
			group := make([]core.Rectangle, len(members))
			for i, m := range members {
				group[i] = rects[m]
			}
			next = append(next, core.BoundingBox(group))
		}
		rects = next
	}
}
