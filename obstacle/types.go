// Package obstacle's types.go declares the disjoint-set-union helper that
// Merge uses to group overlapping rectangles within a single pass.
package obstacle

// dsu is a disjoint-set-union over integer indices 0..n-1, with path
// compression and union by rank. The same technique the teacher uses for
// Kruskal's MST (union-by-rank over vertex IDs) applied here to obstacle
// indices instead of graph vertices.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

func (d *dsu) find(x int) int {
	if d.parent[x] != x {
		d.parent[x] = d.find(d.parent[x])
	}

	return d.parent[x]
}

func (d *dsu) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		d.parent[ra] = rb
	} else {
		d.parent[rb] = ra
		if d.rank[ra] == d.rank[rb] {
			d.rank[ra]++
		}
	}
}

// groups returns the current partition as a slice of index slices, ordered
// by each group's smallest member index for deterministic iteration.
func (d *dsu) groups() [][]int {
	byRoot := make(map[int][]int, len(d.parent))
	for i := range d.parent {
		r := d.find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	out := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		out = append(out, members)
	}
	// Sort by smallest member for deterministic output order, matching the
	// planner's no-reordering determinism requirement (spec.md §5).
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j][0] < out[j-1][0]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}
