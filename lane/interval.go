package lane

import "sort"

// interval is a half-open [from, to] range along a single axis, used to
// represent both a forbidden projection and a surviving free stretch of
// a lane.
type interval struct {
	from, to float64
}

// mergeIntervals sorts ivs by start and coalesces any pair that overlaps
// or touches, returning a minimal disjoint cover.
func mergeIntervals(ivs []interval) []interval {
	if len(ivs) == 0 {
		return nil
	}
	sorted := make([]interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].from < sorted[j].from })

	merged := []interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.from <= last.to {
			if iv.to > last.to {
				last.to = iv.to
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}

// subtract removes holes (assumed disjoint and sorted by from) from base,
// dropping any remainder shorter than minLen.
func subtract(base interval, holes []interval, minLen float64) []interval {
	remaining := []interval{base}
	for _, h := range holes {
		var next []interval
		for _, r := range remaining {
			lo, hi := max2(r.from, h.from), min2(r.to, h.to)
			if lo >= hi {
				next = append(next, r)
				continue
			}
			if r.from < lo {
				next = append(next, interval{r.from, lo})
			}
			if hi < r.to {
				next = append(next, interval{hi, r.to})
			}
		}
		remaining = next
	}

	out := remaining[:0]
	for _, r := range remaining {
		if r.to-r.from >= minLen {
			out = append(out, r)
		}
	}

	return out
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
