// Package permute enumerates the injective placements of a mod pool across
// slot positions. Positions a placement leaves empty carry the Absent marker.
//
// Enumeration order is pinned to be lexicographic over the emitted index
// sequences, with Absent sorting before every pool index. The search's
// tie-break rule keeps the first of several equally-scored candidates, so a
// reproducible enumeration order is what makes assignment output
// deterministic.
package permute

// Absent marks a position that receives no mod in a placement.
const Absent = -1

// Placement maps slot positions to pool indices. Placement[pos] is the
// index of the pool item occupying that position, or Absent.
type Placement []int

// Placements enumerates every placement of a pool of size k over n slot
// positions. Each placement assigns exactly min(k, n) distinct pool indices
// to distinct positions; the remaining positions are Absent. When k exceeds
// n, every n-subset of the pool appears in every order, and the caller is
// responsible for accounting for the indices a placement leaves out.
//
// A pool of size zero yields exactly one placement, the all-Absent one, so
// the triple enumeration over three pools always evaluates at least one
// candidate.
func Placements(k, n int) []Placement {
	if n < 0 {
		n = 0
	}
	placed := k
	if placed > n {
		placed = n
	}

	var out []Placement
	current := make(Placement, n)
	used := make([]bool, k)
	enumerate(current, used, 0, placed, &out)
	return out
}

// enumerate fills positions left to right. At each position it tries Absent
// first, then unused pool indices in increasing order, which yields the
// pinned lexicographic output order.
func enumerate(current Placement, used []bool, pos, remaining int, out *[]Placement) {
	if pos == len(current) {
		c := make(Placement, len(current))
		copy(c, current)
		*out = append(*out, c)
		return
	}

	// Absent is only an option while enough positions remain for the items
	// that still must be placed.
	if len(current)-pos-1 >= remaining {
		current[pos] = Absent
		enumerate(current, used, pos+1, remaining, out)
	}
	if remaining == 0 {
		return
	}
	for i := range used {
		if used[i] {
			continue
		}
		used[i] = true
		current[pos] = i
		enumerate(current, used, pos+1, remaining-1, out)
		used[i] = false
	}
}

// Leftover returns the pool indices of a pool of size k that the placement
// does not use. Non-empty only when k exceeds the position count.
func (p Placement) Leftover(k int) []int {
	seen := make([]bool, k)
	for _, idx := range p {
		if idx != Absent {
			seen[idx] = true
		}
	}
	var left []int
	for i := 0; i < k; i++ {
		if !seen[i] {
			left = append(left, i)
		}
	}
	return left
}
