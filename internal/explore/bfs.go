// Package explore walks the pocket cube configuration graph breadth-first
// from the solved state.
//
// Traversal is single-threaded and deterministic: states are expanded in
// discovery order and moves are tried in catalog order, so the first
// discovery of every state lies on a shortest path from solved.
package explore

import (
	"github.com/SeamusWaldron/pocketcube/internal/catalog"
	"github.com/SeamusWaldron/pocketcube/internal/cube"
)

// ReachableStates is the size of the group generated by U, F and R,
// and the length of the coordinate space.
const ReachableStates = 3674160

// visitor receives every edge that reaches a state for the first time.
type visitor interface {
	// discover records s and reports whether it had not been seen before.
	discover(s, prev cube.State, via catalog.ID, depth int) bool
}

// walk runs the breadth-first search, one depth level at a time.
func walk(cat *catalog.Catalog, v visitor) {
	moves := cat.Exploration()
	v.discover(cube.Solved, cube.Solved, catalog.NoMove, 0)

	frontier := []cube.State{cube.Solved}
	for depth := 1; len(frontier) > 0; depth++ {
		var next []cube.State
		for _, s := range frontier {
			for id, m := range moves {
				w := s.Apply(m)
				if v.discover(w, s, catalog.ID(id), depth) {
					next = append(next, w)
				}
			}
		}
		frontier = next
	}
}

type histogram struct {
	seen   []bool
	counts []int
}

func (h *histogram) discover(s, _ cube.State, _ catalog.ID, depth int) bool {
	idx := mustCoordinate(s)
	if h.seen[idx] {
		return false
	}
	h.seen[idx] = true
	for len(h.counts) <= depth {
		h.counts = append(h.counts, 0)
	}
	h.counts[depth]++
	return true
}

// Histogram counts how many states are first reached at each depth.
// The last index is God's number for the catalog's metric and the counts
// sum to the number of reachable configurations.
func Histogram(cat *catalog.Catalog) []int {
	h := &histogram{seen: make([]bool, ReachableStates)}
	walk(cat, h)
	return h.counts
}
