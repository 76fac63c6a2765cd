package explore

import (
	"fmt"
	"iter"

	"github.com/SeamusWaldron/pocketcube/internal/catalog"
	"github.com/SeamusWaldron/pocketcube/internal/cube"
)

// unreached marks coordinates the traversal has not discovered.
const unreached = 0xFF

// Step is the database entry for one state: the move that first reached
// it and the state it was applied to. The solved state maps to itself
// with catalog.NoMove.
type Step struct {
	Move  catalog.ID
	Depth uint8
	Prev  cube.State
}

// DB is the predecessor map built by a full traversal, stored densely by
// coordinate. Only the discovering move is kept; the predecessor is
// recovered by applying its inverse. It is read-only once Build returns
// and safe for concurrent readers.
type DB struct {
	cat      *catalog.Catalog
	moves    []catalog.ID
	depths   []uint8
	size     int
	maxDepth int
}

func (db *DB) discover(s, _ cube.State, via catalog.ID, depth int) bool {
	idx := mustCoordinate(s)
	if db.depths[idx] != unreached {
		return false
	}
	db.depths[idx] = uint8(depth)
	db.moves[idx] = via
	db.size++
	if depth > db.maxDepth {
		db.maxDepth = depth
	}
	return true
}

// mustCoordinate panics for a state outside the group; the exploration
// moves never produce one from solved.
func mustCoordinate(s cube.State) int {
	idx, ok := coordinate(s)
	if !ok {
		panic(fmt.Sprintf("explore: state %#x has no coordinate", uint64(s)))
	}
	return idx
}

// Build explores every state reachable with the catalog's exploration
// moves and records how each was first reached.
func Build(cat *catalog.Catalog) *DB {
	db := &DB{
		cat:    cat,
		moves:  make([]catalog.ID, ReachableStates),
		depths: make([]uint8, ReachableStates),
	}
	for i := range db.depths {
		db.depths[i] = unreached
	}
	walk(cat, db)
	return db
}

// Catalog returns the catalog the database was built with.
func (db *DB) Catalog() *catalog.Catalog {
	return db.cat
}

func (db *DB) index(s cube.State) (int, bool) {
	idx, ok := coordinate(s)
	if !ok || db.depths[idx] == unreached {
		return 0, false
	}
	return idx, true
}

func (db *DB) step(idx int, s cube.State) Step {
	move := db.moves[idx]
	prev := s
	if move != catalog.NoMove {
		prev = s.Apply(db.cat.Move(db.cat.Inverse(move)))
	}
	return Step{Move: move, Depth: db.depths[idx], Prev: prev}
}

// Lookup returns the entry for s.
func (db *DB) Lookup(s cube.State) (Step, bool) {
	idx, ok := db.index(s)
	if !ok {
		return Step{}, false
	}
	return db.step(idx, s), true
}

// Contains reports whether s was reached during the traversal.
func (db *DB) Contains(s cube.State) bool {
	_, ok := db.index(s)
	return ok
}

// Depth returns the shortest distance from solved to s.
func (db *DB) Depth(s cube.State) (int, bool) {
	idx, ok := db.index(s)
	if !ok {
		return 0, false
	}
	return int(db.depths[idx]), true
}

// Len returns the number of indexed states.
func (db *DB) Len() int {
	return db.size
}

// MaxDepth returns the greatest depth of any indexed state.
func (db *DB) MaxDepth() int {
	return db.maxDepth
}

// All yields every indexed state with its entry, in coordinate order.
func (db *DB) All() iter.Seq2[cube.State, Step] {
	return func(yield func(cube.State, Step) bool) {
		for idx, d := range db.depths {
			if d == unreached {
				continue
			}
			s := stateAt(idx)
			if !yield(s, db.step(idx, s)) {
				return
			}
		}
	}
}

// Histogram recomputes the per-depth state counts from the stored depths.
func (db *DB) Histogram() []int {
	counts := make([]int, db.maxDepth+1)
	for _, d := range db.depths {
		if d != unreached {
			counts[d]++
		}
	}
	return counts
}
