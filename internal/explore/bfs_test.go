package explore

import (
	"sync"
	"testing"

	"github.com/SeamusWaldron/pocketcube/internal/catalog"
	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// Regression baselines for the U/F/R group.
var (
	quarterTurnHistogram = []int{
		1, 6, 27, 120, 534, 2256, 8969, 33058, 114149,
		360508, 930588, 1350852, 782536, 90280, 276,
	}
	halfTurnHistogram = []int{
		1, 9, 54, 321, 1847, 9992, 50136, 227536, 870072,
		1887748, 623800, 2644,
	}
)

var (
	dbOnce sync.Once
	qtmDB  *DB
)

func quarterTurnDB(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("full-space exploration skipped in short mode")
	}
	dbOnce.Do(func() {
		qtmDB = Build(catalog.Default(types.QuarterTurn))
	})
	return qtmDB
}

func sum(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func equalCounts(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("histogram has %d depths, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("depth %d: %d states, want %d", i, got[i], want[i])
		}
	}
}

func TestHistogram_QuarterTurn(t *testing.T) {
	if testing.Short() {
		t.Skip("full-space exploration skipped in short mode")
	}
	counts := Histogram(catalog.Default(types.QuarterTurn))
	equalCounts(t, counts, quarterTurnHistogram)
	if counts[0] != 1 {
		t.Errorf("depth 0 count = %d, want 1", counts[0])
	}
	if got := sum(counts); got != ReachableStates {
		t.Errorf("total = %d, want %d", got, ReachableStates)
	}
	if godsNumber := len(counts) - 1; godsNumber != 14 {
		t.Errorf("God's number = %d, want 14", godsNumber)
	}
}

func TestHistogram_HalfTurn(t *testing.T) {
	if testing.Short() {
		t.Skip("full-space exploration skipped in short mode")
	}
	counts := Histogram(catalog.Default(types.HalfTurn))
	equalCounts(t, counts, halfTurnHistogram)
	if got := sum(counts); got != ReachableStates {
		t.Errorf("total = %d, want %d", got, ReachableStates)
	}
}

func TestBuild_MatchesHistogram(t *testing.T) {
	db := quarterTurnDB(t)
	if db.Len() != ReachableStates {
		t.Errorf("Len() = %d, want %d", db.Len(), ReachableStates)
	}
	if db.MaxDepth() != 14 {
		t.Errorf("MaxDepth() = %d, want 14", db.MaxDepth())
	}
	equalCounts(t, db.Histogram(), quarterTurnHistogram)
}

func TestBuild_SolvedIsRoot(t *testing.T) {
	db := quarterTurnDB(t)
	step, ok := db.Lookup(cube.Solved)
	if !ok {
		t.Fatal("solved state missing from database")
	}
	if step.Move != catalog.NoMove || step.Prev != cube.Solved || step.Depth != 0 {
		t.Errorf("solved entry = %+v", step)
	}
}

func TestBuild_PredecessorEdges(t *testing.T) {
	db := quarterTurnDB(t)
	cat := db.Catalog()
	for s, step := range db.All() {
		if s == cube.Solved {
			continue
		}
		if int(step.Move) >= len(cat.Exploration()) {
			t.Fatalf("state %#x reached by non-exploration move %d", uint64(s), step.Move)
		}
		if got := step.Prev.Apply(cat.Move(step.Move)); got != s {
			t.Fatalf("state %#x: %s on predecessor gives %#x", uint64(s), cat.Move(step.Move), uint64(got))
		}
		prevDepth, ok := db.Depth(step.Prev)
		if !ok || prevDepth != int(step.Depth)-1 {
			t.Fatalf("state %#x at depth %d has predecessor at depth %d", uint64(s), step.Depth, prevDepth)
		}
	}
}

func TestBuild_FirstLevel(t *testing.T) {
	db := quarterTurnDB(t)
	cat := db.Catalog()
	for id, m := range cat.Exploration() {
		s := cube.Solved.Apply(m)
		step, ok := db.Lookup(s)
		if !ok {
			t.Errorf("%s from solved not indexed", m)
			continue
		}
		if step.Move != catalog.ID(id) || step.Prev != cube.Solved || step.Depth != 1 {
			t.Errorf("%s entry = %+v", m, step)
		}
	}
}

func TestBuild_UnreachableStates(t *testing.T) {
	db := quarterTurnDB(t)
	for _, s := range []cube.State{0, cube.State(^uint64(0)), 0x0706050403020108} {
		if db.Contains(s) {
			t.Errorf("state %#x should not be indexed", uint64(s))
		}
		if _, ok := db.Depth(s); ok {
			t.Errorf("Depth(%#x) should report missing", uint64(s))
		}
	}
}
