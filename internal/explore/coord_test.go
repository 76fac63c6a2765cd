package explore

import (
	"testing"

	"github.com/SeamusWaldron/pocketcube/internal/catalog"
	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

func TestCoordinate_Solved(t *testing.T) {
	idx, ok := coordinate(cube.Solved)
	if !ok || idx != 0 {
		t.Errorf("coordinate(Solved) = %d, %v; want 0, true", idx, ok)
	}
	if got := stateAt(0); got != cube.Solved {
		t.Errorf("stateAt(0) = %#x, want solved", uint64(got))
	}
}

func TestCoordinate_Extremes(t *testing.T) {
	if got := stateAt(1); got != 0x07160d0403020100 {
		t.Errorf("stateAt(1) = %#x, want 0x07160d0403020100", uint64(got))
	}
	if got := stateAt(ReachableStates - 1); got != 0x0700111213141516 {
		t.Errorf("stateAt(last) = %#x, want 0x0700111213141516", uint64(got))
	}
}

func TestCoordinate_RoundTrip(t *testing.T) {
	for idx := 0; idx < ReachableStates; idx += 997 {
		s := stateAt(idx)
		got, ok := coordinate(s)
		if !ok || got != idx {
			t.Fatalf("coordinate(stateAt(%d)) = %d, %v", idx, got, ok)
		}
	}
}

func TestCoordinate_MovesStayInRange(t *testing.T) {
	cat := catalog.Default(types.HalfTurn)
	s := cube.Solved
	for i := 0; i < 500; i++ {
		s = s.Apply(cat.Move(catalog.ID(i * 7 % cat.Len())))
		idx, ok := coordinate(s)
		if !ok || idx < 0 || idx >= ReachableStates {
			t.Fatalf("state %#x after %d moves has coordinate %d, %v", uint64(s), i+1, idx, ok)
		}
		if back := stateAt(idx); back != s {
			t.Fatalf("stateAt(coordinate(%#x)) = %#x", uint64(s), uint64(back))
		}
	}
}

func TestCoordinate_RejectsOutsideGroup(t *testing.T) {
	for _, s := range []cube.State{
		0,
		cube.State(^uint64(0)),
		0x0706050403020108, // one corner twisted
		0x0006050403020107, // corner 7 displaced
		0x0F06050403020100, // corner 7 twisted
		0x0706050403020000, // repeated identity
		0x0706050403021900, // orientation 3
	} {
		if idx, ok := coordinate(s); ok {
			t.Errorf("coordinate(%#x) = %d, want rejection", uint64(s), idx)
		}
	}
}
