package cube

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// allMoves returns the generators, their inverses and their doubles.
func allMoves(t *testing.T) []*Move {
	t.Helper()
	gens := Generators()
	moves := []*Move{gens[0], gens[1], gens[2]}
	for _, g := range gens {
		moves = append(moves, g.Invert())
	}
	for _, g := range gens {
		d, err := g.Double()
		if err != nil {
			t.Fatalf("Double(%s): %v", g, err)
		}
		moves = append(moves, d)
	}
	return moves
}

// sampleStates walks a fixed scramble and returns every state it passes through.
func sampleStates(t *testing.T) []State {
	t.Helper()
	moves := allMoves(t)
	states := []State{Solved}
	s := Solved
	for i := 0; i < 60; i++ {
		s = s.Apply(moves[(i*7+3)%len(moves)])
		states = append(states, s)
	}
	return states
}

func TestSolvedLayout(t *testing.T) {
	slots := Solved.Unpack()
	for i, slot := range slots {
		if slot.Orientation() != 0 || int(slot.Identity()) != i {
			t.Errorf("slot %d = (%d, %d), want (0, %d)", i, slot.Orientation(), slot.Identity(), i)
		}
	}
	if Solved.String() != "506097522914230528" {
		t.Errorf("Solved.String() = %s", Solved.String())
	}
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	for _, s := range sampleStates(t) {
		if got := Pack(s.Unpack()); got != s {
			t.Errorf("Pack(Unpack(%#x)) = %#x", uint64(s), uint64(got))
		}
	}

	slots := [NumCorners]Slot{
		NewSlot(2, 7), NewSlot(1, 6), NewSlot(0, 5), NewSlot(2, 4),
		NewSlot(0, 3), NewSlot(1, 2), NewSlot(0, 1), NewSlot(0, 0),
	}
	if got := Pack(slots).Unpack(); got != slots {
		t.Errorf("Unpack(Pack(slots)) = %v, want %v", got, slots)
	}
}

func TestSlotEncoding(t *testing.T) {
	s := NewSlot(2, 5)
	if uint8(s) != 21 {
		t.Errorf("NewSlot(2, 5) = %d, want 21", uint8(s))
	}
	if s.Orientation() != 2 || s.Identity() != 5 {
		t.Errorf("slot 21 decoded as (%d, %d)", s.Orientation(), s.Identity())
	}
}

func TestApply_SingleMoves(t *testing.T) {
	gens := Generators()
	tests := []struct {
		move *Move
		want State
	}{
		{gens[0], 0x0706050401030002},
		{gens[1], 0x0706140803020d11},
		{gens[2], 0x070a05160310010c},
	}
	for _, tt := range tests {
		if got := Solved.Apply(tt.move); got != tt.want {
			t.Errorf("%s on solved = %#x, want %#x", tt.move, uint64(got), uint64(tt.want))
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range allMoves(t) {
		if Solved.Apply(m).IsSolved() {
			t.Errorf("cube should not be solved after %s", m)
		}
	}
}

func TestInverse_RoundTrip(t *testing.T) {
	for _, m := range allMoves(t) {
		inv := m.Invert()
		for _, s := range sampleStates(t) {
			if got := s.Apply(m).Apply(inv); got != s {
				t.Errorf("%s then %s on %#x = %#x", m, inv, uint64(s), uint64(got))
			}
			if got := s.Apply(inv).Apply(m); got != s {
				t.Errorf("%s then %s on %#x = %#x", inv, m, uint64(s), uint64(got))
			}
		}
	}
}

func TestInverse_Identity(t *testing.T) {
	for _, g := range Generators() {
		inv := g.Invert()
		if inv.Face != g.Face {
			t.Errorf("inverse of %s has face %s", g, inv.Face)
		}
		if inv.Turn != types.TurnInverse {
			t.Errorf("inverse of %s has turn %d", g, inv.Turn)
		}
		if back := inv.Invert(); *back != *g {
			t.Errorf("double inversion of %s = %+v", g, back)
		}
		for i, tw := range inv.Twist {
			if tw%orientStep != 0 || tw >= orientMod {
				t.Errorf("%s twist[%d] = %d not normalized", inv, i, tw)
			}
		}
	}
}

func TestDouble_MatchesTwoQuarterTurns(t *testing.T) {
	for _, g := range Generators() {
		d, err := g.Double()
		if err != nil {
			t.Fatalf("Double(%s): %v", g, err)
		}
		if d.Turn != types.TurnDouble || d.Notation() != string(g.Face)+"2" {
			t.Errorf("double of %s is %s", g, d)
		}
		for i, tw := range d.Twist {
			if tw != 0 {
				t.Errorf("%s twist[%d] = %d, want 0", d, i, tw)
			}
		}
		for _, s := range sampleStates(t) {
			if got, want := s.Apply(d), s.Apply(g).Apply(g); got != want {
				t.Errorf("%s on %#x = %#x, want %#x", d, uint64(s), uint64(got), uint64(want))
			}
		}
		if inv := d.Invert(); inv.Turn != types.TurnDouble || inv.Perm != d.Perm || inv.Twist != d.Twist {
			t.Errorf("%s should be its own inverse, got %+v", d, inv)
		}
	}
}

func TestDouble_RejectsNonQuarter(t *testing.T) {
	g := Generators()[1]
	if _, err := g.Invert().Double(); !errors.Is(err, ErrNotQuarterTurn) {
		t.Errorf("Double(F') error = %v, want ErrNotQuarterTurn", err)
	}
	d, _ := g.Double()
	if _, err := d.Double(); !errors.Is(err, ErrNotQuarterTurn) {
		t.Errorf("Double(F2) error = %v, want ErrNotQuarterTurn", err)
	}
}

func TestFourQuarterTurns_ReturnToStart(t *testing.T) {
	var quarters []*Move
	for _, g := range Generators() {
		quarters = append(quarters, g, g.Invert())
	}
	for _, m := range quarters {
		for _, s := range sampleStates(t) {
			got := s.Apply(m).Apply(m).Apply(m).Apply(m)
			if got != s {
				t.Errorf("%s x 4 on %#x = %#x", m, uint64(s), uint64(got))
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	gens := Generators()
	u, r := gens[0], gens[2]
	seq := []*Move{r, u, r.Invert(), u.Invert()}
	s := Solved
	for i := 0; i < 6; i++ {
		s = s.ApplyMoves(seq)
	}
	if !s.IsSolved() {
		t.Errorf("sexy move x 6 should return to solved, got %#x", uint64(s))
	}
}

func TestReachableStates_Invariants(t *testing.T) {
	for _, s := range sampleStates(t) {
		var seen [NumCorners]bool
		twist := 0
		for _, slot := range s.Unpack() {
			if slot.Orientation() > 2 {
				t.Fatalf("state %#x has orientation %d", uint64(s), slot.Orientation())
			}
			seen[slot.Identity()] = true
			twist += int(slot.Orientation())
		}
		for id, ok := range seen {
			if !ok {
				t.Errorf("state %#x is missing cubie %d", uint64(s), id)
			}
		}
		if twist%3 != 0 {
			t.Errorf("state %#x has total twist %d", uint64(s), twist)
		}
		if s.Slot(7) != NewSlot(0, 7) {
			t.Errorf("state %#x moved the fixed corner", uint64(s))
		}
	}
}

func TestCompose(t *testing.T) {
	moves := allMoves(t)
	for _, a := range moves {
		for _, b := range moves {
			ab := Compose(a, b)
			for _, s := range sampleStates(t)[:10] {
				if got, want := s.Apply(ab), s.Apply(a).Apply(b); got != want {
					t.Errorf("Compose(%s, %s) on %#x = %#x, want %#x", a, b, uint64(s), uint64(got), uint64(want))
				}
			}
		}
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		text    string
		want    State
		wantErr bool
	}{
		{"506097522914230528", Solved, false},
		{"0x0706050403020100", Solved, false},
		{"  0X706050401030002 ", 0x0706050401030002, false},
		{"18446744073709551615", State(^uint64(0)), false},
		{"", 0, true},
		{"-1", 0, true},
		{"U R", 0, true},
		{"18446744073709551616", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseState(tt.text)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("ParseState(%q) error = %v, want ErrInvalidState", tt.text, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseState(%q): %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseState(%q) = %#x, want %#x", tt.text, uint64(got), uint64(tt.want))
		}
	}
}

func TestTracker_UndoAndReset(t *testing.T) {
	gens := Generators()
	tr := NewTracker(Solved)
	if !tr.IsSolved() {
		t.Error("new tracker should start solved")
	}

	tr.ApplyMoves([]*Move{gens[0], gens[1], gens[2]})
	if tr.IsSolved() {
		t.Error("tracker should not be solved after U F R")
	}
	if len(tr.History()) != 3 {
		t.Errorf("history length = %d, want 3", len(tr.History()))
	}

	for tr.Undo() {
	}
	if !tr.IsSolved() {
		t.Errorf("tracker should be solved after undoing everything, got %#x", uint64(tr.State()))
	}

	tr.ApplyMove(gens[2])
	tr.Reset()
	if !tr.IsSolved() || len(tr.History()) != 0 {
		t.Error("tracker should be solved with empty history after reset")
	}
}

func TestDescribe(t *testing.T) {
	got := Solved.Apply(Generators()[1]).Describe()
	want := "Corner 0: 17 (orient:2, cubie:1)\n"
	if len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("Describe() first line = %q, want %q", got, want)
	}
}
