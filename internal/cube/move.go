package cube

import (
	"fmt"

	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// Move is a permutation of the corner slots followed by a per-slot twist.
// Slot i of the result takes the cubie from slot Perm[i] and adds Twist[i]
// to its orientation. Twists are stored pre-scaled by 8 (0, 8 or 16).
//
// Moves are built once by the catalog and never modified afterwards.
type Move struct {
	Face  types.Face
	Turn  types.Turn
	Perm  [NumCorners]uint8
	Twist [NumCorners]uint8
}

// Notation returns the standard notation for the move (U, F', R2).
func (m *Move) Notation() string {
	return m.ID().Notation()
}

// String returns the notation string (alias for Notation).
func (m *Move) String() string {
	return m.Notation()
}

// ID returns the face/turn identity of the move.
func (m *Move) ID() types.Move {
	return types.Move{Face: m.Face, Turn: m.Turn}
}

// Apply returns the state reached by applying m to s.
func (s State) Apply(m *Move) State {
	var out State
	for i := 0; i < NumCorners; i++ {
		b := uint8(s>>(8*m.Perm[i])) + m.Twist[i]
		if b >= orientMod {
			b -= orientMod
		}
		out |= State(b) << (8 * i)
	}
	return out
}

// Invert returns the move that undoes m.
func (m *Move) Invert() *Move {
	inv := &Move{Face: m.Face, Turn: m.Turn.Inverse()}
	for i := 0; i < NumCorners; i++ {
		j := m.Perm[i]
		inv.Perm[j] = uint8(i)
		inv.Twist[j] = (orientMod - m.Twist[i]) % orientMod
	}
	return inv
}

// Double returns m applied twice as a single half-turn move.
func (m *Move) Double() (*Move, error) {
	if m.Turn != types.TurnQuarter {
		return nil, fmt.Errorf("%w: %s", ErrNotQuarterTurn, m.Notation())
	}
	d := Compose(m, m)
	d.Face = m.Face
	d.Turn = types.TurnDouble
	return d, nil
}

// Compose returns a move equivalent to applying a and then b.
// The result carries a's face and turn.
func Compose(a, b *Move) *Move {
	c := &Move{Face: a.Face, Turn: a.Turn}
	for i := 0; i < NumCorners; i++ {
		c.Perm[i] = a.Perm[b.Perm[i]]
		c.Twist[i] = (a.Twist[b.Perm[i]] + b.Twist[i]) % orientMod
	}
	return c
}
