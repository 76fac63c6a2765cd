// Package cube provides the pocket cube state encoding and move algebra.
//
// A state is eight corner slots. Each slot is one byte holding
// orientation*8 + cubie identity, and slot i lives in byte i of a uint64,
// so states compare and hash as plain integers.
package cube

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// NumCorners is the number of corner slots on the cube.
	NumCorners = 8

	orientStep = 8
	orientMod  = 3 * orientStep
)

// Slot is a single corner slot: orientation*8 + cubie identity.
type Slot uint8

// NewSlot builds a slot from an orientation (0-2) and a cubie identity (0-7).
func NewSlot(orientation, identity uint8) Slot {
	return Slot(orientation*orientStep + identity)
}

// Orientation returns the twist of the cubie in this slot.
func (s Slot) Orientation() uint8 {
	return uint8(s) / orientStep
}

// Identity returns which cubie occupies this slot.
func (s Slot) Identity() uint8 {
	return uint8(s) % orientStep
}

// State is a packed cube configuration.
type State uint64

// Solved is the configuration where slot i holds cubie i untwisted.
const Solved State = 0x0706050403020100

// Pack packs eight slots into a State. Slot i becomes byte i.
func Pack(slots [NumCorners]Slot) State {
	var s State
	for i := 0; i < NumCorners; i++ {
		s |= State(slots[i]) << (8 * i)
	}
	return s
}

// Unpack splits a State into its eight slots.
func (s State) Unpack() [NumCorners]Slot {
	var slots [NumCorners]Slot
	for i := 0; i < NumCorners; i++ {
		slots[i] = Slot(s >> (8 * i))
	}
	return slots
}

// Slot returns slot i of the state.
func (s State) Slot(i int) Slot {
	return Slot(s >> (8 * i))
}

// IsSolved returns true if the state is the solved configuration.
func (s State) IsSolved() bool {
	return s == Solved
}

// String returns the decimal value of the packed state.
func (s State) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Describe returns a per-corner listing of the state.
func (s State) Describe() string {
	var b strings.Builder
	for i, slot := range s.Unpack() {
		fmt.Fprintf(&b, "Corner %d: %d (orient:%d, cubie:%d)\n",
			i, uint8(slot), slot.Orientation(), slot.Identity())
	}
	return b.String()
}

// ParseState parses a packed state written in decimal or as 0x-prefixed hex.
// Any 64-bit value is accepted; whether it is reachable is not checked.
func ParseState(text string) (State, error) {
	text = strings.TrimSpace(text)
	base := 10
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		text = text[2:]
		base = 16
	}
	v, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidState, text)
	}
	return State(v), nil
}
