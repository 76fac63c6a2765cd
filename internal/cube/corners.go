package cube

import (
	"fmt"
	"slices"
	"strings"
)

// Axis bits. The D, L and B faces each set one bit and their opposites set
// none, so the bits of a corner's three faces sum to its cubie identity.
const (
	bitL = 0b001
	bitB = 0b010
	bitD = 0b100
)

// FromCorners builds a state from the sticker colours in each corner slot.
//
// Each corner is three colour letters, e.g. "OGW", listed in the rotational
// order used by the orientation encoding. The last corner is the fixed
// back-down-left cubie and names the D, L and B colours in that order. The
// opposite of each of those is the one colour that never shares a corner
// with it. A corner's twist is the position of its up/down sticker.
func FromCorners(corners []string) (State, error) {
	if len(corners) != NumCorners {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrCornerCount, len(corners), NumCorners)
	}

	stickers := make([][]rune, NumCorners)
	var colours []rune
	for i, c := range corners {
		r := []rune(strings.ToUpper(c))
		if len(r) != 3 {
			return 0, fmt.Errorf("%w: corner %d is %q", ErrStickerCount, i, c)
		}
		stickers[i] = r
		for _, col := range r {
			if !slices.Contains(colours, col) {
				colours = append(colours, col)
			}
		}
	}
	if len(colours) != 6 {
		return 0, fmt.Errorf("%w: found %d", ErrColourCount, len(colours))
	}

	// Per colour: the identity bit it contributes and the axis it lies on.
	bit := make(map[rune]uint8, 6)
	axis := make(map[rune]uint8, 6)
	fixed := stickers[NumCorners-1]
	for k, b := range [3]uint8{bitD, bitL, bitB} {
		col := fixed[k]
		opp, err := oppositeColour(col, stickers, colours)
		if err != nil {
			return 0, err
		}
		bit[col], axis[col] = b, b
		axis[opp] = b
	}
	if len(axis) != 6 {
		return 0, fmt.Errorf("%w: faces %s do not pair up", ErrOppositeColour, string(fixed))
	}

	var slots [NumCorners]Slot
	var seen uint8
	for i, r := range stickers {
		var id, axes uint8
		orient := -1
		for k, col := range r {
			id += bit[col]
			axes |= axis[col]
			if axis[col] == bitD && orient < 0 {
				orient = k
			}
		}
		if axes != bitD|bitL|bitB || seen&(1<<id) != 0 {
			return 0, fmt.Errorf("%w: corner %d is %q", ErrCornerPositions, i, corners[i])
		}
		seen |= 1 << id
		slots[i] = NewSlot(uint8(orient), id)
	}

	return Pack(slots), nil
}

// oppositeColour returns the only colour that never shares a corner with col.
func oppositeColour(col rune, stickers [][]rune, colours []rune) (rune, error) {
	candidates := slices.Clone(colours)
	for _, r := range stickers {
		if !slices.Contains(r, col) {
			continue
		}
		candidates = slices.DeleteFunc(candidates, func(c rune) bool {
			return slices.Contains(r, c)
		})
	}
	if len(candidates) != 1 {
		return 0, fmt.Errorf("%w: %c has %d candidates %q", ErrOppositeColour, col, len(candidates), string(candidates))
	}
	return candidates[0], nil
}
