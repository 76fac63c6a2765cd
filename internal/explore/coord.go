package explore

import (
	"math/bits"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
)

// twistStates is 3^6: the orientations of slots 0-5. Slot 6 follows from
// the total twist being a multiple of three, and slot 7 never moves.
const twistStates = 729

// coordinate maps a state to a dense index in [0, ReachableStates).
// The index combines the Lehmer code of the identities in slots 0-6 with
// the base-3 orientations of slots 0-5. States outside the group (corner 7
// displaced or twisted, repeated identities, bad orientation, or a twist
// sum that is not a multiple of three) report false.
func coordinate(s cube.State) (int, bool) {
	if uint8(s>>56) != cube.NumCorners-1 {
		return 0, false
	}

	var used uint8
	perm, twist, total := 0, 0, 0
	for i := 0; i < cube.NumCorners-1; i++ {
		b := uint8(s >> (8 * i))
		id, o := b&7, b>>3
		if o > 2 || id == 7 || used&(1<<id) != 0 {
			return 0, false
		}
		perm = perm*(cube.NumCorners-1-i) + bits.OnesCount8(^used&(1<<id-1))
		used |= 1 << id
		total += int(o)
		if i < cube.NumCorners-2 {
			twist = twist*3 + int(o)
		}
	}
	if total%3 != 0 {
		return 0, false
	}

	return perm*twistStates + twist, true
}

// stateAt is the inverse of coordinate.
func stateAt(idx int) cube.State {
	perm, twist := idx/twistStates, idx%twistStates

	var orient [cube.NumCorners - 1]uint8
	total := 0
	for i := cube.NumCorners - 3; i >= 0; i-- {
		orient[i] = uint8(twist % 3)
		twist /= 3
		total += int(orient[i])
	}
	orient[cube.NumCorners-2] = uint8((3 - total%3) % 3)

	var digits [cube.NumCorners - 1]int
	for i := cube.NumCorners - 2; i >= 0; i-- {
		radix := cube.NumCorners - 1 - i
		digits[i] = perm % radix
		perm /= radix
	}

	s := cube.State(cube.NumCorners-1) << 56
	var used uint8
	for i, d := range digits {
		id := nthUnused(used, d)
		used |= 1 << id
		s |= cube.State(orient[i]*8+id) << (8 * i)
	}
	return s
}

// nthUnused returns the n-th smallest identity not set in used.
func nthUnused(used uint8, n int) uint8 {
	for id := uint8(0); ; id++ {
		if used&(1<<id) != 0 {
			continue
		}
		if n == 0 {
			return id
		}
		n--
	}
}
