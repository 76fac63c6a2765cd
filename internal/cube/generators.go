package cube

import "github.com/SeamusWaldron/pocketcube/pkg/types"

// Corner slots are numbered by their coordinates: bit 2 set for D,
// bit 1 for B, bit 0 for L. Slot 7 (DBL) is never moved by U, F or R.
const (
	o1 = orientStep
	o2 = 2 * orientStep
)

// Generators returns fresh copies of the U, F and R clockwise quarter turns.
func Generators() [3]*Move {
	return [3]*Move{
		{
			Face: types.FaceU,
			Turn: types.TurnQuarter,
			// (0 1 3 2)
			Perm:  [NumCorners]uint8{2, 0, 3, 1, 4, 5, 6, 7},
			Twist: [NumCorners]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			Face: types.FaceF,
			Turn: types.TurnQuarter,
			// (0 4 5 1)
			Perm:  [NumCorners]uint8{1, 5, 2, 3, 0, 4, 6, 7},
			Twist: [NumCorners]uint8{o2, o1, 0, 0, o1, o2, 0, 0},
		},
		{
			Face: types.FaceR,
			Turn: types.TurnQuarter,
			// (0 2 6 4)
			Perm:  [NumCorners]uint8{4, 1, 0, 3, 6, 5, 2, 7},
			Twist: [NumCorners]uint8{o1, 0, o2, 0, o2, 0, o1, 0},
		},
	}
}
