package notation

import "github.com/SeamusWaldron/pocketcube/pkg/types"

// ToPersonalNotation converts a move to a spoken description.
// Reference frame: corner DBL fixed at the back bottom left, facing the cube.
//
// Mapping:
//
//	U -> "T rotate right"      U' -> "T rotate left"              U2 -> "T rotate x 2"
//	F -> "F rotate clockwise"  F' -> "F rotate anti-clockwise"    F2 -> "F rotate x 2"
//	R -> "R up"                R' -> "R down"                     R2 -> "R up x 2"
func ToPersonalNotation(m types.Move) string {
	switch m.Face {
	case types.FaceU:
		switch m.Turn {
		case types.TurnQuarter:
			return "T rotate right"
		case types.TurnInverse:
			return "T rotate left"
		case types.TurnDouble:
			return "T rotate x 2"
		}

	case types.FaceF:
		switch m.Turn {
		case types.TurnQuarter:
			return "F rotate clockwise"
		case types.TurnInverse:
			return "F rotate anti-clockwise"
		case types.TurnDouble:
			return "F rotate x 2"
		}

	case types.FaceR:
		switch m.Turn {
		case types.TurnQuarter:
			return "R up"
		case types.TurnInverse:
			return "R down"
		case types.TurnDouble:
			return "R up x 2"
		}
	}

	return m.Notation()
}

// FormatPersonal formats a move sequence in personal notation, one move per line.
func FormatPersonal(moves []types.Move) []string {
	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = ToPersonalNotation(m)
	}
	return lines
}
