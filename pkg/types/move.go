// Package types contains shared type definitions for the pocketcube application.
package types

import "fmt"

// Face represents one of the three turnable faces of the pocket cube.
// The opposite faces (D, B, L) are never turned: corner 7 stays fixed,
// which removes whole-cube rotations from the state space.
type Face string

const (
	FaceU Face = "U" // Up
	FaceF Face = "F" // Front
	FaceR Face = "R" // Right
)

// Faces lists the turnable faces in generator order.
var Faces = []Face{FaceU, FaceF, FaceR}

// Valid reports whether f is one of the three turnable faces.
func (f Face) Valid() bool {
	switch f {
	case FaceU, FaceF, FaceR:
		return true
	}
	return false
}

// Turn is the number of clockwise quarter turns a move applies.
type Turn int

const (
	TurnQuarter Turn = 1 // Clockwise quarter turn
	TurnDouble  Turn = 2 // Half turn
	TurnInverse Turn = 3 // Counter-clockwise quarter turn
)

// Suffix returns the notation modifier for the turn.
func (t Turn) Suffix() string {
	switch t {
	case TurnInverse:
		return "'"
	case TurnDouble:
		return "2"
	}
	return ""
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	switch t {
	case TurnQuarter:
		return TurnInverse
	case TurnInverse:
		return TurnQuarter
	}
	return t
}

// Move identifies a move by face and turn.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return string(m.Face) + m.Turn.Suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Turn: m.Turn.Inverse()}
}

// Metric selects which moves count as a single step during exploration.
type Metric int

const (
	// QuarterTurn explores quarter turns and their inverses only.
	QuarterTurn Metric = iota
	// HalfTurn additionally counts double turns as one move.
	HalfTurn
)

func (m Metric) String() string {
	switch m {
	case QuarterTurn:
		return "quarter"
	case HalfTurn:
		return "half"
	default:
		return "unknown"
	}
}

// IncludesDouble reports whether double turns are explored as single moves.
func (m Metric) IncludesDouble() bool {
	return m == HalfTurn
}

// ParseMetric parses a metric name. Accepts "quarter"/"qtm" and "half"/"htm".
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "quarter", "qtm", "q":
		return QuarterTurn, nil
	case "half", "htm", "h":
		return HalfTurn, nil
	}
	return QuarterTurn, fmt.Errorf("unknown metric %q (use quarter or half)", s)
}
