package pocketcube

import (
	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/notation"
	"github.com/SeamusWaldron/pocketcube/internal/route"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

type (
	// Face is one of the turnable faces U, F and R.
	Face = types.Face
	// Turn is the number of clockwise quarter turns of a move (1, 2 or 3).
	Turn = types.Turn
	// Move identifies a move by face and turn.
	Move = types.Move
	// Metric selects the exploration move set.
	Metric = types.Metric
	// State is a packed cube configuration.
	State = cube.State
	// Route is a sequence of catalog moves.
	Route = route.Route
	// Answer is the result of a route query.
	Answer = route.Answer
)

const (
	FaceU = types.FaceU
	FaceF = types.FaceF
	FaceR = types.FaceR

	Quarter = types.TurnQuarter
	Double  = types.TurnDouble
	Inverse = types.TurnInverse

	QuarterTurn = types.QuarterTurn
	HalfTurn    = types.HalfTurn

	// Solved is the packed solved configuration.
	Solved = cube.Solved
)

// ParseState parses a packed state in decimal or 0x-prefixed hex.
func ParseState(text string) (State, error) {
	return cube.ParseState(text)
}

// StateFromCorners builds a state from the sticker colours of each corner
// slot, e.g. "OGW". The last corner is the fixed back-down-left cubie, read
// in D, L, B order.
func StateFromCorners(corners []string) (State, error) {
	return cube.FromCorners(corners)
}

// ParseMetric parses "quarter" or "half".
func ParseMetric(text string) (Metric, error) {
	return types.ParseMetric(text)
}

// ParseMoves parses a move sequence such as "U F' R2".
func ParseMoves(text string) ([]Move, error) {
	return notation.Parse(text)
}

// FormatMoves formats moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return notation.Format(moves)
}

// Format formats a route as a space-separated notation string.
func Format(r Route) string {
	return route.Format(r)
}
