package cube

import "errors"

var (
	// ErrNotQuarterTurn is returned when doubling a move that is not a quarter turn.
	ErrNotQuarterTurn = errors.New("cube: only quarter turns can be doubled")

	// ErrInvalidState is returned when state text is not a 64-bit integer.
	ErrInvalidState = errors.New("cube: invalid state")
)

// Errors returned by FromCorners.
var (
	ErrCornerCount     = errors.New("cube: wrong number of corners")
	ErrStickerCount    = errors.New("cube: corner must have three stickers")
	ErrColourCount     = errors.New("cube: must have exactly six colours")
	ErrOppositeColour  = errors.New("cube: cannot infer opposite colour")
	ErrCornerPositions = errors.New("cube: corners do not form a cube")
)
