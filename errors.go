package pocketcube

import (
	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/notation"
	"github.com/SeamusWaldron/pocketcube/internal/route"
)

// Sentinel errors for the pocketcube package.
var (
	// Query errors
	ErrNoRoute = route.ErrNotFound

	// Parsing errors
	ErrStrayModifier = notation.ErrStrayModifier
	ErrInvalidFace   = notation.ErrInvalidFace
	ErrInvalidState  = cube.ErrInvalidState

	// Corner input errors
	ErrCornerCount     = cube.ErrCornerCount
	ErrStickerCount    = cube.ErrStickerCount
	ErrColourCount     = cube.ErrColourCount
	ErrOppositeColour  = cube.ErrOppositeColour
	ErrCornerPositions = cube.ErrCornerPositions
)

// ParseError describes a rejected move string. Use errors.As to inspect it.
type ParseError = notation.ParseError
