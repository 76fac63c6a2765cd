// Package notation parses and formats move sequences in standard cube notation.
package notation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

var (
	// ErrStrayModifier is reported for a ' or 2 that does not follow a face letter.
	ErrStrayModifier = errors.New("stray modifier")

	// ErrInvalidFace is reported for a character that is not U, F, R or a modifier.
	ErrInvalidFace = errors.New("invalid face letter")
)

// ParseError describes why a move string was rejected.
type ParseError struct {
	Kind   error  // ErrStrayModifier or ErrInvalidFace
	Char   rune   // Offending character
	Offset int    // Byte offset of Char in Input
	Input  string // Full text being parsed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation: %v %q at position %d", e.Kind, e.Char, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// Parse parses a sequence such as "U F' R2" into moves.
//
// A face letter starts a pending move. A modifier (' or 2) directly after
// it completes the move; any other character, whitespace or the end of the
// text completes it as a plain quarter turn. Whitespace is otherwise
// ignored, so "UF'" and "U  F'" are equivalent. Nothing is returned on error.
func Parse(text string) ([]types.Move, error) {
	moves := make([]types.Move, 0, len(text)/2)
	var pending types.Face

	commit := func(turn types.Turn) {
		moves = append(moves, types.Move{Face: pending, Turn: turn})
		pending = ""
	}

	for i, ch := range text {
		switch {
		case ch == '\'' || ch == '2':
			if pending == "" {
				return nil, &ParseError{Kind: ErrStrayModifier, Char: ch, Offset: i, Input: text}
			}
			if ch == '2' {
				commit(types.TurnDouble)
			} else {
				commit(types.TurnInverse)
			}

		case unicode.IsSpace(ch):
			if pending != "" {
				commit(types.TurnQuarter)
			}

		default:
			face := types.Face(string(ch))
			if !face.Valid() {
				return nil, &ParseError{Kind: ErrInvalidFace, Char: ch, Offset: i, Input: text}
			}
			if pending != "" {
				commit(types.TurnQuarter)
			}
			pending = face
		}
	}
	if pending != "" {
		commit(types.TurnQuarter)
	}

	return moves, nil
}

// Format formats moves as a space-separated notation string.
func Format(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Canonical reformats text with single spaces between moves.
func Canonical(text string) (string, error) {
	moves, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Format(moves), nil
}
