package chess

import "errors"

var (
	// ErrOutOfRange means a coordinate fell outside the 8x8 grid. It only
	// comes out of conversions fed by programming errors, never user input.
	ErrOutOfRange = errors.New("chess: square out of range")
	// ErrMalformedNotation means a string is not a two character
	// file/rank square name.
	ErrMalformedNotation = errors.New("chess: malformed square notation")
)

// Square is a board coordinate. Row 0 is black's back rank, Col 0 is the
// a file, so "a1" is {7, 0} and "h8" is {0, 7}.
type Square struct {
	Row int
	Col int
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row <= 7 && sq.Col >= 0 && sq.Col <= 7
}

// Name returns the algebraic name of the square, or "??" off the board.
func (sq Square) Name() string {
	name, err := ToAlgebraic(sq.Row, sq.Col)
	if err != nil {
		return "??"
	}
	return name
}

// ToAlgebraic converts grid coordinates to a two character algebraic
// square name such as "e4".
func ToAlgebraic(row, col int) (string, error) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return "", ErrOutOfRange
	}
	return string([]byte{byte('a' + col), byte('1' + (7 - row))}), nil
}

// FromAlgebraic parses a two character square name. It is the exact
// inverse of ToAlgebraic over all 64 squares.
func FromAlgebraic(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, ErrMalformedNotation
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, ErrMalformedNotation
	}
	return Square{Row: 7 - int(rank-'1'), Col: int(file - 'a')}, nil
}
