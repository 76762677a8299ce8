// Package gui holds the presentation helpers for the terminal board:
// themes and per-square styling. No rules logic lives here.
package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/minhqn/chessvoice/pkg/chess"
)

// SquareBg picks the background for a board square. Highlighted squares
// (the selection and its legal destinations) override the checker
// pattern.
func SquareBg(row, col int, highlighted bool, t Theme) tcell.Color {
	if highlighted {
		return t.SquareHigh
	}
	if (row+col)%2 == 0 {
		return t.SquareLight
	}
	return t.SquareDark
}

// PieceFg picks the foreground for a piece glyph.
func PieceFg(p chess.Piece, t Theme) tcell.Color {
	if p.Color == chess.White {
		return t.White
	}
	return t.Black
}
