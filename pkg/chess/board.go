// Package chess implements the board model, the move legality rules and
// the move executor for an 8x8 chess board. It validates piece movement
// geometry and path occupancy only: check safety, castling, en passant and
// promotion are handled nowhere in this package.
package chess

// Board maps each square to a piece or nothing. It is a value type;
// Execute returns a new Board rather than mutating in place, so the
// owning layer replaces its copy wholesale after each accepted move.
type Board struct {
	squares [8][8]Piece
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	for col := 0; col < 8; col++ {
		b.squares[0][col] = Piece{Kind: backRank[col], Color: Black}
		b.squares[1][col] = Piece{Kind: Pawn, Color: Black}
		b.squares[6][col] = Piece{Kind: Pawn, Color: White}
		b.squares[7][col] = Piece{Kind: backRank[col], Color: White}
	}
	return b
}

// PieceAt returns the piece on sq. The second return is false when the
// square is empty or off the board.
func (b Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.squares[sq.Row][sq.Col]
	return p, p.Kind != NoKind
}

func (b *Board) place(sq Square, p Piece) {
	b.squares[sq.Row][sq.Col] = p
}
