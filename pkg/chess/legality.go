package chess

// IsLegal reports whether moving the piece on from to to is allowed for
// the side to move. It is a pure function of its inputs. The checks run
// in order and short circuit: destination on the board, from != to, an
// own piece on from, and no self capture, then the geometry rule for the
// piece kind.
func IsLegal(b Board, turn Color, from, to Square) bool {
	if !to.Valid() {
		return false
	}
	if from == to {
		return false
	}
	p, ok := b.PieceAt(from)
	if !ok {
		return false
	}
	if p.Color != turn {
		return false
	}
	if target, occupied := b.PieceAt(to); occupied && target.Color == p.Color {
		return false
	}

	dr := to.Row - from.Row
	dc := to.Col - from.Col
	switch p.Kind {
	case Pawn:
		return pawnLegal(b, p.Color, from, to)
	case Knight:
		return (abs(dr) == 1 && abs(dc) == 2) || (abs(dr) == 2 && abs(dc) == 1)
	case Bishop:
		return abs(dr) == abs(dc) && pathClear(b, from, to)
	case Rook:
		return (dr == 0 || dc == 0) && pathClear(b, from, to)
	case Queen:
		return (abs(dr) == abs(dc) || dr == 0 || dc == 0) && pathClear(b, from, to)
	case King:
		return abs(dr) <= 1 && abs(dc) <= 1
	}
	return false
}

// pawnLegal covers the three pawn shapes: single advance, double advance
// from the starting rank, and the one step diagonal capture. White
// marches toward row 0, black toward row 7.
func pawnLegal(b Board, c Color, from, to Square) bool {
	dir, start := -1, 6
	if c == Black {
		dir, start = 1, 1
	}
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	_, occupied := b.PieceAt(to)

	switch {
	case dc == 0 && dr == dir:
		return !occupied
	case dc == 0 && dr == 2*dir && from.Row == start:
		_, blocked := b.PieceAt(Square{Row: from.Row + dir, Col: from.Col})
		return !blocked && !occupied
	case abs(dc) == 1 && dr == dir:
		// Self capture was already rejected by the caller.
		return occupied
	}
	return false
}

// pathClear walks one square at a time along the unit direction from
// from to to and requires every square strictly between the endpoints to
// be empty. Callers guarantee the line is straight or diagonal.
func pathClear(b Board, from, to Square) bool {
	dr := sign(to.Row - from.Row)
	dc := sign(to.Col - from.Col)
	sq := Square{Row: from.Row + dr, Col: from.Col + dc}
	for sq != to {
		if _, occupied := b.PieceAt(sq); occupied {
			return false
		}
		sq = Square{Row: sq.Row + dr, Col: sq.Col + dc}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
