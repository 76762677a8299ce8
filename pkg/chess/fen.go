package chess

import (
	"errors"
	"strings"
)

// The client and server exchange board snapshots as the first two FEN
// fields: piece placement and side to move. The move counters, castling
// and en passant fields carry rules this engine does not model, so they
// are neither written nor accepted.

var errBadFEN = errors.New("chess: malformed FEN")

// EncodeFEN renders the board and the side to move, e.g.
// "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w".
func EncodeFEN(b Board, turn Color) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < 8; col++ {
			p, ok := b.PieceAt(Square{Row: row, Col: col})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	if turn == Black {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	return sb.String()
}

// DecodeFEN parses what EncodeFEN writes. Extra FEN fields after the
// side to move are tolerated and ignored.
func DecodeFEN(s string) (Board, Color, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 2 {
		return Board{}, NoColor, errBadFEN
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return Board{}, NoColor, errBadFEN
	}

	var b Board
	for row, line := range rows {
		col := 0
		for i := 0; i < len(line); i++ {
			ch := line[i]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p, ok := pieceFromLetter(ch)
			if !ok || col > 7 {
				return Board{}, NoColor, errBadFEN
			}
			b.place(Square{Row: row, Col: col}, p)
			col++
		}
		if col != 8 {
			return Board{}, NoColor, errBadFEN
		}
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return Board{}, NoColor, errBadFEN
	}
	return b, turn, nil
}
