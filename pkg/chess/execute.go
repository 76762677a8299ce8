package chess

import "time"

// MoveRecord is the immutable log entry for one executed move. From, To
// and Notation use algebraic square names, the one format that survives
// to history display and export.
type MoveRecord struct {
	From     string    `json:"from"`
	To       string    `json:"to"`
	Piece    Kind      `json:"piece"`
	Notation string    `json:"notation"`
	Time     time.Time `json:"time"`
}

// Execute relocates the piece on from to to and returns the resulting
// board plus the move record. Legality is a precondition: Execute checks
// nothing and must only be called with a pair that already passed
// IsLegal. The move is applied whole; there is no partial state.
func Execute(b Board, from, to Square) (Board, MoveRecord) {
	p, _ := b.PieceAt(from)
	b.place(from, Piece{})
	b.place(to, p)
	return b, MoveRecord{
		From:     from.Name(),
		To:       to.Name(),
		Piece:    p.Kind,
		Notation: from.Name() + to.Name(),
		Time:     time.Now(),
	}
}
