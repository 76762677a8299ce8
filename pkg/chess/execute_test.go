package chess

import "testing"

func TestExecuteRelocates(t *testing.T) {
	b := NewBoard()
	from := mustSquare(t, "e2")
	to := mustSquare(t, "e4")

	next, rec := Execute(b, from, to)

	if _, ok := next.PieceAt(from); ok {
		t.Error("origin square should be empty after the move")
	}
	p, ok := next.PieceAt(to)
	if !ok || p.Kind != Pawn || p.Color != White {
		t.Errorf("destination holds %v, want a white pawn", p)
	}
	if rec.From != "e2" || rec.To != "e4" || rec.Notation != "e2e4" || rec.Piece != Pawn {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Time.IsZero() {
		t.Error("record should carry a timestamp")
	}

	// The input board is untouched.
	if _, ok := b.PieceAt(from); !ok {
		t.Error("Execute mutated its input board")
	}
}

func TestExecuteCapture(t *testing.T) {
	b := boardFrom(t, "8/8/8/3p4/4P3/8/8/8 w")
	next, rec := Execute(b, mustSquare(t, "e4"), mustSquare(t, "d5"))

	p, ok := next.PieceAt(mustSquare(t, "d5"))
	if !ok || p.Color != White {
		t.Errorf("d5 holds %v, want the white pawn", p)
	}
	if _, ok := next.PieceAt(mustSquare(t, "e4")); ok {
		t.Error("e4 should be empty")
	}
	if rec.Notation != "e4d5" {
		t.Errorf("notation = %q, want e4d5", rec.Notation)
	}
}
