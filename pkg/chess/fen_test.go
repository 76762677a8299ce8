package chess

import "testing"

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

func TestEncodeStartingPosition(t *testing.T) {
	if got := EncodeFEN(NewBoard(), White); got != startFEN {
		t.Errorf("EncodeFEN = %q, want %q", got, startFEN)
	}
}

func TestFENRoundTrip(t *testing.T) {
	b := NewBoard()
	b, _ = Execute(b, mustSquare(t, "e2"), mustSquare(t, "e4"))
	b, _ = Execute(b, mustSquare(t, "g8"), mustSquare(t, "f6"))

	fen := EncodeFEN(b, White)
	decoded, turn, err := DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN(%q): %v", fen, err)
	}
	if turn != White {
		t.Errorf("turn = %v, want white", turn)
	}
	if got := EncodeFEN(decoded, turn); got != fen {
		t.Errorf("re-encode = %q, want %q", got, fen)
	}
}

func TestDecodeFENTolerantOfExtraFields(t *testing.T) {
	_, turn, err := DecodeFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if err != nil {
		t.Fatalf("DecodeFEN: %v", err)
	}
	if turn != Black {
		t.Errorf("turn = %v, want black", turn)
	}
}

func TestDecodeFENMalformed(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x",
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/ppptpppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
	} {
		if _, _, err := DecodeFEN(fen); err == nil {
			t.Errorf("DecodeFEN(%q) should fail", fen)
		}
	}
}
