package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustSquare(t *testing.T, name string) Square {
	t.Helper()
	sq, err := FromAlgebraic(name)
	if err != nil {
		t.Fatalf("FromAlgebraic(%q): %v", name, err)
	}
	return sq
}

func boardFrom(t *testing.T, fen string) Board {
	t.Helper()
	b, _, err := DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN(%q): %v", fen, err)
	}
	return b
}

func legal(t *testing.T, b Board, turn Color, from, to string) bool {
	t.Helper()
	return IsLegal(b, turn, mustSquare(t, from), mustSquare(t, to))
}

func TestOpeningMoves(t *testing.T) {
	b := NewBoard()

	count := 0
	for fr := 0; fr < 8; fr++ {
		for fc := 0; fc < 8; fc++ {
			for tr := 0; tr < 8; tr++ {
				for tc := 0; tc < 8; tc++ {
					if IsLegal(b, White, Square{fr, fc}, Square{tr, tc}) {
						count++
					}
				}
			}
		}
	}
	// 16 pawn advances plus 4 knight hops.
	if count != 20 {
		t.Errorf("white has %d legal opening moves, want 20", count)
	}

	for _, mv := range [][2]string{
		{"e2", "e3"}, {"e2", "e4"}, {"a2", "a4"}, {"h2", "h3"},
		{"b1", "a3"}, {"b1", "c3"}, {"g1", "f3"}, {"g1", "h3"},
	} {
		if !legal(t, b, White, mv[0], mv[1]) {
			t.Errorf("opening move %s-%s should be legal", mv[0], mv[1])
		}
	}
}

func TestOpeningIllegalMoves(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		from, to string
		reason   string
	}{
		{"a1", "a3", "rook jumping its own pawn"},
		{"c1", "e3", "bishop jumping its own pawn"},
		{"d1", "d3", "queen jumping its own pawn"},
		{"e1", "e2", "king onto its own pawn"},
		{"e2", "d3", "pawn capture onto an empty square"},
		{"e2", "e5", "pawn triple advance"},
		{"e7", "e5", "moving the opponent's piece"},
		{"e3", "e4", "moving from an empty square"},
		{"e2", "e2", "null move"},
	}
	for _, tt := range tests {
		if legal(t, b, White, tt.from, tt.to) {
			t.Errorf("%s-%s should be illegal: %s", tt.from, tt.to, tt.reason)
		}
	}
}

func TestKnightDestinations(t *testing.T) {
	b := boardFrom(t, "8/8/8/8/3N4/8/8/8 w")
	got := LegalDestinations(b, White, mustSquare(t, "d4"))

	var want []Square
	for _, name := range []string{"c6", "e6", "b5", "f5", "b3", "f3", "c2", "e2"} {
		want = append(want, mustSquare(t, name))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("knight on d4 destinations mismatch (-want +got):\n%s", diff)
	}
}

func TestPawnDoubleAdvance(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		turn Color
		from string
		to   string
		want bool
	}{
		{"white from start rank", "8/8/8/8/8/8/4P3/8 w", White, "e2", "e4", true},
		{"black from start rank", "8/4p3/8/8/8/8/8/8 b", Black, "e7", "e5", true},
		{"not from start rank", "8/8/8/8/8/4P3/8/8 w", White, "e3", "e5", false},
		{"intermediate blocked", "8/8/8/8/8/4n3/4P3/8 w", White, "e2", "e4", false},
		{"destination blocked", "8/8/8/8/4n3/8/4P3/8 w", White, "e2", "e4", false},
		{"single with blocker", "8/8/8/8/8/4n3/4P3/8 w", White, "e2", "e3", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, tt.fen)
			if got := legal(t, b, tt.turn, tt.from, tt.to); got != tt.want {
				t.Errorf("%s-%s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPawnCaptures(t *testing.T) {
	b := boardFrom(t, "8/8/8/3p4/4P3/8/8/8 w")
	if !legal(t, b, White, "e4", "d5") {
		t.Error("pawn diagonal capture should be legal")
	}
	if legal(t, b, White, "e4", "f5") {
		t.Error("pawn diagonal onto empty square should be illegal")
	}
	if legal(t, b, White, "e4", "d4") {
		t.Error("pawn sideways should be illegal")
	}
	if legal(t, b, Black, "d5", "e4") == false {
		t.Error("black pawn capture toward higher rows should be legal")
	}
}

func TestSlidingPieces(t *testing.T) {
	// Rook d4, enemy knight d6, own pawn g4.
	b := boardFrom(t, "8/8/3n4/8/3R2P1/8/8/8 w")
	tests := []struct {
		from, to string
		want     bool
		reason   string
	}{
		{"d4", "d6", true, "rook capture along clear file"},
		{"d4", "d7", false, "rook through the enemy knight"},
		{"d4", "f4", true, "rook along clear rank"},
		{"d4", "g4", false, "rook onto own pawn"},
		{"d4", "h4", false, "rook through own pawn"},
		{"d4", "e5", false, "rook moving diagonally"},
		{"d4", "d1", true, "rook down a clear file"},
	}
	for _, tt := range tests {
		if got := legal(t, b, White, tt.from, tt.to); got != tt.want {
			t.Errorf("%s-%s = %v, want %v (%s)", tt.from, tt.to, got, tt.want, tt.reason)
		}
	}
}

func TestBishopAndQueen(t *testing.T) {
	// Bishop c1, own pawn e3; queen h1.
	b := boardFrom(t, "8/8/8/8/8/4P3/8/2B4Q w")
	if legal(t, b, White, "c1", "f4") {
		t.Error("bishop through own pawn should be illegal")
	}
	if !legal(t, b, White, "c1", "a3") {
		t.Error("bishop along clear diagonal should be legal")
	}
	if legal(t, b, White, "c1", "c3") {
		t.Error("bishop straight ahead should be illegal")
	}
	if !legal(t, b, White, "h1", "h8") {
		t.Error("queen along clear file should be legal")
	}
	if !legal(t, b, White, "h1", "d5") {
		t.Error("queen along clear diagonal should be legal")
	}
	if legal(t, b, White, "h1", "g3") {
		t.Error("queen knight-shaped move should be illegal")
	}
}

func TestKingMoves(t *testing.T) {
	b := boardFrom(t, "8/8/8/8/3K4/8/8/8 w")
	for _, to := range []string{"c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"} {
		if !legal(t, b, White, "d4", to) {
			t.Errorf("king d4-%s should be legal", to)
		}
	}
	if legal(t, b, White, "d4", "d6") {
		t.Error("king two squares should be illegal")
	}
	if legal(t, b, White, "d4", "f5") {
		t.Error("king knight-shaped move should be illegal")
	}
}

func TestOffBoardDestination(t *testing.T) {
	b := NewBoard()
	if IsLegal(b, White, Square{Row: 7, Col: 0}, Square{Row: 8, Col: 0}) {
		t.Error("destination off the board should be illegal")
	}
	if IsLegal(b, White, Square{Row: 7, Col: 0}, Square{Row: -1, Col: 0}) {
		t.Error("negative destination should be illegal")
	}
}
