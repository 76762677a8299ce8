package chess

import (
	"errors"
	"testing"
)

func TestAlgebraicRoundTrip(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			name, err := ToAlgebraic(row, col)
			if err != nil {
				t.Fatalf("ToAlgebraic(%d, %d): %v", row, col, err)
			}
			sq, err := FromAlgebraic(name)
			if err != nil {
				t.Fatalf("FromAlgebraic(%q): %v", name, err)
			}
			if sq.Row != row || sq.Col != col {
				t.Errorf("round trip of (%d, %d) via %q gave (%d, %d)", row, col, name, sq.Row, sq.Col)
			}
		}
	}
}

func TestAlgebraicCorners(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{7, 0, "a1"},
		{0, 0, "a8"},
		{7, 7, "h1"},
		{0, 7, "h8"},
		{4, 4, "e4"},
	}
	for _, tt := range tests {
		got, err := ToAlgebraic(tt.row, tt.col)
		if err != nil {
			t.Fatalf("ToAlgebraic(%d, %d): %v", tt.row, tt.col, err)
		}
		if got != tt.want {
			t.Errorf("ToAlgebraic(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestToAlgebraicOutOfRange(t *testing.T) {
	tests := [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}}
	for _, tt := range tests {
		if _, err := ToAlgebraic(tt[0], tt[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ToAlgebraic(%d, %d) err = %v, want ErrOutOfRange", tt[0], tt[1], err)
		}
	}
}

func TestFromAlgebraicMalformed(t *testing.T) {
	for _, name := range []string{"", "e", "e44", "i4", "a0", "a9", "4e", "??", "E4"} {
		if _, err := FromAlgebraic(name); !errors.Is(err, ErrMalformedNotation) {
			t.Errorf("FromAlgebraic(%q) err = %v, want ErrMalformedNotation", name, err)
		}
	}
}

func TestSquareName(t *testing.T) {
	if got := (Square{Row: 6, Col: 4}).Name(); got != "e2" {
		t.Errorf("Name() = %q, want e2", got)
	}
	if got := (Square{Row: -1, Col: 4}).Name(); got != "??" {
		t.Errorf("Name() off board = %q, want ??", got)
	}
}
