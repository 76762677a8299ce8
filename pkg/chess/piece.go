package chess

// Color is the side a piece belongs to.
type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

// Other returns the opposing side.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Kind is one of the six chess piece kinds. The zero value marks an
// empty square.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is an immutable kind/color value. Moving a piece relocates the
// value; pieces carry no identity of their own.
type Piece struct {
	Kind  Kind
	Color Color
}

// Letter returns the FEN letter for the piece, upper case for white.
func (p Piece) Letter() byte {
	var b byte
	switch p.Kind {
	case Pawn:
		b = 'p'
	case Rook:
		b = 'r'
	case Knight:
		b = 'n'
	case Bishop:
		b = 'b'
	case Queen:
		b = 'q'
	case King:
		b = 'k'
	default:
		return '?'
	}
	if p.Color == White {
		b -= 'a' - 'A'
	}
	return b
}

var (
	whiteFigurines = map[Kind]rune{
		Pawn: '♙', Rook: '♖', Knight: '♘',
		Bishop: '♗', Queen: '♕', King: '♔',
	}
	blackFigurines = map[Kind]rune{
		Pawn: '♟', Rook: '♜', Knight: '♞',
		Bishop: '♝', Queen: '♛', King: '♚',
	}
)

// Figurine returns the unicode glyph used by the terminal renderer.
func (p Piece) Figurine() rune {
	if p.Color == White {
		return whiteFigurines[p.Kind]
	}
	return blackFigurines[p.Kind]
}

func (p Piece) String() string {
	if p.Kind == NoKind {
		return "empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}

func pieceFromLetter(b byte) (Piece, bool) {
	color := Black
	if b >= 'A' && b <= 'Z' {
		color = White
		b += 'a' - 'A'
	}
	var kind Kind
	switch b {
	case 'p':
		kind = Pawn
	case 'r':
		kind = Rook
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	default:
		return Piece{}, false
	}
	return Piece{Kind: kind, Color: color}, true
}
