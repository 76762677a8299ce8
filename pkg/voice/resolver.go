// Package voice resolves free-form transcribed utterances into concrete
// chess moves. Transcription is noisy, so resolution is best effort:
// anything that does not parse into a legal move resolves to nothing,
// never an error.
package voice

import (
	"regexp"
	"strings"

	"github.com/minhqn/chessvoice/pkg/chess"
)

var (
	bareSquare = regexp.MustCompile(`^[a-h][1-8]$`)
	squareTok  = regexp.MustCompile(`\b[a-h][1-8]\b`)
)

var kindWords = map[string]chess.Kind{
	"pawn":   chess.Pawn,
	"rook":   chess.Rook,
	"knight": chess.Knight,
	"bishop": chess.Bishop,
	"queen":  chess.Queen,
	"king":   chess.King,
}

// Resolve turns an utterance into a (from, to) pair for the side to
// move. Rules are tried in order, first match wins:
//
//  1. a bare destination ("e4"): the first own piece in row major scan
//     order that can legally reach it;
//  2. two square tokens anywhere in the text ("e2 to e4", "d1 takes
//     h5"): taken as from and to in the order spoken;
//  3. a piece kind word plus one square token ("knight f3"): the first
//     own piece of that kind, row major, that can legally reach it;
//  4. anything else resolves to nothing.
//
// The scan order tie break is deliberate and observable: it is a
// deterministic policy, not a chess heuristic. Callers still validate
// the returned pair before executing it.
func Resolve(b chess.Board, turn chess.Color, text string) (from, to chess.Square, ok bool) {
	text = strings.ToLower(strings.TrimSpace(text))

	if bareSquare.MatchString(text) {
		target, err := chess.FromAlgebraic(text)
		if err != nil {
			return from, to, false
		}
		return firstMover(b, turn, chess.NoKind, target)
	}

	tokens := squareTok.FindAllString(text, 2)
	if len(tokens) == 2 {
		f, errF := chess.FromAlgebraic(tokens[0])
		t, errT := chess.FromAlgebraic(tokens[1])
		if errF != nil || errT != nil {
			return from, to, false
		}
		return f, t, true
	}

	if len(tokens) == 1 {
		if kind, named := spokenKind(text); named {
			target, err := chess.FromAlgebraic(tokens[0])
			if err != nil {
				return from, to, false
			}
			return firstMover(b, turn, kind, target)
		}
	}

	return from, to, false
}

// firstMover scans the board in row major order for a piece of the
// given color (and kind, unless NoKind) that can legally reach target.
func firstMover(b chess.Board, turn chess.Color, kind chess.Kind, target chess.Square) (chess.Square, chess.Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := chess.Square{Row: row, Col: col}
			p, occupied := b.PieceAt(sq)
			if !occupied || p.Color != turn {
				continue
			}
			if kind != chess.NoKind && p.Kind != kind {
				continue
			}
			if chess.IsLegal(b, turn, sq, target) {
				return sq, target, true
			}
		}
	}
	return chess.Square{}, chess.Square{}, false
}

func spokenKind(text string) (chess.Kind, bool) {
	for _, word := range strings.Fields(text) {
		if kind, ok := kindWords[word]; ok {
			return kind, true
		}
	}
	return chess.NoKind, false
}
