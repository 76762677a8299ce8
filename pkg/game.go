package pkg

import (
	"log"
	"sync"

	"github.com/minhqn/chessvoice/pkg/chess"
	"github.com/minhqn/chessvoice/pkg/voice"
)

// Game owns the board, the side to move, the move history and the
// transient click selection for one match. Clicks, voice transcripts and
// network pumps can fire close together, so every mutation runs under
// the mutex; the board itself is replaced wholesale after each accepted
// move.
//
// Callbacks run on the mutating goroutine with the lock held and must
// not call back into the Game.
type Game struct {
	mu       sync.Mutex
	board    chess.Board
	turn     chess.Color
	history  []chess.MoveRecord
	started  bool
	selected *chess.Square
	targets  []chess.Square

	// OnMoveAccepted fires exactly once per executed move.
	OnMoveAccepted func(chess.MoveRecord)
	// OnSelectionChanged fires whenever the click selection changes;
	// origin is nil when the selection was cleared.
	OnSelectionChanged func(origin *chess.Square, targets []chess.Square)
}

// NewGame returns a game that has not started yet. Start deals the
// initial position.
func NewGame() *Game {
	g := &Game{}
	g.resetLocked()
	return g
}

// Start resets to the canonical initial position, white to move, and
// begins accepting input.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
	g.started = true
}

// Reset returns to the not-started state with a fresh initial board.
// Reset followed by Start always yields the canonical starting state,
// whatever happened before.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

func (g *Game) resetLocked() {
	g.board = chess.NewBoard()
	g.turn = chess.White
	g.history = nil
	g.started = false
	g.selected = nil
	g.targets = nil
}

// ClickSquare handles one pointer click on the board grid. First click
// on an own piece selects it and publishes its legal destinations; a
// click on a highlighted destination executes the move; clicking the
// selection again deselects. An illegal destination re-selects the
// clicked square when it holds another of the mover's pieces, otherwise
// the selection clears.
func (g *Game) ClickSquare(row, col int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.started {
		return
	}
	sq := chess.Square{Row: row, Col: col}
	if !sq.Valid() {
		log.Printf("click outside the board: %d,%d", row, col)
		return
	}

	if g.selected == nil {
		g.selectLocked(sq)
		return
	}
	from := *g.selected
	if sq == from {
		g.selected = nil
		g.targets = nil
		g.notifySelection()
		return
	}
	if chess.IsLegal(g.board, g.turn, from, sq) {
		g.executeLocked(from, sq)
		return
	}
	g.selectLocked(sq)
}

// VoiceTranscript handles one transcribed utterance. Unparseable or
// illegal commands are dropped without a trace in the history; the
// speaker repeats themselves, the game does not guess.
func (g *Game) VoiceTranscript(text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.started {
		return
	}
	from, to, ok := voice.Resolve(g.board, g.turn, text)
	if !ok || !chess.IsLegal(g.board, g.turn, from, to) {
		log.Printf("voice command dropped: %q", text)
		return
	}
	g.executeLocked(from, to)
}

// ApplyMove validates and executes a move given as square coordinates.
// The server uses it for moves arriving off the wire. It reports
// whether the move was accepted.
func (g *Game) ApplyMove(from, to chess.Square) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.started || !chess.IsLegal(g.board, g.turn, from, to) {
		return false
	}
	g.executeLocked(from, to)
	return true
}

func (g *Game) selectLocked(sq chess.Square) {
	if p, ok := g.board.PieceAt(sq); ok && p.Color == g.turn {
		sel := sq
		g.selected = &sel
		g.targets = chess.LegalDestinations(g.board, g.turn, sq)
	} else {
		g.selected = nil
		g.targets = nil
	}
	g.notifySelection()
}

func (g *Game) executeLocked(from, to chess.Square) {
	board, rec := chess.Execute(g.board, from, to)
	g.board = board
	g.turn = g.turn.Other()
	g.history = append(g.history, rec)
	g.selected = nil
	g.targets = nil
	g.notifySelection()
	if g.OnMoveAccepted != nil {
		g.OnMoveAccepted(rec)
	}
}

func (g *Game) notifySelection() {
	if g.OnSelectionChanged == nil {
		return
	}
	var origin *chess.Square
	if g.selected != nil {
		sel := *g.selected
		origin = &sel
	}
	g.OnSelectionChanged(origin, append([]chess.Square(nil), g.targets...))
}

// LoadFEN replaces the board and turn with a snapshot off the wire and
// marks the game started. The history stays as accumulated locally;
// snapshots carry position, not provenance.
func (g *Game) LoadFEN(fen string) error {
	board, turn, err := chess.DecodeFEN(fen)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.board = board
	g.turn = turn
	g.started = true
	g.selected = nil
	g.targets = nil
	return nil
}

// FEN snapshots the current board and side to move.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return chess.EncodeFEN(g.board, g.turn)
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

// Started reports whether the game accepts input.
func (g *Game) Started() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.started
}

// History returns a copy of the accepted move records, oldest first.
func (g *Game) History() []chess.MoveRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]chess.MoveRecord(nil), g.history...)
}

// Selection returns the current click selection, nil origin when none.
func (g *Game) Selection() (*chess.Square, []chess.Square) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var origin *chess.Square
	if g.selected != nil {
		sel := *g.selected
		origin = &sel
	}
	return origin, append([]chess.Square(nil), g.targets...)
}
