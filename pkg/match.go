package pkg

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/minhqn/chessvoice/pkg/chess"
)

const (
	DefaultClockTime      = 10 * time.Minute
	DefaultClockIncrement = 5 * time.Second
)

// Match seats players around one authoritative Game. All game mutation
// for the match funnels through the run loop reading from In, so moves
// from both players serialize naturally.
type Match struct {
	Id      string
	Game    *Game
	In      chan MessageTransport
	mu      sync.Mutex
	players []*Player
	clocks  map[chess.Color]*Clock
	lastRec *chess.MoveRecord
	active  time.Time
}

func NewMatch(id string) *Match {
	m := &Match{
		Id:     id,
		Game:   NewGame(),
		In:     make(chan MessageTransport, MessageQueueSize),
		active: time.Now(),
		clocks: map[chess.Color]*Clock{
			chess.White: NewClock(DefaultClockTime, DefaultClockIncrement),
			chess.Black: NewClock(DefaultClockTime, DefaultClockIncrement),
		},
	}
	m.Game.OnMoveAccepted = func(rec chess.MoveRecord) {
		m.lastRec = &rec
	}
	m.Game.Start()
	go m.run()
	return m
}

// AddConn seats a new connection: first White, then Black, everyone
// after that watches.
func (m *Match) AddConn(conn net.Conn) {
	m.mu.Lock()
	p := NewPlayer(conn)
	switch len(m.players) {
	case 0:
		p.Color = chess.White
	case 1:
		p.Color = chess.Black
	default:
		p.Color = chess.NoColor
	}
	p.Id = len(m.players)
	m.players = append(m.players, p)
	m.active = time.Now()
	m.mu.Unlock()

	go p.HandleWrite()
	go func() {
		p.HandleRead(m.In)
		m.removePlayer(p)
	}()

	p.Out <- MessageConnect{
		Match:  m.Id,
		Color:  p.Color,
		Fen:    m.Game.FEN(),
		IsTurn: p.Color == m.Game.Turn(),
	}
	log.Printf("match %s: seated player %d as %s", m.Id, p.Id, p.Color)
}

func (m *Match) run() {
	for mt := range m.In {
		m.mu.Lock()
		m.active = time.Now()
		m.mu.Unlock()

		switch mt.MsgType {
		case TypeMessageMove:
			m.handleMove(mt)
		case TypeMessageAction:
			m.handleAction(mt)
		default:
			log.Printf("match %s: unexpected message %s", m.Id, mt.MsgType)
		}
	}
}

func (m *Match) handleMove(mt MessageTransport) {
	var msg MessageMove
	if !Decode(mt.Data, &msg) {
		return
	}
	from, errFrom := chess.FromAlgebraic(msg.From)
	to, errTo := chess.FromAlgebraic(msg.To)
	if errFrom != nil || errTo != nil {
		log.Printf("match %s: unparseable move %q-%q", m.Id, msg.From, msg.To)
		return
	}

	p := m.player(mt.PlayerId)
	mover := m.Game.Turn()
	if p == nil || p.Color != mover {
		return
	}
	if !m.Game.ApplyMove(from, to) {
		log.Printf("match %s: rejected move %s%s from player %d", m.Id, msg.From, msg.To, mt.PlayerId)
		return
	}
	m.clocks[mover].Pause()
	m.clocks[mover.Other()].Punch()
	m.broadcastGame()
}

func (m *Match) handleAction(mt MessageTransport) {
	var msg MessageAction
	if !Decode(mt.Data, &msg) {
		return
	}
	switch msg.Action {
	case ActionNewGame:
		m.Game.Reset()
		m.Game.Start()
		m.lastRec = nil
		for _, cl := range m.clocks {
			cl.Reset()
		}
		m.broadcastGame()
	}
}

func (m *Match) broadcastGame() {
	m.mu.Lock()
	defer m.mu.Unlock()
	fen := m.Game.FEN()
	turn := m.Game.Turn()
	for _, p := range m.players {
		p.Out <- MessageGame{
			Fen:        fen,
			IsTurn:     p.Color == turn,
			Last:       m.lastRec,
			WhiteClock: m.clocks[chess.White].String(),
			BlackClock: m.clocks[chess.Black].String(),
		}
	}
}

func (m *Match) player(id int) *Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func (m *Match) removePlayer(p *Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, q := range m.players {
		if q == p {
			m.players = append(m.players[:i], m.players[i+1:]...)
			break
		}
	}
	p.Disconnect()
	m.active = time.Now()
	log.Printf("match %s: player %d left", m.Id, p.Id)
}

// IdleSince reports the last time the match saw a message or a seating
// change, and how many players remain.
func (m *Match) IdleSince() (time.Time, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active, len(m.players)
}

// Close stops the clocks and drops every connection.
func (m *Match) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cl := range m.clocks {
		cl.Stop()
	}
	for _, p := range m.players {
		p.Disconnect()
	}
	m.players = nil
}
