package pkg

import (
	"encoding/json"

	"github.com/minhqn/chessvoice/pkg/chess"
)

type MessageType int

const (
	TypeMessageTransport MessageType = iota
	TypeMessageJoin
	TypeMessageConnect
	TypeMessageGame
	TypeMessageMove
	TypeMessageAction
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageTransport:
		return "TypeMessageTransport"
	case TypeMessageJoin:
		return "TypeMessageJoin"
	case TypeMessageConnect:
		return "TypeMessageConnect"
	case TypeMessageGame:
		return "TypeMessageGame"
	case TypeMessageMove:
		return "TypeMessageMove"
	case TypeMessageAction:
		return "TypeMessageAction"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
	Encode() json.RawMessage
}

// MessageTransport is the envelope every message travels in, one JSON
// object per line. PlayerId is stamped by the receiving end of a player
// connection before forwarding to the match loop.
type MessageTransport struct {
	MsgType  MessageType
	Data     json.RawMessage
	PlayerId int
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

func (m MessageTransport) Encode() json.RawMessage {
	return Encode(m)
}

// MessageJoin is the client hello: the match it wants to join, empty
// for "seat me anywhere".
type MessageJoin struct {
	Match string
	Name  string
}

func (m MessageJoin) Type() MessageType {
	return TypeMessageJoin
}

func (m MessageJoin) Encode() json.RawMessage {
	return Encode(m)
}

// MessageConnect tells a freshly seated player who they are and what
// the board looks like.
type MessageConnect struct {
	Match  string
	Color  chess.Color
	Fen    string
	IsTurn bool
}

func (m MessageConnect) Type() MessageType {
	return TypeMessageConnect
}

func (m MessageConnect) Encode() json.RawMessage {
	return Encode(m)
}

// MessageGame broadcasts the authoritative position after every
// accepted move or new game.
type MessageGame struct {
	Fen        string
	IsTurn     bool
	Last       *chess.MoveRecord
	WhiteClock string
	BlackClock string
}

func (m MessageGame) Type() MessageType {
	return TypeMessageGame
}

func (m MessageGame) Encode() json.RawMessage {
	return Encode(m)
}

// MessageMove carries one candidate move as algebraic square names. The
// server re-validates it; clients never get to assert legality.
type MessageMove struct {
	From     string
	To       string
	Notation string
}

func (m MessageMove) Type() MessageType {
	return TypeMessageMove
}

func (m MessageMove) Encode() json.RawMessage {
	return Encode(m)
}

type MessageAction struct {
	Action Action
}

func (m MessageAction) Type() MessageType {
	return TypeMessageAction
}

func (m MessageAction) Encode() json.RawMessage {
	return Encode(m)
}
