package pkg

import (
	"bufio"
	"log"
	"net"

	"github.com/minhqn/chessvoice/pkg/chess"
)

// Player is one connection seated at a match. The first two get White
// and Black; later arrivals watch with NoColor.
type Player struct {
	Conn  net.Conn
	Color chess.Color
	Out   chan MessageInterface
	Id    int
	Name  string
}

func NewPlayer(conn net.Conn) *Player {
	return &Player{
		Conn: conn,
		Out:  make(chan MessageInterface, ConnQueueSize),
	}
}

// HandleRead forwards incoming transports to the match loop, stamped
// with the player id, until the connection closes.
func (p *Player) HandleRead(In chan MessageTransport) {
	scanner := bufio.NewScanner(p.Conn)
	for scanner.Scan() {
		var messageTransport MessageTransport
		if !Decode(scanner.Bytes(), &messageTransport) {
			continue
		}
		messageTransport.PlayerId = p.Id
		In <- messageTransport
	}
}

func (p *Player) HandleWrite() {
	for message := range p.Out {
		messageData := message.Encode()
		messageTransport := MessageTransport{MsgType: message.Type(), Data: messageData}
		b := Encode(messageTransport)
		b = append(b, '\n')
		if _, err := p.Conn.Write(b); err != nil {
			log.Printf("Failed to write: %v Error: %v", message, err)
		}
	}
}

func (p *Player) Disconnect() {
	p.Conn.Close()
}
