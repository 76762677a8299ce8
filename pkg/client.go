package pkg

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/minhqn/chessvoice/pkg/chess"
	"github.com/minhqn/chessvoice/pkg/gui"
)

const (
	numrows = 8
	numcols = 8
)

// Client is the terminal UI around a local Game. The local game mirrors
// the server's: clicks and voice transcripts run against it for instant
// feedback and highlights, accepted moves go to the server, and every
// server broadcast replaces the local position wholesale.
type Client struct {
	Game   *Game
	App    *tview.Application
	Board  *tview.Table
	Voice  *tview.InputField
	Moves  *tview.TextView
	Status *tview.TextView
	Layout *tview.Grid
	Conn   net.Conn
	Out    chan MessageInterface
	Color  chess.Color
	Theme  gui.Theme

	match      string
	highlights map[chess.Square]bool
	isTurn     bool
	moveNum    int
}

func NewClient(theme gui.Theme) *Client {
	cl := &Client{
		App:        tview.NewApplication(),
		Game:       NewGame(),
		Board:      tview.NewTable(),
		Out:        make(chan MessageInterface, ConnQueueSize),
		Theme:      theme,
		highlights: make(map[chess.Square]bool),
	}

	cl.Game.OnSelectionChanged = func(origin *chess.Square, targets []chess.Square) {
		cl.highlights = make(map[chess.Square]bool)
		if origin != nil {
			cl.highlights[*origin] = true
		}
		for _, sq := range targets {
			cl.highlights[sq] = true
		}
	}
	cl.Game.OnMoveAccepted = func(rec chess.MoveRecord) {
		cl.isTurn = false
		cl.Out <- MessageMove{From: rec.From, To: rec.To, Notation: rec.Notation}
	}

	cl.Voice = tview.NewInputField().SetLabel("❯ ").SetFieldWidth(0)
	cl.Voice.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		text := strings.ToLower(strings.TrimSpace(cl.Voice.GetText()))
		cl.Voice.SetText("")
		if text == "" || !cl.isTurn {
			return
		}
		cl.Game.VoiceTranscript(text)
		cl.RenderTable()
	})

	cl.Moves = tview.NewTextView()
	cl.Moves.SetBorder(true).SetTitle(" Moves ")
	cl.Status = tview.NewTextView()

	newGameBtn := tview.NewButton(string(ActionNewGamePrompt)).SetSelectedFunc(func() {
		cl.Out <- MessageAction{Action: ActionNewGame}
	})
	exitBtn := tview.NewButton(string(ActionExit)).SetSelectedFunc(func() {
		cl.Quit()
	})

	side := tview.NewGrid().
		SetColumns(11, 11).
		SetRows(3, -1, 2).
		AddItem(newGameBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(exitBtn, 0, 1, 1, 1, 0, 0, false).
		AddItem(cl.Moves, 1, 0, 1, 2, 0, 0, false).
		AddItem(cl.Status, 2, 0, 1, 2, 0, 0, false)

	cl.Layout = tview.NewGrid().
		SetRows(-1, 18, 3, -1).
		SetColumns(-1, 30, 24, -1).
		AddItem(cl.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(side, 1, 2, 1, 1, 0, 0, false).
		AddItem(cl.Voice, 2, 1, 1, 2, 0, 0, false)

	cl.initBoard()
	return cl
}

func (cl *Client) initBoard() {
	cl.RenderTable()
	cl.Board.SetSelectable(true, true)
	cl.Board.Select(0, 1).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			cl.Quit()
		}
	}).SetSelectedFunc(func(row, col int) {
		if !cl.isTurn {
			return
		}
		r, c, ok := cl.posToCoords(row, col)
		if !ok {
			return
		}
		cl.Game.ClickSquare(r, c)
		cl.RenderTable()
	})
}

// posToCoords maps a table cell to board coordinates. Column 0 holds
// the rank labels and the bottom row the file labels; black sees the
// board flipped so their own pieces start at the bottom.
func (cl *Client) posToCoords(row, col int) (int, int, bool) {
	if col == 0 || row == numrows {
		return 0, 0, false
	}
	if cl.Color == chess.Black {
		row = numrows - row - 1
	}
	return row, col - 1, true
}

// RenderTable redraws every cell of the board table from the local
// game state.
func (cl *Client) RenderTable() {
	board := cl.Game.Board()
	for r := 0; r <= numrows; r++ {
		for f := 0; f <= numcols; f++ {
			if f == 0 && r != numrows {
				boardRow, _, _ := cl.posToCoords(r, 1)
				cell := tview.NewTableCell(fmt.Sprintf("%d", 8-boardRow)).
					SetAlign(tview.AlignCenter).
					SetTextColor(cl.Theme.Label).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}
			if r == numrows && f > 0 {
				cell := tview.NewTableCell(fmt.Sprintf(" %c", 'a'+f-1)).
					SetAlign(tview.AlignCenter).
					SetTextColor(cl.Theme.Label).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}
			if r == numrows && f == 0 {
				continue
			}

			boardRow, boardCol, _ := cl.posToCoords(r, f)
			sq := chess.Square{Row: boardRow, Col: boardCol}
			bg := gui.SquareBg(boardRow, boardCol, cl.highlights[sq], cl.Theme)
			text := "  "
			fg := cl.Theme.Black
			if p, ok := board.PieceAt(sq); ok {
				text = fmt.Sprintf(" %c", p.Figurine())
				fg = gui.PieceFg(p, cl.Theme)
			}
			cell := tview.NewTableCell(text).
				SetAlign(tview.AlignCenter).
				SetTextColor(fg).
				SetBackgroundColor(bg)
			cl.Board.SetCell(r, f, cell)
		}
	}
	cl.Board.GetCell(numrows, 0).SetSelectable(false)
	go cl.App.Draw()
}

func (cl *Client) Connect(addr string) {
	log.Printf("Connecting to %s", addr)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		log.Panic(err)
	}
	cl.Conn = conn
}

// Join introduces the client to the server. An empty match name asks
// for a fresh match.
func (cl *Client) Join(match string) {
	cl.Out <- MessageJoin{Match: match}
}

func (cl *Client) HandleWrite() {
	for command := range cl.Out {
		commandTransport := MessageTransport{MsgType: command.Type(), Data: command.Encode()}
		b := Encode(commandTransport)
		b = append(b, '\n')
		if _, err := cl.Conn.Write(b); err != nil {
			log.Printf("Failed to write: %v", err)
			return
		}
		log.Printf("Sent a msg type: %s", command.Type())
	}
}

func (cl *Client) HandleRead() {
	scanner := bufio.NewScanner(cl.Conn)
	for scanner.Scan() {
		var messageTransport MessageTransport
		if !Decode(scanner.Bytes(), &messageTransport) {
			continue
		}
		switch messageTransport.MsgType {
		case TypeMessageConnect:
			var message MessageConnect
			if !Decode(messageTransport.Data, &message) {
				continue
			}
			cl.App.QueueUpdateDraw(func() {
				cl.Color = message.Color
				cl.match = message.Match
				cl.isTurn = message.IsTurn && message.Color != chess.NoColor
				if err := cl.Game.LoadFEN(message.Fen); err != nil {
					log.Printf("bad position from server: %v", err)
					return
				}
				cl.setStatus(fmt.Sprintf("match %s — playing %s", cl.match, cl.Color))
				cl.RenderTable()
			})

		case TypeMessageGame:
			var message MessageGame
			if !Decode(messageTransport.Data, &message) {
				continue
			}
			cl.App.QueueUpdateDraw(func() {
				cl.isTurn = message.IsTurn && cl.Color != chess.NoColor
				if err := cl.Game.LoadFEN(message.Fen); err != nil {
					log.Printf("bad position from server: %v", err)
					return
				}
				cl.highlights = make(map[chess.Square]bool)
				if message.Last != nil {
					cl.moveNum++
					fmt.Fprintf(cl.Moves, "%-3d %s\n", cl.moveNum, message.Last.Notation)
				} else {
					cl.Moves.SetText("")
					cl.moveNum = 0
				}
				cl.setStatus(fmt.Sprintf("match %s — ⌚ %s / %s", cl.match, message.WhiteClock, message.BlackClock))
				cl.RenderTable()
			})

		default:
			log.Printf("Received unknown message %s", messageTransport.MsgType)
		}
	}
}

func (cl *Client) setStatus(text string) {
	cl.Status.SetText(text)
}

func (cl *Client) Quit() {
	cl.App.Stop()
	cl.Disconnect()
}

func (cl *Client) Disconnect() {
	if cl.Conn != nil {
		cl.Conn.Close()
	}
}
