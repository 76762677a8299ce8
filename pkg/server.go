package pkg

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
)

const (
	MessageQueueSize = 20
	ConnQueueSize    = 10
)

// Server routes TCP connections into matches and also exposes the
// client over SSH by spawning the client binary on a pty.
type Server struct {
	*ssh.Server
	Config  Config
	mu      sync.Mutex
	Matches map[string]*Match
}

func setWinsize(f *os.File, w, h int) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCSWINSZ),
		uintptr(unsafe.Pointer(&struct{ h, w, x, y uint16 }{uint16(h), uint16(w), 0, 0})))
}

func sshHandle(clientBin string) ssh.Handler {
	return func(s ssh.Session) {
		ptyReq, winCh, isPty := s.Pty()
		if !isPty {
			io.WriteString(s, "non-interactive terminals are not supported\n")
			s.Exit(1)
			return
		}

		cmd := exec.CommandContext(s.Context(), clientBin)
		cmd.Env = append(s.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

		f, err := pty.Start(cmd)
		if err != nil {
			io.WriteString(s, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
			s.Exit(1)
			return
		}
		defer f.Close()

		go func() {
			for win := range winCh {
				setWinsize(f, win.Width, win.Height)
			}
		}()

		go func() {
			io.Copy(f, s)
		}()
		io.Copy(s, f)

		f.Close()
		cmd.Wait()
	}
}

func NewServer(cfg Config) *Server {
	s := &ssh.Server{
		Addr:        cfg.SshPort,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     sshHandle(cfg.ClientBin),
	}
	if err := s.SetOption(ssh.HostKeyFile(cfg.HostKeyFile)); err != nil {
		log.Panic(err)
	}
	go func() {
		if err := s.ListenAndServe(); err != nil {
			log.Printf("ssh server stopped: %v", err)
		}
	}()

	return &Server{
		Server:  s,
		Config:  cfg,
		Matches: make(map[string]*Match),
	}
}

// HandleConn waits for the client hello and seats the connection in the
// requested match. Clients that never introduce themselves are dropped.
func (s *Server) HandleConn(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		conn.Close()
		return
	}
	var mt MessageTransport
	var join MessageJoin
	if !Decode(scanner.Bytes(), &mt) || mt.MsgType != TypeMessageJoin || !Decode(mt.Data, &join) {
		log.Printf("dropping connection without a join hello")
		conn.Close()
		return
	}
	s.AddConn(conn, join.Match)
}

// AddConn seats a connection in matchId, creating the match on first
// use. An empty id gets a fresh petname match of its own.
func (s *Server) AddConn(conn net.Conn, matchId string) {
	s.mu.Lock()
	if matchId == "" {
		matchId = petname.Generate(2, "-")
	}
	m, ok := s.Matches[matchId]
	if !ok {
		m = NewMatch(matchId)
		s.Matches[matchId] = m
		log.Printf("created match %s", matchId)
	}
	s.mu.Unlock()
	m.AddConn(conn)
}

// CleanIdleMatches sweeps once a minute and closes matches that have
// been empty and silent longer than the idle timeout.
func (s *Server) CleanIdleMatches() {
	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for range tick.C {
		s.mu.Lock()
		for id, m := range s.Matches {
			active, players := m.IdleSince()
			if players == 0 && time.Since(active) > s.Config.IdleTimeout {
				m.Close()
				delete(s.Matches, id)
				log.Printf("cleaned idle match %s", id)
			}
		}
		s.mu.Unlock()
	}
}
