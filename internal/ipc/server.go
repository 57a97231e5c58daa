// Package ipc implements the Unix-socket line protocol the bar's CLI
// companion speaks to the running App shell (C6, §4.5), grounded on
// Jesssullivan-pp's daemon/ipc.go accept-loop/scanner pattern.
package ipc

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Handler dispatches one parsed command line to the bar's subsystems.
// Each method corresponds to a row of §4.5's command table; reply is the
// single line written back to the client (without its trailing newline).
type Handler interface {
	Redraw() string
	Reload() string
	Status() string
	ToggleBar() string
	Set(id, key, value string) string
	Get(id, property string) string
	List() string
	Trigger(id, action string) string
}

// Server listens on a Unix domain socket and dispatches each incoming
// line to Handler, writing back exactly one reply line per connection.
type Server struct {
	socketPath string
	handler    Handler

	listener net.Listener
	wg       sync.WaitGroup
	done     chan struct{}
}

// NewServer creates a Server that will listen on socketPath.
func NewServer(socketPath string, handler Handler) *Server {
	return &Server{socketPath: socketPath, handler: handler, done: make(chan struct{})}
}

// Start begins listening, removing any stale socket file left behind by
// a prior crashed instance.
func (s *Server) Start() error {
	os.Remove(s.socketPath)

	ln, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("ipc: listen on %s: %w", s.socketPath, err)
	}
	if err := os.Chmod(s.socketPath, 0o600); err != nil {
		ln.Close()
		return fmt.Errorf("ipc: chmod socket: %w", err)
	}
	s.listener = ln

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Stop closes the listener, waits for in-flight connections, and
// removes the socket file.
func (s *Server) Stop() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.done)
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
	os.Remove(s.socketPath)
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
				continue
			}
		}
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		return
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return
	}

	reply := Dispatch(s.handler, line)
	if _, err := fmt.Fprintf(conn, "%s\n", reply); err != nil {
		log.Warn().Err(err).Msg("ipc: write reply failed")
	}
}

// Dispatch parses and executes one command line against handler,
// implementing §4.5's command table including its "anything else" and
// malformed-argument fallbacks (taxonomy (c): "malformed command ->
// `unknown: ...` reply"). The first token is matched case-insensitively
// (§4.5: "case-insensitive first token"); arguments are passed through
// unmodified.
func Dispatch(handler Handler, line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "unknown: " + line
	}

	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "redraw":
		return handler.Redraw()
	case "reload":
		return handler.Reload()
	case "status":
		return handler.Status()
	case "toggle":
		return handler.ToggleBar()
	case "set":
		if len(args) < 2 {
			return "unknown: " + line
		}
		id := args[0]
		key, value, ok := splitKeyValue(args[1:])
		if !ok {
			return "unknown: " + line
		}
		return handler.Set(id, key, value)
	case "get":
		if len(args) < 1 {
			return "unknown: " + line
		}
		property := ""
		if len(args) >= 2 {
			property = args[1]
		}
		return handler.Get(args[0], property)
	case "list":
		return handler.List()
	case "trigger":
		if len(args) < 2 {
			return "unknown: " + line
		}
		return handler.Trigger(args[0], args[1])
	default:
		return "unknown: " + line
	}
}

// splitKeyValue accepts both `key=value` as one token and `key value` as
// two tokens (§4.5: "`set <id> <key>=<value>` or `set <id> <key>
// <value>`").
func splitKeyValue(rest []string) (key, value string, ok bool) {
	if len(rest) == 1 {
		k, v, found := strings.Cut(rest[0], "=")
		if !found {
			return "", "", false
		}
		return k, v, true
	}
	return rest[0], strings.Join(rest[1:], " "), true
}
