package ipc

import (
	"bufio"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/barstatus/barstatus/internal/modules"
)

// HisohisoSink receives the dictation socket's two push commands (§6:
// `state`/`levels`).
type HisohisoSink interface {
	SetState(state modules.DictationState)
	SetLevels(levels []int)
}

// HisohisoServer is the second, separate Unix socket dedicated to the
// hisohiso dictation waveform. Unlike Server it carries only push
// commands from the dictation process; each line is answered with "OK\n"
// whatever its content.
type HisohisoServer struct {
	socketPath string
	sink       HisohisoSink

	listener net.Listener
	wg       sync.WaitGroup
	done     chan struct{}
}

// NewHisohisoServer creates a HisohisoServer bound to socketPath.
func NewHisohisoServer(socketPath string, sink HisohisoSink) *HisohisoServer {
	return &HisohisoServer{socketPath: socketPath, sink: sink, done: make(chan struct{})}
}

// Start begins listening for pushes.
func (s *HisohisoServer) Start() error {
	os.Remove(s.socketPath)
	ln, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return err
	}
	os.Chmod(s.socketPath, 0o600)
	s.listener = ln

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Stop closes the listener and removes the socket file.
func (s *HisohisoServer) Stop() {
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

func (s *HisohisoServer) acceptLoop() {
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

func (s *HisohisoServer) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		HandleHisohisoLine(s.sink, scanner.Text())
		conn.Write([]byte("OK\n"))
	}
}

var dictationStates = map[string]modules.DictationState{
	"idle":         modules.DictationIdle,
	"recording":    modules.DictationRecording,
	"transcribing": modules.DictationTranscribing,
	"error":        modules.DictationError,
}

// HandleHisohisoLine parses and applies one push line: `state
// idle|recording|transcribing|error` or `levels v0,v1,...` (comma
// separated 0..=100 ints). Malformed lines are logged and dropped; the
// server always replies "OK\n" regardless (§6).
func HandleHisohisoLine(sink HisohisoSink, line string) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "state":
		if len(fields) < 2 {
			log.Warn().Str("line", line).Msg("hisohiso: malformed state command")
			return
		}
		state, ok := dictationStates[fields[1]]
		if !ok {
			log.Warn().Str("line", line).Msg("hisohiso: unknown state value")
			return
		}
		sink.SetState(state)
	case "levels":
		if len(fields) < 2 {
			log.Warn().Str("line", line).Msg("hisohiso: malformed levels command")
			return
		}
		parts := strings.Split(fields[1], ",")
		levels := make([]int, 0, len(parts))
		for _, raw := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				log.Warn().Str("line", line).Msg("hisohiso: malformed levels command")
				return
			}
			levels = append(levels, v)
		}
		sink.SetLevels(levels)
	default:
		log.Warn().Str("line", line).Msg("hisohiso: unknown command")
	}
}
