// Package ipctest provides an in-process fake compositor speaking the
// i3/sway IPC protocol, for tests.
package ipctest

import (
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/1broseidon/swaynav/internal/ipc"
)

// Server answers GET_TREE with a fixed tree, RUN_COMMAND with either
// configured results or one success per command, and GET_VERSION with a
// fixed version. Every RUN_COMMAND payload is recorded.
type Server struct {
	SocketPath string

	listener net.Listener

	mu       sync.Mutex
	tree     []byte
	results  []ipc.CommandResult
	version  ipc.VersionData
	commands []string
	conns    map[net.Conn]struct{}
	wg       sync.WaitGroup
}

// NewServer starts a fake compositor on a unix socket in a temporary dir and
// stops it when the test ends.
func NewServer(t testing.TB, treeJSON []byte) *Server {
	t.Helper()

	// Keep the path short: unix socket paths are limited to ~108 bytes.
	dir, err := os.MkdirTemp("", "swaynav")
	if err != nil {
		t.Fatalf("mkdir temp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "ipc.sock")
	l, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen %s: %v", path, err)
	}

	s := &Server{
		SocketPath: path,
		listener:   l,
		tree:       treeJSON,
		conns:      make(map[net.Conn]struct{}),
		version: ipc.VersionData{
			HumanReadable: "1.9",
			Variant:       "sway",
			Major:         1,
			Minor:         9,
		},
	}
	s.wg.Add(1)
	go s.acceptLoop()
	t.Cleanup(s.Close)
	return s
}

// SetResults fixes the RUN_COMMAND reply regardless of the submitted batch.
func (s *Server) SetResults(results []ipc.CommandResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = results
}

// SetTree replaces the GET_TREE reply.
func (s *Server) SetTree(treeJSON []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = treeJSON
}

// Commands returns every RUN_COMMAND payload received so far.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

// Close stops accepting connections, drops open ones and waits for their
// handlers to return.
func (s *Server) Close() {
	s.listener.Close()
	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()
		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
	}()

	for {
		typ, payload, err := ipc.ReadMessage(conn)
		if err != nil {
			return
		}
		reply, err := s.handle(typ, payload)
		if err != nil {
			return
		}
		if err := ipc.WriteMessage(conn, typ, reply); err != nil {
			return
		}
	}
}

func (s *Server) handle(typ ipc.MessageType, payload []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch typ {
	case ipc.MessageGetTree:
		return s.tree, nil
	case ipc.MessageGetVersion:
		return json.Marshal(s.version)
	case ipc.MessageRunCommand:
		batch := string(payload)
		s.commands = append(s.commands, batch)
		if s.results != nil {
			return json.Marshal(s.results)
		}
		return json.Marshal(successes(batch))
	default:
		return nil, errors.New("unsupported message type")
	}
}

func successes(batch string) []ipc.CommandResult {
	n := 1
	for _, r := range batch {
		if r == ';' {
			n++
		}
	}
	out := make([]ipc.CommandResult, n)
	for i := range out {
		out[i].Success = true
	}
	return out
}
