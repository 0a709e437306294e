package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

// ErrClosed is returned by player operations after Close.
var ErrClosed = errors.New("player: connection closed")

// mpvRequestTimeout bounds how long a property round-trip may take before
// the sampler gives up on this tick.
const mpvRequestTimeout = 2 * time.Second

// MPV drives an mpv process over its JSON IPC socket. mpv must be started
// with --input-ipc-server pointing at the same socket path.
type MPV struct {
	conn net.Conn

	mu      sync.Mutex
	nextID  int64
	pending map[int64]chan mpvResponse
	closed  bool

	readyOnce sync.Once
	ready     chan struct{}
}

type mpvResponse struct {
	Error     string          `json:"error"`
	Data      json.RawMessage `json:"data"`
	RequestID int64           `json:"request_id"`
	Event     string          `json:"event"`
}

type mpvCommand struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// DialMPV connects to mpv's IPC socket and starts the response reader.
func DialMPV(socketPath string) (*MPV, error) {
	conn, err := net.DialTimeout("unix", socketPath, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("dial mpv socket: %w", err)
	}
	m := &MPV{
		conn:    conn,
		pending: make(map[int64]chan mpvResponse),
		ready:   make(chan struct{}),
	}
	go m.readLoop()
	return m, nil
}

// readLoop dispatches responses to waiting requests and watches for the
// file-loaded event that signals readiness.
func (m *MPV) readLoop() {
	scanner := bufio.NewScanner(m.conn)
	for scanner.Scan() {
		var resp mpvResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			continue
		}
		if resp.Event == "file-loaded" || resp.Event == "playback-restart" {
			m.readyOnce.Do(func() { close(m.ready) })
			continue
		}
		if resp.Event != "" {
			continue
		}
		m.mu.Lock()
		ch, ok := m.pending[resp.RequestID]
		delete(m.pending, resp.RequestID)
		m.mu.Unlock()
		if ok {
			ch <- resp
		}
	}
	// Socket gone: fail all waiters.
	m.mu.Lock()
	m.closed = true
	for id, ch := range m.pending {
		close(ch)
		delete(m.pending, id)
	}
	m.mu.Unlock()
}

// roundTrip sends one command and waits for its matched response.
func (m *MPV) roundTrip(cmd ...any) (json.RawMessage, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}
	m.nextID++
	id := m.nextID
	ch := make(chan mpvResponse, 1)
	m.pending[id] = ch
	m.mu.Unlock()

	payload, err := json.Marshal(mpvCommand{Command: cmd, RequestID: id})
	if err != nil {
		return nil, err
	}
	if _, err := m.conn.Write(append(payload, '\n')); err != nil {
		m.mu.Lock()
		delete(m.pending, id)
		m.mu.Unlock()
		return nil, fmt.Errorf("write mpv command: %w", err)
	}

	select {
	case resp, ok := <-ch:
		if !ok {
			return nil, ErrClosed
		}
		if resp.Error != "" && resp.Error != "success" {
			return nil, fmt.Errorf("mpv: %s", resp.Error)
		}
		return resp.Data, nil
	case <-time.After(mpvRequestTimeout):
		m.mu.Lock()
		delete(m.pending, id)
		m.mu.Unlock()
		return nil, fmt.Errorf("mpv: request timed out")
	}
}

func (m *MPV) getFloat(property string) (float64, error) {
	data, err := m.roundTrip("get_property", property)
	if err != nil {
		return 0, err
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("parse %s: %w", property, err)
	}
	return v, nil
}

func (m *MPV) CurrentTime() (float64, error) {
	return m.getFloat("time-pos")
}

func (m *MPV) Duration() (float64, error) {
	d, err := m.getFloat("duration")
	if err != nil {
		// mpv reports "property unavailable" until the file is probed.
		return 0, nil
	}
	return d, nil
}

func (m *MPV) Pause() error {
	_, err := m.roundTrip("set_property", "pause", true)
	return err
}

func (m *MPV) Play() error {
	_, err := m.roundTrip("set_property", "pause", false)
	return err
}

func (m *MPV) SeekTo(seconds float64) error {
	_, err := m.roundTrip("seek", seconds, "absolute")
	return err
}

func (m *MPV) Ready() <-chan struct{} {
	return m.ready
}

func (m *MPV) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return m.conn.Close()
}
