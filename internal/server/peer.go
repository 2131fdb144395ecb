package server

import (
	"net"
	"sync"

	"github.com/eternalApril/respkit/internal/resp"
)

// connState tracks where a connection is in its lifecycle
type connState int

const (
	stateFresh connState = iota
	stateAuthenticating
	stateReady
	stateClosed
)

// Peer represents a connected client.
// It wraps a network connection and provides synchronized methods for
// reading and writing RESP-encoded data.
type Peer struct {
	conn   net.Conn
	reader *resp.Decoder
	writer *resp.Encoder
	mu     sync.Mutex
	state  connState
}

// NewPeer initializes a new client peer from a network connection
func NewPeer(conn net.Conn) *Peer {
	return &Peer{
		conn:   conn,
		reader: resp.NewDecoder(conn),
		writer: resp.NewEncoder(conn),
		state:  stateFresh,
	}
}

// Send encodes and buffers a RESP value for the client.
// This method is thread-safe and can be called from multiple goroutines
func (p *Peer) Send(v resp.Value) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writer.Write(v)
}

// ReadCommand reads and decodes the next RESP value from the client's
// input stream, allocating payloads from the arena
func (p *Peer) ReadCommand(arena *resp.Arena) (resp.Value, error) {
	return p.reader.Decode(arena)
}

// Close terminates the underlying network connection
func (p *Peer) Close() error {
	p.state = stateClosed
	return p.conn.Close()
}

// Flush sends all buffered data to the client
func (p *Peer) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writer.Flush()
}

// InputBuffered returns the number of bytes that can be read from the current buffer
func (p *Peer) InputBuffered() int {
	return p.reader.Buffered()
}
