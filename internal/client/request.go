// Package client builds pipelined command requests and decodes their
// ordered responses. The transport that actually moves the bytes is the
// caller's concern; anything satisfying io.ReadWriter will do.
package client

import (
	"bytes"
	"errors"

	"github.com/eternalApril/respkit/internal/command"
)

// ErrNoComponents reports an AddCommandByComponents call without even a
// command name
var ErrNoComponents = errors.New("client: command needs at least one component")

// Request is an ordered pipeline of encoded command frames. Appending a
// command is the only mutation; the cached buffer is always the
// concatenation of the frames in order.
type Request struct {
	frames [][]byte
	buf    bytes.Buffer
}

// AddCommand tokenizes one command line and appends its frame
func (r *Request) AddCommand(text string) error {
	comps, err := command.Tokenize(text)
	if err != nil {
		return err
	}
	r.append(comps)
	return nil
}

// AddCommandf substitutes args into format printf-style, then tokenizes
// the result and appends its frame
func (r *Request) AddCommandf(format string, args ...any) error {
	comps, err := command.Tokenizef(format, args...)
	if err != nil {
		return err
	}
	r.append(comps)
	return nil
}

// AddCommandByComponents appends a frame built from exact argument
// boundaries. Components are taken literally: no quote interpretation,
// embedded whitespace preserved.
func (r *Request) AddCommandByComponents(components ...[]byte) error {
	if len(components) == 0 {
		return ErrNoComponents
	}
	r.append(components)
	return nil
}

func (r *Request) append(components [][]byte) {
	frame := command.EncodeFrame(components)
	r.frames = append(r.frames, frame)
	r.buf.Write(frame)
}

// Len returns the number of commands added so far
func (r *Request) Len() int {
	return len(r.frames)
}

// Frame returns the wire bytes of the i-th command
func (r *Request) Frame(i int) []byte {
	return r.frames[i]
}

// Bytes returns the concatenated wire bytes of all frames in order
func (r *Request) Bytes() []byte {
	return r.buf.Bytes()
}

// Clear resets the request to empty
func (r *Request) Clear() {
	r.frames = r.frames[:0]
	r.buf.Reset()
}
