package client

import (
	"errors"
	"fmt"
	"io"

	"github.com/eternalApril/respkit/internal/resp"
)

// ErrReplyCountMismatch reports a response stream that ended before one
// reply per command had arrived
var ErrReplyCountMismatch = errors.New("client: reply count mismatch")

// Response is the ordered sequence of replies to a pipelined request,
// one per command, in submission order. All reply storage is owned by
// the response's arena.
type Response struct {
	arena   resp.Arena
	replies []resp.Value
}

// Len returns the number of decoded replies
func (r *Response) Len() int {
	return len(r.replies)
}

// Reply returns the i-th reply
func (r *Response) Reply(i int) resp.Value {
	return r.replies[i]
}

// Clear drops all replies and reclaims the arena
func (r *Response) Clear() {
	r.replies = r.replies[:0]
	r.arena.Reset()
}

// DecodeFrom reads exactly want replies off the stream in order. A
// stream that ends early is a transport-level failure, never a shorter
// response pretending to be complete.
func (r *Response) DecodeFrom(rd io.Reader, want int) error {
	dec := resp.NewDecoder(rd)

	for i := 0; i < want; i++ {
		v, err := dec.Decode(&r.arena)
		if err != nil {
			if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("%w: got %d of %d replies",
					ErrReplyCountMismatch, len(r.replies), want)
			}
			return err
		}
		r.replies = append(r.replies, v)
	}

	return nil
}

// MergeFrom appends deep copies of other's replies after the receiver's
// own, preserving per-segment order. Copies live in the receiver's arena
// and share no storage with the source, so merged blocks stay valid
// independently of it. Merging a response into itself is allowed.
func (r *Response) MergeFrom(other *Response) {
	n := len(other.replies)
	for i := 0; i < n; i++ {
		r.replies = append(r.replies, resp.Clone(&r.arena, other.replies[i]))
	}
}
