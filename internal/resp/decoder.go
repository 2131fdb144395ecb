package resp

import (
	"errors"
	"io"
)

const decoderBufSize = 4096

// Decoder reads RESP values off a byte stream. It accumulates raw bytes
// in an internal buffer and re-runs the incremental parser as the buffer
// grows, so frames split across reads (common on live connections) are
// handled transparently. Pipelined frames already buffered are served
// without touching the reader.
type Decoder struct {
	r     io.Reader
	buf   []byte
	start int
	end   int
}

// NewDecoder initializes a Decoder over the given stream
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, buf: make([]byte, decoderBufSize)}
}

// Decode reads the next complete value, copying payloads into the arena.
// io.EOF means a clean end of stream between frames; a stream cut inside
// a frame surfaces as io.ErrUnexpectedEOF.
func (d *Decoder) Decode(a *Arena) (Value, error) {
	for {
		if d.end > d.start {
			v, n, err := Parse(d.buf[d.start:d.end], a)
			if err == nil {
				d.start += n
				return v, nil
			}
			if !errors.Is(err, ErrIncomplete) {
				return Value{}, err
			}
		}

		if err := d.fill(); err != nil {
			if err == io.EOF && d.end > d.start {
				return Value{}, io.ErrUnexpectedEOF
			}
			return Value{}, err
		}
	}
}

// Buffered returns the number of raw bytes already read off the stream
// but not yet consumed by Decode
func (d *Decoder) Buffered() int {
	return d.end - d.start
}

func (d *Decoder) fill() error {
	if d.start > 0 {
		copy(d.buf, d.buf[d.start:d.end])
		d.end -= d.start
		d.start = 0
	}
	if d.end == len(d.buf) {
		grown := make([]byte, len(d.buf)*2)
		copy(grown, d.buf[:d.end])
		d.buf = grown
	}

	n, err := d.r.Read(d.buf[d.end:])
	d.end += n
	if n == 0 && err != nil {
		return err
	}
	return nil
}
