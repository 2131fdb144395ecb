package resp

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// Protocol limits, to refuse frames whose declared sizes could never be
// satisfied by a sane peer.
const (
	// MaxBulkLen limits the size of a single bulk string (512MB, the
	// classic redis proto-max-bulk-len).
	MaxBulkLen = 512 * 1024 * 1024

	// MaxArrayLen limits the number of elements in one array frame.
	MaxArrayLen = 1024 * 1024
)

var (
	// ErrIncomplete reports that the buffer does not yet hold a complete
	// frame. It is a control signal, not a failure: retry the parse once
	// more bytes have arrived.
	ErrIncomplete = errors.New("resp: incomplete frame")

	// ErrProtocol marks malformed wire data. The stream cannot be
	// trusted past this point and the connection should be torn down.
	ErrProtocol = errors.New("resp: protocol error")
)

// Parse reads one complete value from the head of buf, copying all
// payload storage into the arena. It returns the value and the number of
// bytes consumed. When buf holds only a partial frame it returns
// ErrIncomplete with zero bytes consumed, leaving the buffer untouched
// for the next attempt; the result must be identical no matter how the
// frame was split across attempts.
func Parse(buf []byte, a *Arena) (Value, int, error) {
	v, next, err := parseValue(buf, 0, a)
	if err != nil {
		return Value{}, 0, err
	}
	return v, next, nil
}

func parseValue(buf []byte, pos int, a *Arena) (Value, int, error) {
	line, next, err := readLine(buf, pos)
	if err != nil {
		return Value{}, 0, err
	}
	if len(line) == 0 {
		return Value{}, 0, fmt.Errorf("%w: empty header line", ErrProtocol)
	}

	switch line[0] {
	case TypeSimpleString, TypeError:
		return Value{Type: line[0], String: a.Copy(line[1:])}, next, nil

	case TypeInteger:
		n, err := parseHeaderInt(line)
		if err != nil {
			return Value{}, 0, err
		}
		return Value{Type: TypeInteger, Integer: n}, next, nil

	case TypeBulkString:
		n, err := parseHeaderInt(line)
		if err != nil {
			return Value{}, 0, err
		}
		if n == -1 {
			return MakeNilBulkString(), next, nil
		}
		if n < 0 || n > MaxBulkLen {
			return Value{}, 0, fmt.Errorf("%w: bad bulk length %d", ErrProtocol, n)
		}

		end := next + int(n)
		if len(buf) < end+2 {
			return Value{}, 0, ErrIncomplete
		}
		if buf[end] != '\r' || buf[end+1] != '\n' {
			return Value{}, 0, fmt.Errorf("%w: bulk payload not CRLF-terminated", ErrProtocol)
		}
		return Value{Type: TypeBulkString, String: a.Copy(buf[next:end])}, end + 2, nil

	case TypeArray:
		n, err := parseHeaderInt(line)
		if err != nil {
			return Value{}, 0, err
		}
		if n == -1 {
			return MakeNilArray(), next, nil
		}
		if n < 0 || n > MaxArrayLen {
			return Value{}, 0, fmt.Errorf("%w: bad array length %d", ErrProtocol, n)
		}

		val := Value{Type: TypeArray, Array: a.MakeValues(int(n))}
		for i := range val.Array {
			val.Array[i], next, err = parseValue(buf, next, a)
			if err != nil {
				return Value{}, 0, err
			}
		}
		return val, next, nil
	}

	return Value{}, 0, fmt.Errorf("%w: unknown type prefix %q", ErrProtocol, line[0])
}

// readLine returns one CRLF-terminated line starting at pos, without the
// terminator, and the offset just past it
func readLine(buf []byte, pos int) ([]byte, int, error) {
	i := bytes.IndexByte(buf[pos:], '\n')
	if i < 0 {
		return nil, 0, ErrIncomplete
	}

	end := pos + i
	if end == pos || buf[end-1] != '\r' {
		return nil, 0, fmt.Errorf("%w: header line not CRLF-terminated", ErrProtocol)
	}

	return buf[pos : end-1], end + 1, nil
}

// parseHeaderInt parses the numeric field of a header line such as "$5"
func parseHeaderInt(line []byte) (int64, error) {
	n, err := strconv.ParseInt(string(line[1:]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric field %q", ErrProtocol, line[1:])
	}
	return n, nil
}
