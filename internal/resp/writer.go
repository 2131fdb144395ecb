package resp

import (
	"bufio"
	"io"
	"strconv"
)

// Encoder handles the serialization of RESP Value objects into an output stream
type Encoder struct {
	writer *bufio.Writer
}

// NewEncoder initializes an Encoder with a buffered writer
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		writer: bufio.NewWriter(w)}
}

// Write serializes a RESP Value into the underlying buffer. Call Flush to
// push buffered frames to the peer
func (e *Encoder) Write(v Value) error {
	var err error

	switch v.Type {
	case TypeInteger:
		err = e.writeHeader(':', v.Integer)

	case TypeSimpleString:
		err = e.writeRaw('+', v.String)

	case TypeError:
		err = e.writeRaw('-', v.String)

	case TypeBulkString:
		if v.IsNull {
			_, err = e.writer.WriteString("$-1\r\n")
		} else {
			if err = e.writeHeader('$', int64(len(v.String))); err == nil {
				if _, err = e.writer.Write(v.String); err == nil {
					_, err = e.writer.WriteString("\r\n")
				}
			}
		}

	case TypeArray:
		if v.IsNull {
			_, err = e.writer.WriteString("*-1\r\n")
		} else {
			if err = e.writeHeader('*', int64(len(v.Array))); err == nil {
				for _, el := range v.Array {
					if err = e.Write(el); err != nil {
						break
					}
				}
			}
		}
	}

	return err
}

// Flush sends all buffered frames to the underlying writer
func (e *Encoder) Flush() error {
	return e.writer.Flush()
}

// writeHeader writes the type prefix, numeric value, and CRLF
func (e *Encoder) writeHeader(prefix byte, n int64) error {
	if err := e.writer.WriteByte(prefix); err != nil {
		return err
	}
	e.appendInt(n)
	_, err := e.writer.WriteString("\r\n")
	return err
}

// writeRaw writes the type prefix, raw bytes, and CRLF (for SimpleString and Error)
func (e *Encoder) writeRaw(prefix byte, b []byte) error {
	if err := e.writer.WriteByte(prefix); err != nil {
		return err
	}
	if _, err := e.writer.Write(b); err != nil {
		return err
	}
	_, err := e.writer.WriteString("\r\n")
	return err
}

// appendInt converts an integer to a string and writes it to the buffer
func (e *Encoder) appendInt(n int64) {
	b := e.writer.AvailableBuffer()
	b = strconv.AppendInt(b, n, 10)
	e.writer.Write(b) //nolint:errcheck
}

// AppendValue serializes v and appends the wire bytes to dst
func AppendValue(dst []byte, v Value) []byte {
	switch v.Type {
	case TypeInteger:
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, v.Integer, 10)
		dst = append(dst, '\r', '\n')

	case TypeSimpleString:
		dst = append(dst, '+')
		dst = append(dst, v.String...)
		dst = append(dst, '\r', '\n')

	case TypeError:
		dst = append(dst, '-')
		dst = append(dst, v.String...)
		dst = append(dst, '\r', '\n')

	case TypeBulkString:
		if v.IsNull {
			dst = append(dst, "$-1\r\n"...)
			break
		}
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(v.String)), 10)
		dst = append(dst, '\r', '\n')
		dst = append(dst, v.String...)
		dst = append(dst, '\r', '\n')

	case TypeArray:
		if v.IsNull {
			dst = append(dst, "*-1\r\n"...)
			break
		}
		dst = append(dst, '*')
		dst = strconv.AppendInt(dst, int64(len(v.Array)), 10)
		dst = append(dst, '\r', '\n')
		for _, el := range v.Array {
			dst = AppendValue(dst, el)
		}
	}

	return dst
}

// Serialize returns the wire encoding of one value
func Serialize(v Value) []byte {
	return AppendValue(nil, v)
}
