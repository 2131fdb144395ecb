package command

import "strconv"

// AppendFrame appends the wire frame for one command to dst. A command is
// always encoded as an array of bulk strings: the name plus its
// arguments, in order.
func AppendFrame(dst []byte, components [][]byte) []byte {
	dst = append(dst, '*')
	dst = strconv.AppendInt(dst, int64(len(components)), 10)
	dst = append(dst, '\r', '\n')

	for _, c := range components {
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(c)), 10)
		dst = append(dst, '\r', '\n')
		dst = append(dst, c...)
		dst = append(dst, '\r', '\n')
	}

	return dst
}

// EncodeFrame returns the wire frame for one command
func EncodeFrame(components [][]byte) []byte {
	return AppendFrame(nil, components)
}
