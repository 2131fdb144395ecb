package client

import "io"

// Do performs one pipelined round trip: it writes every frame of the
// request to the transport, then decodes exactly one reply per command
// into the response. Replies arrive in command order; a short stream
// surfaces as ErrReplyCountMismatch.
func Do(rw io.ReadWriter, req *Request, res *Response) error {
	if _, err := rw.Write(req.Bytes()); err != nil {
		return err
	}
	return res.DecodeFrom(rw, req.Len())
}
