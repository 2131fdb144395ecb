package server

import "github.com/eternalApril/respkit/internal/resp"

// Handler turns one parsed command array into one reply value. Reply
// storage may be allocated from the arena, which stays valid until the
// reply has been written to the connection. Handlers are called strictly
// sequentially per connection but concurrently across connections, so
// any shared state they touch needs its own locking.
type Handler interface {
	Handle(cmd resp.Value, arena *resp.Arena) resp.Value
}

// HandlerFunc adapts a plain function to the Handler interface
type HandlerFunc func(cmd resp.Value, arena *resp.Arena) resp.Value

func (f HandlerFunc) Handle(cmd resp.Value, arena *resp.Arena) resp.Value {
	return f(cmd, arena)
}

// AuthVerdict is an authenticator's decision about one command
type AuthVerdict int

const (
	// AuthAccept sends the reply and moves the connection to Ready
	AuthAccept AuthVerdict = iota + 1
	// AuthReject sends the error reply; the connection stays open and
	// keeps authenticating
	AuthReject
	// AuthClose sends the reply, if any, and drops the connection
	AuthClose
)

// Authenticator is consulted on a connection's commands before any of
// them reach the handler. Whether a failed check keeps the connection
// open or drops it is the authenticator's policy, not the core's.
type Authenticator interface {
	CheckAuth(first resp.Value, arena *resp.Arena) (resp.Value, AuthVerdict)
}
