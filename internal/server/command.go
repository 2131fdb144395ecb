package server

import (
	"github.com/eternalApril/respkit/internal/resp"
	"github.com/eternalApril/respkit/internal/store"
)

// Context carries one command's arguments (the name stripped), the
// shared store, and the arena backing the reply
type Context struct {
	args  []resp.Value
	store store.Store
	arena *resp.Arena
}

func (c *Context) argString(i int) string {
	return string(c.args[i].String)
}

type Command interface {
	Execute(ctx *Context) resp.Value
}

type CommandFunc func(ctx *Context) resp.Value

func (c CommandFunc) Execute(ctx *Context) resp.Value {
	return c(ctx)
}
