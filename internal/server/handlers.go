package server

import (
	"github.com/eternalApril/respkit/internal/resp"
)

func ping(ctx *Context) resp.Value {
	switch len(ctx.args) {
	case 0:
		return resp.MakeSimpleString(ctx.arena, "PONG")
	case 1:
		return resp.MakeBulkBytes(ctx.arena, ctx.args[0].String)
	}
	return resp.MakeErrorWrongNumberOfArguments(ctx.arena, "ping")
}

func get(ctx *Context) resp.Value {
	val, ok := ctx.store.Get(ctx.argString(0))
	if !ok {
		return resp.MakeNilBulkString()
	}
	return resp.MakeBulkString(ctx.arena, val)
}

func set(ctx *Context) resp.Value {
	ctx.store.Set(ctx.argString(0), ctx.argString(1))
	return resp.MakeSimpleString(ctx.arena, "OK")
}

func incr(ctx *Context) resp.Value {
	n, err := ctx.store.Incr(ctx.argString(0))
	if err != nil {
		return resp.MakeError(ctx.arena, "ERR value is not an integer or out of range")
	}
	return resp.MakeInteger(n)
}
