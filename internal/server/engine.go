package server

import (
	"strings"

	"go.uber.org/zap"

	"github.com/eternalApril/respkit/internal/resp"
	"github.com/eternalApril/respkit/internal/store"
)

// Engine is the registry-backed Handler: it validates the shape of each
// incoming command array, resolves the command by name, and executes it
// against the injected store. Every failure becomes an ordinary error
// reply so the pipeline keeps flowing; the engine never terminates a
// connection itself.
type Engine struct {
	commands map[string]Command // registry of available commands, keyed by lowercase name
	store    store.Store
	logger   *zap.Logger
}

// NewEngine initializes the engine over the given store and registers
// the basic command set
func NewEngine(s store.Store, logger *zap.Logger) *Engine {
	engine := &Engine{
		commands: make(map[string]Command),
		store:    s,
		logger:   logger,
	}
	engine.registerBasicCommands()

	return engine
}

// Register adds a command to the engine under a case-insensitive name
func (e *Engine) Register(name string, cmd Command) {
	e.commands[strings.ToLower(name)] = cmd
}

func (e *Engine) registerBasicCommands() {
	e.Register("ping", CommandFunc(ping))
	e.Register("get", CommandFunc(get))
	e.Register("set", CommandFunc(set))
	e.Register("incr", CommandFunc(incr))
}

// Handle implements Handler. An invalid command shape, an unknown name,
// or a bad arity all yield error replies without closing anything.
func (e *Engine) Handle(cmd resp.Value, arena *resp.Arena) resp.Value {
	if cmd.Type != resp.TypeArray || cmd.IsNull || len(cmd.Array) == 0 {
		return resp.MakeError(arena, "command not valid array")
	}

	head := cmd.Array[0]
	if head.IsNull || (head.Type != resp.TypeBulkString && head.Type != resp.TypeSimpleString) {
		return resp.MakeError(arena, "command not string")
	}

	name := strings.ToLower(string(head.String))

	c, ok := e.commands[name]
	if !ok {
		return resp.MakeErrorf(arena, "ERR unknown command `%s`", name)
	}

	if meta, ok := commandRegistry[name]; ok && !meta.arityOK(len(cmd.Array)) {
		return resp.MakeErrorWrongNumberOfArguments(arena, name)
	}

	if e.logger.Core().Enabled(zap.DebugLevel) {
		e.logger.Debug("executing command",
			zap.String("cmd", name),
			zap.Int("args_count", len(cmd.Array)-1),
		)
	}

	ctx := &Context{
		args:  cmd.Array[1:],
		store: e.store,
		arena: arena,
	}

	return c.Execute(ctx)
}
