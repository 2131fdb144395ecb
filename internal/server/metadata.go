package server

// commandMetadata describes the call shape of a registered command
type commandMetadata struct {
	arity int // includes the command name itself; negative means minimum
}

func (m commandMetadata) arityOK(n int) bool {
	if m.arity >= 0 {
		return n == m.arity
	}
	return n >= -m.arity
}

var commandRegistry = map[string]commandMetadata{
	"ping": {-1},
	"get":  {2},
	"set":  {3},
	"incr": {2},
}
