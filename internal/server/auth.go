package server

import (
	"strings"

	"github.com/eternalApril/respkit/internal/resp"
)

// PasswordAuthenticator gates a connection on an `auth <password>`
// command. Any other command first yields a NOAUTH error reply, a wrong
// password an invalid-password error reply; both keep the connection
// open and waiting, matching the classic requirepass convention.
type PasswordAuthenticator struct {
	password string
}

func NewPasswordAuthenticator(password string) *PasswordAuthenticator {
	return &PasswordAuthenticator{password: password}
}

func (p *PasswordAuthenticator) CheckAuth(first resp.Value, arena *resp.Arena) (resp.Value, AuthVerdict) {
	if first.Type != resp.TypeArray || first.IsNull || len(first.Array) == 0 {
		return resp.MakeError(arena, "command not valid array"), AuthReject
	}

	head := first.Array[0]
	if head.IsNull || (head.Type != resp.TypeBulkString && head.Type != resp.TypeSimpleString) {
		return resp.MakeError(arena, "command not string"), AuthReject
	}

	if strings.ToLower(string(head.String)) != "auth" {
		return resp.MakeError(arena, "NOAUTH Authentication required."), AuthReject
	}

	if len(first.Array) != 2 {
		return resp.MakeErrorWrongNumberOfArguments(arena, "auth"), AuthReject
	}

	if string(first.Array[1].String) != p.password {
		return resp.MakeError(arena, "ERR invalid password"), AuthReject
	}

	return resp.MakeSimpleString(arena, "OK"), AuthAccept
}
