// Package command turns human-written command text, or pre-split
// components, into RESP command frames (arrays of bulk strings).
package command

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedQuote reports a quoted run with no closing quote
	ErrUnterminatedQuote = errors.New("command: unterminated quote")

	// ErrEmptyCommand reports that no tokens were produced; every
	// command needs at least a name
	ErrEmptyCommand = errors.New("command: empty command")
)

// Tokenize splits one command line into its arguments using shell-like
// quoting with two deliberate quirks kept from the reference behavior:
//
//   - A quote always forces a token boundary, even with no whitespace
//     around it: `get 'ext'key` yields "get", "ext", "key" rather than
//     splicing "extkey".
//   - Inside a quoted run, a backslash escapes only the matching quote
//     character. Any other backslash pair is copied verbatim, so
//     `"foo \'bar"` keeps its backslash while `'foo \'bar'` does not.
//
// Unquoted whitespace separates tokens; consecutive whitespace collapses.
// A quoted run may be empty and still produces a token.
func Tokenize(text string) ([][]byte, error) {
	var (
		tokens  [][]byte
		cur     []byte
		started bool
		quote   byte
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			switch {
			case c == '\\' && i+1 < len(text) && text[i+1] == quote:
				cur = append(cur, quote)
				i++
			case c == quote:
				// Closing quote flushes immediately, even when
				// empty; whatever follows starts a fresh token.
				tokens = append(tokens, cur)
				cur = nil
				started = false
				quote = 0
			default:
				cur = append(cur, c)
			}
			continue
		}

		switch {
		case isSpace(c):
			if started {
				tokens = append(tokens, cur)
				cur = nil
				started = false
			}
		case c == '\'' || c == '"':
			if started && len(cur) > 0 {
				tokens = append(tokens, cur)
				cur = nil
			}
			quote = c
			started = true
		default:
			cur = append(cur, c)
			started = true
		}
	}

	if quote != 0 {
		return nil, ErrUnterminatedQuote
	}
	if started {
		tokens = append(tokens, cur)
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyCommand
	}

	return tokens, nil
}

// Tokenizef performs printf-style substitution into the command text
// before tokenizing it
func Tokenizef(format string, args ...any) ([][]byte, error) {
	return Tokenize(fmt.Sprintf(format, args...))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
