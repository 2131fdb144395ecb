package command_test

import (
	"errors"
	"testing"

	"github.com/eternalApril/respkit/internal/command"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Plain", "set a 123", []string{"set", "a", "123"}},
		{"Empty quoted arg", "set a ''", []string{"set", "a", ""}},
		{"Multiple empty args", "mset b '' c ''", []string{"mset", "b", "", "c", ""}},
		{"Leading whitespace collapse", "  get   key   value  ", []string{"get", "key", "value"}},
		{"Tabs as separators", "get\tkey\tvalue", []string{"get", "key", "value"}},

		// A quote always forces a token boundary, even with no
		// whitespace around it.
		{"Empty quote starts token", "get ''key value", []string{"get", "", "key", "value"}},
		{"Empty quote ends token", "get key'' value", []string{"get", "key", "", "value"}},
		{"Quote then tail", "get 'ext'key   value  ", []string{"get", "ext", "key", "value"}},
		{"Token then quote", "  get   key'ext'   value  ", []string{"get", "key", "ext", "value"}},

		// Escape matrix: backslash escapes only the matching quote.
		{"Single quoted space", "set a 'foo bar'", []string{"set", "a", "foo bar"}},
		{"Single escaped single", `set a 'foo \'bar'`, []string{"set", "a", "foo 'bar"}},
		{"Single with double inside", `set a 'foo "bar'`, []string{"set", "a", `foo "bar`}},
		{"Single escaped double kept", `set a 'foo \"bar'`, []string{"set", "a", `foo \"bar`}},
		{"Double with single inside", `set a "foo 'bar"`, []string{"set", "a", "foo 'bar"}},
		{"Double escaped single kept", `set a "foo \'bar"`, []string{"set", "a", `foo \'bar`}},
		{"Double escaped double", `set a "foo \"bar"`, []string{"set", "a", `foo "bar`}},

		{"Bare name", "ping", []string{"ping"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) unexpected error: %v", tt.input, err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %d tokens %q, want %d %q",
					tt.input, len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if string(got[i]) != tt.want[i] {
					t.Errorf("Tokenize(%q) token %d = %q, want %q",
						tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"Unterminated single quote", "set a 'foo", command.ErrUnterminatedQuote},
		{"Unterminated double quote", `get "key`, command.ErrUnterminatedQuote},
		{"Escaped closing quote", `set a 'foo\'`, command.ErrUnterminatedQuote},
		{"Empty input", "", command.ErrEmptyCommand},
		{"Only whitespace", "   \t ", command.ErrEmptyCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := command.Tokenize(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Tokenize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestTokenizef(t *testing.T) {
	got, err := command.Tokenizef("incrby %s %d", "counter", 10)
	if err != nil {
		t.Fatalf("Tokenizef() unexpected error: %v", err)
	}

	want := []string{"incrby", "counter", "10"}
	if len(got) != len(want) {
		t.Fatalf("Tokenizef() = %q, want %q", got, want)
	}
	for i := range got {
		if string(got[i]) != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAppendFrame(t *testing.T) {
	frame := command.EncodeFrame([][]byte{[]byte("set"), []byte("a"), []byte("")})

	want := "*3\r\n$3\r\nset\r\n$1\r\na\r\n$0\r\n\r\n"
	if string(frame) != want {
		t.Errorf("EncodeFrame() = %q, want %q", frame, want)
	}
}
