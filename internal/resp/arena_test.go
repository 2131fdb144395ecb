package resp_test

import (
	"testing"

	"github.com/eternalApril/respkit/internal/resp"
)

func TestArenaCopyIsolation(t *testing.T) {
	var arena resp.Arena

	src := []byte("payload")
	dup := arena.Copy(src)

	src[0] = 'X'

	if string(dup) != "payload" {
		t.Errorf("arena copy aliases caller storage: %q", dup)
	}
}

// Rebuilding in a reused arena must never expose bytes from the previous
// cycle through the new tree.
func TestArenaResetReuse(t *testing.T) {
	var arena resp.Arena

	first, _, err := resp.Parse([]byte("*2\r\n$11\r\nfirst-value\r\n:1\r\n"), &arena)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	if string(first.Array[0].String) != "first-value" {
		t.Fatalf("first tree wrong: %q", first.Array[0].String)
	}

	arena.Reset()

	second, _, err := resp.Parse([]byte("*2\r\n$3\r\nnew\r\n:2\r\n"), &arena)
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}

	if string(second.Array[0].String) != "new" {
		t.Errorf("stale bytes visible through rebuilt tree: %q", second.Array[0].String)
	}
	if second.Array[1].Integer != 2 {
		t.Errorf("stale element visible through rebuilt tree: %+v", second.Array[1])
	}
	if len(second.Array) != 2 {
		t.Errorf("rebuilt array has %d elements, want 2", len(second.Array))
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	var src, dst resp.Arena

	orig, _, err := resp.Parse([]byte("*2\r\n$5\r\nhello\r\n*1\r\n$5\r\nworld\r\n"), &src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	clone := resp.Clone(&dst, orig)
	if !resp.Equal(clone, orig) {
		t.Fatal("clone is not structurally equal to the original")
	}

	// Wreck the source storage; the clone must not notice.
	orig.Array[0].String[0] = 'X'
	orig.Array[1].Array[0].String[0] = 'X'
	src.Reset()

	if string(clone.Array[0].String) != "hello" {
		t.Errorf("clone aliases source bytes: %q", clone.Array[0].String)
	}
	if string(clone.Array[1].Array[0].String) != "world" {
		t.Errorf("nested clone aliases source bytes: %q", clone.Array[1].Array[0].String)
	}
}

func TestEqual(t *testing.T) {
	var a, b resp.Arena

	tests := []struct {
		name string
		x, y resp.Value
		want bool
	}{
		{
			name: "Same bytes different arenas",
			x:    resp.MakeBulkString(&a, "hello"),
			y:    resp.MakeBulkString(&b, "hello"),
			want: true,
		},
		{
			name: "Different payloads",
			x:    resp.MakeBulkString(&a, "hello"),
			y:    resp.MakeBulkString(&b, "world"),
			want: false,
		},
		{
			name: "Status vs bulk with same text",
			x:    resp.MakeSimpleString(&a, "OK"),
			y:    resp.MakeBulkString(&b, "OK"),
			want: false,
		},
		{
			name: "Nil string vs empty string",
			x:    resp.MakeNilBulkString(),
			y:    resp.MakeBulkString(&b, ""),
			want: false,
		},
		{
			name: "Nil array vs empty array",
			x:    resp.MakeNilArray(),
			y:    resp.MakeArrayOf([]resp.Value{}),
			want: false,
		},
		{
			name: "Integers",
			x:    resp.MakeInteger(42),
			y:    resp.MakeInteger(42),
			want: true,
		},
		{
			name: "Array length mismatch",
			x:    resp.MakeArrayOf([]resp.Value{resp.MakeInteger(1)}),
			y:    resp.MakeArrayOf([]resp.Value{resp.MakeInteger(1), resp.MakeInteger(2)}),
			want: false,
		},
		{
			name: "Nested equal",
			x:    resp.MakeArrayOf([]resp.Value{resp.MakeArrayOf([]resp.Value{resp.MakeInteger(7)})}),
			y:    resp.MakeArrayOf([]resp.Value{resp.MakeArrayOf([]resp.Value{resp.MakeInteger(7)})}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resp.Equal(tt.x, tt.y); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMakeArrayFillInPlace(t *testing.T) {
	var arena resp.Arena

	v := resp.MakeArray(&arena, 2)
	v.Array[0] = resp.MakeBulkString(&arena, "a")
	v.Array[1] = resp.MakeInteger(9)

	if string(resp.Serialize(v)) != "*2\r\n$1\r\na\r\n:9\r\n" {
		t.Errorf("unexpected encoding: %q", resp.Serialize(v))
	}
}
