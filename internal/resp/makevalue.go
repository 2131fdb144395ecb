package resp

import "fmt"

// MakeSimpleString construct SimpleString Value, payload copied into arena
func MakeSimpleString(a *Arena, s string) Value {
	return Value{
		Type:   TypeSimpleString,
		String: a.CopyString(s),
	}
}

// MakeError construct Error Value, payload copied into arena
func MakeError(a *Arena, s string) Value {
	return Value{
		Type:   TypeError,
		String: a.CopyString(s),
	}
}

// MakeErrorf construct Error Value from a format string
func MakeErrorf(a *Arena, format string, args ...any) Value {
	return MakeError(a, fmt.Sprintf(format, args...))
}

// MakeErrorWrongNumberOfArguments construct Error Value that command had wrong number of arguments
func MakeErrorWrongNumberOfArguments(a *Arena, cmd string) Value {
	return MakeErrorf(a, "ERR wrong number of arguments for '%s' command", cmd)
}

// MakeBulkString construct BulkString Value from string
func MakeBulkString(a *Arena, s string) Value {
	return Value{
		Type:   TypeBulkString,
		String: a.CopyString(s),
	}
}

// MakeBulkBytes construct BulkString Value from raw bytes
func MakeBulkBytes(a *Arena, b []byte) Value {
	return Value{
		Type:   TypeBulkString,
		String: a.Copy(b),
	}
}

// MakeNilBulkString construct nil BulkString Value
func MakeNilBulkString() Value {
	return Value{
		Type:   TypeBulkString,
		IsNull: true,
	}
}

// MakeInteger construct Integer Value from int64
func MakeInteger(n int64) Value {
	return Value{
		Type:    TypeInteger,
		Integer: n,
	}
}

// MakeArray creates an array Value with n zeroed elements carved from the
// arena; the caller fills them in place
func MakeArray(a *Arena, n int) Value {
	return Value{
		Type:  TypeArray,
		Array: a.MakeValues(n),
	}
}

// MakeArrayOf creates an array Value wrapping the provided elements
func MakeArrayOf(values []Value) Value {
	return Value{
		Type:  TypeArray,
		Array: values,
	}
}

// MakeNilArray construct nil Array Value
func MakeNilArray() Value {
	return Value{
		Type:   TypeArray,
		IsNull: true,
	}
}
