package resp

const (
	TypeSimpleString = '+'
	TypeError        = '-'
	TypeInteger      = ':'
	TypeBulkString   = '$'
	TypeArray        = '*'
)

// Value is one parsed or to-be-serialized reply unit.
// Byte payloads of parsed Values are owned by the Arena of the operation
// that produced them; a Value must not outlive that Arena.
type Value struct {
	String  []byte // SimpleString, Error, BulkString
	Array   []Value
	Integer int64 // Integer
	Type    byte
	IsNull  bool // for nil BulkString and nil Array
}

// IsNil reports whether the value is a nil bulk string or nil array
func (v Value) IsNil() bool {
	return v.IsNull && (v.Type == TypeBulkString || v.Type == TypeArray)
}

// Equal compares two values structurally: same type, same payload bytes,
// same element sequence. Which arena backs the payloads does not matter
func Equal(a, b Value) bool {
	if a.Type != b.Type || a.IsNull != b.IsNull {
		return false
	}

	switch a.Type {
	case TypeInteger:
		return a.Integer == b.Integer
	case TypeSimpleString, TypeError, TypeBulkString:
		return string(a.String) == string(b.String)
	case TypeArray:
		if len(a.Array) != len(b.Array) {
			return false
		}
		for i := range a.Array {
			if !Equal(a.Array[i], b.Array[i]) {
				return false
			}
		}
		return true
	}

	return false
}

// Clone deep-copies v into the given arena. The result shares no byte or
// element storage with the source, so it stays valid after the source
// arena is reset
func Clone(a *Arena, v Value) Value {
	out := Value{
		Type:    v.Type,
		Integer: v.Integer,
		IsNull:  v.IsNull,
	}

	if v.String != nil {
		out.String = a.Copy(v.String)
	}

	if v.Array != nil {
		out.Array = a.MakeValues(len(v.Array))
		for i := range v.Array {
			out.Array[i] = Clone(a, v.Array[i])
		}
	}

	return out
}
