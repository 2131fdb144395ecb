package resp

const (
	arenaByteChunk  = 4096
	arenaValueChunk = 64
)

// Arena is a bump allocator owning all byte and element storage reachable
// from the Value trees built with it. One arena backs one parse/build
// operation; Reset reclaims everything at once and invalidates every
// Value previously built from it. An Arena must not be shared between
// concurrent operations.
type Arena struct {
	buf   []byte
	used  int
	vals  []Value
	vused int
}

// Alloc returns a zeroed n-byte slice carved out of the arena
func (a *Arena) Alloc(n int) []byte {
	if a.used+n > len(a.buf) {
		size := arenaByteChunk
		if n > size {
			size = n
		}
		a.buf = make([]byte, size)
		a.used = 0
	}

	b := a.buf[a.used : a.used+n : a.used+n]
	a.used += n

	for i := range b {
		b[i] = 0
	}
	return b
}

// Copy duplicates b into arena storage
func (a *Arena) Copy(b []byte) []byte {
	dst := a.Alloc(len(b))
	copy(dst, b)
	return dst
}

// CopyString duplicates s into arena storage
func (a *Arena) CopyString(s string) []byte {
	dst := a.Alloc(len(s))
	copy(dst, s)
	return dst
}

// MakeValues returns an n-element Value slice carved out of the arena,
// used for array children so the whole tree is reclaimed as one unit
func (a *Arena) MakeValues(n int) []Value {
	if a.vused+n > len(a.vals) {
		size := arenaValueChunk
		if n > size {
			size = n
		}
		a.vals = make([]Value, size)
		a.vused = 0
	}

	vs := a.vals[a.vused : a.vused+n : a.vused+n]
	a.vused = a.vused + n

	for i := range vs {
		vs[i] = Value{}
	}
	return vs
}

// Reset reclaims the arena for reuse. Current chunks are kept and
// overwritten by subsequent allocations; every Value built before the
// reset becomes invalid
func (a *Arena) Reset() {
	a.used = 0
	a.vused = 0
}
