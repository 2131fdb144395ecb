package store

import "errors"

// ErrNotInteger reports an Incr on a key whose current value does not
// parse as a 64-bit integer
var ErrNotInteger = errors.New("store: value is not an integer or out of range")

// Store is a common interface for the collaborator-owned keyspace that
// command handlers mutate. Implementations must be safe for concurrent
// use; lock granularity is the implementation's choice.
type Store interface {
	// Get returns the value and true if the key is found. Otherwise "", false
	Get(key string) (string, bool)

	// Set writes the value unconditionally
	Set(key, value string)

	// Incr atomically adds one to the integer value stored at key,
	// treating a missing key as zero, and returns the new value
	Incr(key string) (int64, error)
}
