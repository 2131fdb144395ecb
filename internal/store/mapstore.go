package store

import (
	"strconv"
	"sync"
)

// MapStore is a thread-safe string keyspace over a single map
type MapStore struct {
	data map[string]string
	mu   sync.RWMutex
}

func NewMapStore() *MapStore {
	return &MapStore{
		data: make(map[string]string),
	}
}

func (m *MapStore) Get(key string) (string, bool) {
	m.mu.RLock()
	val, ok := m.data[key]
	m.mu.RUnlock()

	return val, ok
}

func (m *MapStore) Set(key, value string) {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
}

func (m *MapStore) Incr(key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	if cur, ok := m.data[key]; ok {
		parsed, err := strconv.ParseInt(cur, 10, 64)
		if err != nil {
			return 0, ErrNotInteger
		}
		n = parsed
	}

	n++
	m.data[key] = strconv.FormatInt(n, 10)

	return n, nil
}
