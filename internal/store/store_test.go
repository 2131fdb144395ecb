package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestMapStoreGetSet(t *testing.T) {
	m := NewMapStore()

	if _, ok := m.Get("missing"); ok {
		t.Error("Get() on empty store reported a hit")
	}

	m.Set("hello", "world")
	if val, ok := m.Get("hello"); !ok || val != "world" {
		t.Errorf("Get() = %q, %v; want world, true", val, ok)
	}

	m.Set("hello", "world2")
	if val, _ := m.Get("hello"); val != "world2" {
		t.Errorf("Get() after overwrite = %q, want world2", val)
	}
}

func TestMapStoreIncr(t *testing.T) {
	m := NewMapStore()

	n, err := m.Incr("counter")
	if err != nil || n != 1 {
		t.Errorf("Incr() on missing key = %d, %v; want 1, nil", n, err)
	}

	n, err = m.Incr("counter")
	if err != nil || n != 2 {
		t.Errorf("second Incr() = %d, %v; want 2, nil", n, err)
	}

	if val, _ := m.Get("counter"); val != "2" {
		t.Errorf("stored value = %q, want 2", val)
	}

	m.Set("word", "abc")
	if _, err := m.Incr("word"); !errors.Is(err, ErrNotInteger) {
		t.Errorf("Incr() on non-numeric value error = %v, want ErrNotInteger", err)
	}
}

func TestMapStoreConcurrentIncr(t *testing.T) {
	m := NewMapStore()

	const (
		workers = 8
		rounds  = 500
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				m.Incr("count") //nolint:errcheck
			}
		}()
	}
	wg.Wait()

	want := fmt.Sprintf("%d", workers*rounds)
	if val, _ := m.Get("count"); val != want {
		t.Errorf("count = %q, want %q", val, want)
	}
}

func TestNewShardedStore(t *testing.T) {
	tests := []struct {
		name        string
		shards      uint
		expectError bool
	}{
		{"Valid 1 shard", 1, false},
		{"Valid 2 shards", 2, false},
		{"Valid 64 shards", 64, false},
		{"Invalid 0 shards", 0, true},
		{"Invalid 3 shards (not power of 2)", 3, true},
		{"Invalid 63 shards (not power of 2)", 63, true},
		{"Invalid 128 shards (too many)", 128, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewShardedStore(tt.shards)
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for %d shards, got nil", tt.shards)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error for %d shards: %v", tt.shards, err)
				}
				if uint(len(s.shards)) != tt.shards {
					t.Errorf("expected %d shards created, got %d", tt.shards, len(s.shards))
				}
				if s.shardMask != uint32(tt.shards-1) {
					t.Errorf("mask mismatch")
				}
			}
		})
	}
}

func TestShardedStoreDistribution(t *testing.T) {
	shardsCount := uint(16)
	s, _ := NewShardedStore(shardsCount) //nolint:errcheck

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%d", i)
		s.Set(key, "val")

		shardIdx := s.getShardIndex(key)
		if _, ok := s.shards[shardIdx].Get(key); !ok {
			t.Errorf("Key %s hashed to shard %d but not found there", key, shardIdx)
		}
		if val, ok := s.Get(key); !ok || val != "val" {
			t.Errorf("Get(%s) through the sharded front = %q, %v", key, val, ok)
		}
	}
}

func TestShardedStoreIncr(t *testing.T) {
	s, err := NewShardedStore(4)
	if err != nil {
		t.Fatalf("NewShardedStore() failed: %v", err)
	}

	for i := 1; i <= 5; i++ {
		n, err := s.Incr("counter")
		if err != nil || n != int64(i) {
			t.Errorf("Incr() round %d = %d, %v", i, n, err)
		}
	}
}
