package store

import (
	"errors"
	"hash/fnv"
	"math/bits"
)

// ShardedStore is a thread-safe keyspace divided into segments (shards)
// to reduce contention for locking
type ShardedStore struct {
	shards    []*MapStore
	shardMask uint32
}

// NewShardedStore creates a new instance of ShardedStore.
// The requestedShards parameter must be a power of two for efficient allocation.
// The maximum allowed number of shards is 64.
func NewShardedStore(requestedShards uint) (*ShardedStore, error) {
	if bits.OnesCount(requestedShards) != 1 {
		return nil, errors.New("requested shards must be a power of 2")
	}

	if requestedShards > 64 {
		return nil, errors.New("requested shards must be less or equal than 64")
	}

	s := &ShardedStore{
		shards:    make([]*MapStore, requestedShards),
		shardMask: uint32(requestedShards - 1),
	}

	var i uint
	for i = 0; i < requestedShards; i++ {
		s.shards[i] = NewMapStore()
	}

	return s, nil
}

// getShardIndex returns index of shard by key
func (s *ShardedStore) getShardIndex(key string) uint32 {
	hash := fnv.New32a()
	hash.Write([]byte(key)) //nolint:errcheck

	return hash.Sum32() & s.shardMask
}

func (s *ShardedStore) Get(key string) (string, bool) {
	return s.shards[s.getShardIndex(key)].Get(key)
}

func (s *ShardedStore) Set(key, value string) {
	s.shards[s.getShardIndex(key)].Set(key, value)
}

func (s *ShardedStore) Incr(key string) (int64, error) {
	return s.shards[s.getShardIndex(key)].Incr(key)
}
