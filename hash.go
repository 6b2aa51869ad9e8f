package fadaf

import (
	"fmt"
	"log/slog"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// newHashIndex returns an empty index with capacity buckets.
func newHashIndex[K comparable](capacity int, hash func(K) uint64, logger *slog.Logger) (*hashIndex[K], error) {
	if capacity < MinCapacity {
		return nil, fmt.Errorf("%w: capacity %d is below the minimum of %d", ErrInvalidArgument, capacity, MinCapacity)
	}
	if hash == nil {
		return nil, fmt.Errorf("%w: hash function is required", ErrInvalidArgument)
	}
	if logger == nil {
		logger = defaultLogger()
	}
	return &hashIndex[K]{
		buckets: newBuckets(capacity),
		hash:    hash,
		logger:  logger,
	}, nil
}

func newBuckets(capacity int) []*singlylinkedlist.List {
	buckets := make([]*singlylinkedlist.List, capacity)
	for i := range buckets {
		buckets[i] = singlylinkedlist.New()
	}
	return buckets
}

func (h *hashIndex[K]) Size() int {
	return h.size
}

func (h *hashIndex[K]) Capacity() int {
	return len(h.buckets)
}

// Insert adds key unless it is already present. The bucket array grows
// before the insertion whenever the new key would push the load factor
// past MaxLoadFactor.
func (h *hashIndex[K]) Insert(key K) (bool, error) {
	if isNil(key) {
		return false, fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	if h.Lookup(key) {
		return false, nil
	}
	if float64(h.size+1)/float64(h.Capacity()) > MaxLoadFactor {
		h.rehash()
	}
	h.bucket(key).Add(key)
	h.size++
	return true, nil
}

func (h *hashIndex[K]) Delete(key K) (bool, error) {
	if isNil(key) {
		return false, fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	bucket := h.bucket(key)
	idx := bucket.IndexOf(key)
	if idx < 0 {
		return false, nil
	}
	bucket.Remove(idx)
	h.size--
	return true, nil
}

func (h *hashIndex[K]) Lookup(key K) bool {
	if isNil(key) {
		return false
	}
	return h.bucket(key).Contains(key)
}

// hashValue maps key onto a bucket. The arithmetic is unsigned so the
// result is always a valid index.
func (h *hashIndex[K]) hashValue(key K) int {
	return int(h.hash(key) % uint64(len(h.buckets)))
}

func (h *hashIndex[K]) bucket(key K) *singlylinkedlist.List {
	return h.buckets[h.hashValue(key)]
}

// rehash grows the bucket array by ResizeFactor and redistributes every
// stored key.
func (h *hashIndex[K]) rehash() {
	old := h.buckets
	h.buckets = newBuckets(len(old) * ResizeFactor)
	for _, bucket := range old {
		it := bucket.Iterator()
		for it.Next() {
			key := it.Value().(K)
			h.bucket(key).Add(key)
		}
	}
	h.logger.Debug("hash index resized",
		slog.Int("from", len(old)),
		slog.Int("to", len(h.buckets)),
		slog.Int("keys", h.size))
}
