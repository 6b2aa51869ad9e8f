package fadaf

import (
	"cmp"
	"iter"
)

// Map is an associative multi-map: a key may be stored several times as
// long as every pair under it carries different data.
//
// A Map is not safe for concurrent use.
type Map[K comparable, D comparable] interface {
	Size() int
	UniqueKeyCount() int
	Insert(key K, data D) (bool, error)
	Remove(key K, data D) (bool, error)
	RemoveAll(key K) (bool, error)
	LookupAny(key K) bool
	Lookup(key K, data D) bool
	AllKeys() []K
	AllData(key K) []D
	MinKey() (K, bool)
	MaxKey() (K, bool)
	All() iter.Seq2[K, D]
	Iterator() Iterator[K, D]
}

// Tree is the ordered, duplicate-aware search tree behind a Map.
type Tree[K any, D comparable] interface {
	Insert(key K, data D) (bool, error)
	Remove(key K, data D) (bool, error)
	RemoveAll(key K) (bool, error)
	LookupAny(key K) bool
	Lookup(key K, data D) bool
	AllData(key K) []D
	Min() (K, bool)
	Max() (K, bool)
	Iterator() Iterator[K, D]
	All() iter.Seq2[K, D]
	Size() int
	UniqueKeys() int
}

// Iterator walks the pairs in ascending key order. The tree must not be
// modified while an iteration is in progress.
type Iterator[K any, D any] interface {
	HasNext() bool
	Next() (Node[K, D], error)
}

type Node[K any, D any] interface {
	Key() K
	Data() D
}

// New returns an empty Map whose hash index starts with the given
// capacity. The capacity must be at least MinCapacity.
func New[K cmp.Ordered, D comparable](capacity int, opts ...Option) (Map[K, D], error) {
	return NewFunc[K, D](capacity, cmp.Compare[K], hashOrdered[K], opts...)
}

// NewFunc is like New for key types that are not cmp.Ordered. compare
// must define a total order consistent with ==, and hash must return
// equal values for equal keys.
func NewFunc[K comparable, D comparable](capacity int, compare func(a, b K) int, hash func(K) uint64, opts ...Option) (Map[K, D], error) {
	cfg := newConfig(opts)
	idx, err := newHashIndex(capacity, hash, cfg.logger)
	if err != nil {
		return nil, err
	}
	return &fadaf[K, D]{
		tree:  newTree[K, D](compare),
		index: idx,
	}, nil
}

func NewTree[K cmp.Ordered, D comparable]() Tree[K, D] {
	return newTree[K, D](cmp.Compare[K])
}

func NewTreeFunc[K any, D comparable](compare func(a, b K) int) Tree[K, D] {
	return newTree[K, D](compare)
}
