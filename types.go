package fadaf

import (
	"errors"
	"log/slog"
	"reflect"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

const (
	// MinCapacity is the smallest initial capacity the hash index accepts.
	MinCapacity = 10

	// ResizeFactor is the growth factor of the hash index bucket array.
	ResizeFactor = 2

	// MaxLoadFactor is the load factor the hash index never exceeds.
	MaxLoadFactor = float64(2) / 3
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoMoreNodes     = errors.New("There are no more nodes in the tree")
)

type (
	tree[K any, D comparable] struct {
		root    *dafNode[K, D]
		size    int
		keys    int
		compare func(a, b K) int
	}

	// dafNode is a tree position when it heads a chain and a plain list
	// element otherwise. For chain members parent is the previous node of
	// the chain, for heads it is the ordered-tree parent.
	dafNode[K any, D comparable] struct {
		key    K
		data   D
		left   *dafNode[K, D]
		right  *dafNode[K, D]
		dup    *dafNode[K, D]
		parent *dafNode[K, D]
	}

	iterator[K any, D comparable] struct {
		// heads whose left subtree is already on the stack
		stack []*dafNode[K, D]
		// next chain member to hand out before popping again
		chain *dafNode[K, D]
	}

	hashIndex[K comparable] struct {
		buckets []*singlylinkedlist.List
		size    int
		hash    func(K) uint64
		logger  *slog.Logger
	}

	fadaf[K comparable, D comparable] struct {
		tree  *tree[K, D]
		index *hashIndex[K]
	}
)

func newTree[K any, D comparable](compare func(a, b K) int) *tree[K, D] {
	return &tree[K, D]{compare: compare}
}

func newNode[K any, D comparable](key K, data D) *dafNode[K, D] {
	return &dafNode[K, D]{key: key, data: data}
}

// isNil reports whether v is the nil value of a nilable kind. Other kinds
// are never absent.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func,
		reflect.Map, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
