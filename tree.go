package fadaf

import (
	"fmt"
	"iter"
)

func (t *tree[K, D]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[K, D]) UniqueKeys() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.keys
}

// Insert stores the pair unless it is already present. A new key becomes a
// leaf of the ordered tree, a known key gets the node appended to the end
// of its chain so duplicates keep insertion order.
func (t *tree[K, D]) Insert(key K, data D) (bool, error) {
	if isNil(key) || isNil(data) {
		return false, fmt.Errorf("%w: insert requires a key and data", ErrInvalidArgument)
	}
	if t.Lookup(key, data) {
		return false, nil
	}

	node := newNode(key, data)
	link := &t.root
	var parent *dafNode[K, D]
	for *link != nil {
		curr := *link
		c := t.compare(key, curr.key)
		if c == 0 {
			tail := curr.last()
			tail.dup = node
			node.parent = tail
			t.size++
			return true, nil
		}

		parent = curr
		if c < 0 {
			link = &curr.left
		} else {
			link = &curr.right
		}
	}

	node.parent = parent
	*link = node
	t.size++
	t.keys++
	return true, nil
}

func (t *tree[K, D]) LookupAny(key K) bool {
	if isNil(key) {
		return false
	}
	return t.find(key) != nil
}

func (t *tree[K, D]) Lookup(key K, data D) bool {
	if isNil(key) || isNil(data) {
		return false
	}
	return t.findPair(key, data) != nil
}

// AllData returns the data stored under key in insertion order.
func (t *tree[K, D]) AllData(key K) []D {
	if isNil(key) {
		return nil
	}
	var data []D
	for n := t.find(key); n != nil; n = n.dup {
		data = append(data, n.data)
	}
	return data
}

func (t *tree[K, D]) Remove(key K, data D) (bool, error) {
	if isNil(key) || isNil(data) {
		return false, fmt.Errorf("%w: remove requires a key and data", ErrInvalidArgument)
	}
	node := t.findPair(key, data)
	if node == nil {
		return false, nil
	}
	t.removeNode(node)
	return true, nil
}

// RemoveAll drops every pair stored under key.
func (t *tree[K, D]) RemoveAll(key K) (bool, error) {
	if isNil(key) {
		return false, fmt.Errorf("%w: remove all requires a key", ErrInvalidArgument)
	}
	head := t.find(key)
	if head == nil {
		return false, nil
	}
	for head.dup != nil {
		t.removeNode(head.dup)
	}
	t.removeNode(head)
	return true, nil
}

func (t *tree[K, D]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.minimum().key, true
}

func (t *tree[K, D]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.maximum().key, true
}

// find returns the head of the chain for key, nil if key is absent.
func (t *tree[K, D]) find(key K) *dafNode[K, D] {
	curr := t.root
	for curr != nil {
		c := t.compare(key, curr.key)
		switch {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}
	return nil
}

func (t *tree[K, D]) findPair(key K, data D) *dafNode[K, D] {
	for n := t.find(key); n != nil; n = n.dup {
		if n.data == data {
			return n
		}
	}
	return nil
}

// removeNode takes a single node out of the tree. Chain order is never
// touched except for dropping node itself.
func (t *tree[K, D]) removeNode(node *dafNode[K, D]) {
	switch {
	case node.chained():
		prev := node.parent
		prev.dup = node.dup
		if node.dup != nil {
			node.dup.parent = prev
		}

	case node.dup != nil:
		// the first duplicate becomes the new head in place of node
		next := node.dup
		next.adopt(node)
		t.transplant(node, next)

	default:
		t.keys--
		t.removeHead(node)
	}

	node.unlink()
	t.size--
}

// removeHead deletes a head without duplicates from the ordered tree.
// With two children the in-order successor moves into its place as a
// whole node, so the successor's chain stays attached to it.
func (t *tree[K, D]) removeHead(node *dafNode[K, D]) {
	switch {
	case node.left == nil:
		t.transplant(node, node.right)
	case node.right == nil:
		t.transplant(node, node.left)
	default:
		succ := node.right.minimum()
		if succ.parent != node {
			t.transplant(succ, succ.right)
			succ.right = node.right
			succ.right.parent = succ
		}
		t.transplant(node, succ)
		succ.left = node.left
		succ.left.parent = succ
	}
}

// transplant puts v where the head u sits in the ordered tree.
func (t *tree[K, D]) transplant(u, v *dafNode[K, D]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u.parent.left == u:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *tree[K, D]) Iterator() Iterator[K, D] {
	return newIterator(t.root)
}

// All yields every pair in ascending key order, duplicates of a key in
// insertion order.
func (t *tree[K, D]) All() iter.Seq2[K, D] {
	return func(yield func(K, D) bool) {
		it := newIterator(t.root)
		for it.HasNext() {
			n := it.next()
			if !yield(n.key, n.data) {
				return
			}
		}
	}
}

func newIterator[K any, D comparable](root *dafNode[K, D]) *iterator[K, D] {
	it := &iterator[K, D]{}
	it.pushLeft(root)
	return it
}

func (it *iterator[K, D]) HasNext() bool {
	return it != nil && (it.chain != nil || len(it.stack) > 0)
}

func (it *iterator[K, D]) Next() (Node[K, D], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	return it.next(), nil
}

func (it *iterator[K, D]) next() *dafNode[K, D] {
	if n := it.chain; n != nil {
		it.chain = n.dup
		return n
	}

	last := len(it.stack) - 1
	n := it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]

	// the chain of n drains before anything of its right subtree
	it.chain = n.dup
	it.pushLeft(n.right)
	return n
}

func (it *iterator[K, D]) pushLeft(n *dafNode[K, D]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}
