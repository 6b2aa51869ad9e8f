package fadaf

func (n *dafNode[K, D]) Key() K {
	return n.key
}

func (n *dafNode[K, D]) Data() D {
	return n.data
}

// chained reports whether n is a duplicate hanging off another node of
// its chain rather than the head sitting in the tree.
func (n *dafNode[K, D]) chained() bool {
	return n.parent != nil && n.parent.dup == n
}

// last returns the tail of the chain starting at n.
func (n *dafNode[K, D]) last() *dafNode[K, D] {
	for n.dup != nil {
		n = n.dup
	}
	return n
}

// find the leftmost head under n
func (n *dafNode[K, D]) minimum() *dafNode[K, D] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// find the rightmost head under n
func (n *dafNode[K, D]) maximum() *dafNode[K, D] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// adopt takes over the left and right subtrees of other.
func (n *dafNode[K, D]) adopt(other *dafNode[K, D]) {
	n.left = other.left
	n.right = other.right
	if n.left != nil {
		n.left.parent = n
	}
	if n.right != nil {
		n.right.parent = n
	}
}

// unlink clears every structural reference so a removed node keeps
// nothing of the tree reachable.
func (n *dafNode[K, D]) unlink() {
	n.left = nil
	n.right = nil
	n.dup = nil
	n.parent = nil
}
