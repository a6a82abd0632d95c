package btree

// Iterator is a bidirectional cursor over the values of a tree.
//
// An iterator references a leaf of its tree, or nothing for the end
// position. It does not hold a path: successor and predecessor are computed
// from parent links and the cached bounds of inner nodes, crossing as many
// levels as the leaves' lowest common ancestor requires.
//
// Iterators compare by leaf identity; comparing iterators of different trees
// is meaningless. Any mutation of the tree invalidates its iterators.
type Iterator[T any] struct {
	tree *Tree[T]
	leaf *node[T]
}

// Begin returns an iterator at the smallest value, or End for an empty tree.
func (t *Tree[T]) Begin() Iterator[T] {
	if t == nil || t.root == nil {
		return t.End()
	}
	return Iterator[T]{tree: t, leaf: leftmost(t.root)}
}

// End returns the past-the-end iterator.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t}
}

func leftmost[T any](n *node[T]) *node[T] {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n
}

func rightmost[T any](n *node[T]) *node[T] {
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n
}

// IsEnd reports whether the iterator is past the last value.
func (it Iterator[T]) IsEnd() bool {
	return it.leaf == nil
}

// Value returns the value at the iterator position. Calling Value on the end
// iterator panics.
func (it Iterator[T]) Value() T {
	assert(it.leaf != nil, "btree: dereferencing end iterator")
	return it.leaf.value()
}

// Equal reports whether two iterators denote the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.leaf == other.leaf
}

// Next moves the iterator to the successor value. Advancing from the last
// value yields End; advancing End is a no-op.
func (it *Iterator[T]) Next() {
	if it.leaf == nil {
		return
	}
	less := it.tree.cfg.Less
	k := it.leaf.value()
	// climb while k is the maximum of the subtree
	n := it.leaf
	for n != nil && !less(k, n.max) {
		n = n.parent
	}
	if n == nil {
		it.leaf = nil
		return
	}
	for _, child := range n.children {
		if less(k, child.max) {
			n = child
			break
		}
	}
	it.leaf = leftmost(n)
}

// Prev moves the iterator to the predecessor value. Moving back from End
// yields the largest value. Moving back from the first value yields End.
func (it *Iterator[T]) Prev() {
	if it.leaf == nil {
		if it.tree != nil && it.tree.root != nil {
			it.leaf = rightmost(it.tree.root)
		}
		return
	}
	less := it.tree.cfg.Less
	k := it.leaf.value()
	n := it.leaf
	for n != nil && !less(n.min, k) {
		n = n.parent
	}
	if n == nil {
		it.leaf = nil
		return
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if less(n.children[i].min, k) {
			n = n.children[i]
			break
		}
	}
	it.leaf = rightmost(n)
}
