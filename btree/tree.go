package btree

import (
	"cmp"
)

// Tree is a (2,4)-tree storing a set of values ordered by a LessFunc.
//
// Each value is held by a leaf of its own; inner nodes cache the minimum and
// maximum of their subtree, which steers descent and iteration. Trees own
// their nodes exclusively; use Clone to obtain an independent copy.
type Tree[T any] struct {
	cfg    Config[T]
	root   *node[T]
	height int // 0 means empty tree
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree ordered by the natural order of T.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{cfg: OrderedConfig[T]()}
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Len counts the values in the tree. This walks every leaf and is therefore
// O(n).
func (t *Tree[T]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return countLeaves(t.root)
}

func countLeaves[T any](n *node[T]) int {
	if n.isLeaf() {
		return 1
	}
	cnt := 0
	for _, child := range n.children {
		cnt += countLeaves(child)
	}
	return cnt
}

// Min returns the smallest value of the tree, if any.
func (t *Tree[T]) Min() (T, bool) {
	if t == nil || t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.min, true
}

// Max returns the largest value of the tree, if any.
func (t *Tree[T]) Max() (T, bool) {
	if t == nil || t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.max, true
}

// Same reports whether t and other are the same tree instance, i.e. share
// their node graph. This is an identity check, not a comparison of contents:
// two distinct empty trees are not the same.
func (t *Tree[T]) Same(other *Tree[T]) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.root != nil && t.root == other.root
}

// Clone returns a deep copy of the tree. The copy shares no nodes with t.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	cloned := &Tree[T]{cfg: t.cfg, height: t.height}
	if t.root != nil {
		cloned.root = cloneSubtree(t.root, nil)
	}
	return cloned
}

// Clear removes all values from the tree.
func (t *Tree[T]) Clear() {
	if t == nil {
		return
	}
	release(t.root)
	t.root = nil
	t.height = 0
}

// descend walks from the root to the leaf where x is or would be located.
// At every inner node it chooses the leftmost child whose maximum is not less
// than x, or the last child if there is none. Returns nil for an empty tree.
func (t *Tree[T]) descend(x T) *node[T] {
	n := t.root
	for n != nil && !n.isLeaf() {
		next := n.children[len(n.children)-1]
		for _, child := range n.children {
			if !t.cfg.Less(child.max, x) {
				next = child
				break
			}
		}
		n = next
	}
	return n
}

// Insert adds x to the tree. It returns false if an equivalent value is
// already present, in which case the tree is left untouched.
func (t *Tree[T]) Insert(x T) bool {
	if t.root == nil {
		t.root = t.makeLeaf(x)
		t.height = 1
		return true
	}
	cur := t.descend(x)
	if t.equiv(cur.value(), x) {
		return false
	}
	if cur.parent == nil {
		t.root = t.makeInternal(cur, t.makeLeaf(x))
		t.height = 2
		return true
	}
	parent := cur.parent
	leaf := t.makeLeaf(x)
	parent.addChild(leaf, t.cfg.Less)
	t.recalcPath(parent)
	t.splitParent(parent)
	return true
}

// splitParent corrects overflow of n and, cascading upwards, of its
// ancestors. The two rightmost children of an over-full node move to a new
// sibling. A split root yields a new root, the only place the tree grows.
func (t *Tree[T]) splitParent(n *node[T]) {
	for n != nil && len(n.children) > MaxChildren {
		k := len(n.children) - 2
		sibling := t.makeInternal(n.children[k:]...)
		for i := k; i < len(n.children); i++ {
			n.children[i] = nil
		}
		n.children = n.children[:k]
		n.recalc()
		if n.parent == nil {
			t.root = t.makeInternal(n, sibling)
			t.height++
			return
		}
		n.parent.addChild(sibling, t.cfg.Less)
		n = n.parent
	}
}

// Erase removes the value equivalent to x from the tree. It returns false if
// there is no such value, in which case the tree is left untouched.
func (t *Tree[T]) Erase(x T) bool {
	if t.root == nil {
		return false
	}
	leaf := t.descend(x)
	if !t.equiv(leaf.value(), x) {
		return false
	}
	cur := leaf.parent
	if cur == nil {
		t.root = nil
		t.height = 0
		return true
	}
	cur.deleteChild(leaf)
	t.recalcPath(cur)
	leaf.parent = nil
	for len(cur.children) == 1 {
		if cur.parent == nil {
			t.root = cur.children[0]
			t.root.parent = nil
			t.height--
			cur.children = nil
			break
		}
		// absorb the orphan into an adjacent sibling, then re-split it
		parent := cur.parent
		at := parent.childPosition(cur)
		sibling := parent.children[1]
		if at > 0 {
			sibling = parent.children[at-1]
		}
		sibling.addChild(cur.children[0], t.cfg.Less)
		cur.children = nil
		parent.deleteChild(cur)
		t.splitParent(sibling)
		cur.parent = nil
		cur = parent
	}
	return true
}

// LowerBound returns an iterator at the first value not less than x, or End.
func (t *Tree[T]) LowerBound(x T) Iterator[T] {
	leaf := t.descend(x)
	if leaf == nil || t.cfg.Less(leaf.value(), x) {
		return t.End()
	}
	return Iterator[T]{tree: t, leaf: leaf}
}

// Find returns an iterator at the value equivalent to x, or End.
func (t *Tree[T]) Find(x T) Iterator[T] {
	it := t.LowerBound(x)
	if it.IsEnd() || t.cfg.Less(x, it.Value()) {
		return t.End()
	}
	return it
}

// Contains reports whether a value equivalent to x is stored in the tree.
func (t *Tree[T]) Contains(x T) bool {
	if t == nil {
		return false
	}
	return !t.Find(x).IsEnd()
}
