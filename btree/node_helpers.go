package btree

// makeLeaf materializes a new leaf for a single value.
func (t *Tree[T]) makeLeaf(value T) *node[T] {
	return &node[T]{min: value, max: value}
}

// makeInternal materializes a new inner node over children and computes its
// bounds. Children are adopted and kept sorted by their maximum.
func (t *Tree[T]) makeInternal(children ...*node[T]) *node[T] {
	assert(len(children) <= overflowStorage, "makeInternal exceeds node capacity")
	inner := &node[T]{children: make([]*node[T], 0, overflowStorage)}
	for _, child := range children {
		inner.addChild(child, t.cfg.Less)
	}
	return inner
}

// recalcPath re-derives the bounds of every ancestor of n, bottom-up.
func (t *Tree[T]) recalcPath(n *node[T]) {
	for p := n.parent; p != nil; p = p.parent {
		p.recalc()
	}
}

// equiv reports whether a and b are order-equivalent.
func (t *Tree[T]) equiv(a, b T) bool {
	return !t.cfg.Less(a, b) && !t.cfg.Less(b, a)
}

// release cuts all links of a subtree, post-order.
func release[T any](n *node[T]) {
	if n == nil {
		return
	}
	for i, child := range n.children {
		release(child)
		n.children[i] = nil
	}
	n.children = nil
	n.parent = nil
}

// cloneSubtree deep-copies a subtree, post-order, re-linking the copies to
// their new parents.
func cloneSubtree[T any](n *node[T], parent *node[T]) *node[T] {
	c := &node[T]{parent: parent, min: n.min, max: n.max}
	if n.isLeaf() {
		return c
	}
	c.children = make([]*node[T], len(n.children), overflowStorage)
	for i, child := range n.children {
		c.children[i] = cloneSubtree(child, c)
	}
	return c
}
