package btree

import "iter"

// ForEach walks values in ascending order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEach(fn func(value T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[T]) forEachNode(n *node[T], fn func(value T) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	if n.isLeaf() {
		return fn(n.value())
	}
	for _, child := range n.children {
		if !t.forEachNode(child, fn) {
			return false
		}
	}
	return true
}

// All returns an iterator over the values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := t.Begin(); !it.IsEnd(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		it := t.End()
		for it.Prev(); !it.IsEnd(); it.Prev() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// NodeView is a read-only snapshot of a tree node, handed out by Walk.
type NodeView[T any] struct {
	ID       int // unique within one walk, starting at 1
	Parent   int // ID of the parent, 0 for the root
	Depth    int // 0 for the root
	Leaf     bool
	Min, Max T // for leaves, both are the stored value
	Children int
}

// Walk visits every node of the tree in pre-order. It is intended for
// debugging and visualization. Walk stops at the first error returned by fn
// and returns it.
func (t *Tree[T]) Walk(fn func(v NodeView[T]) error) error {
	if t == nil || t.root == nil || fn == nil {
		return nil
	}
	id := 0
	var walk func(n *node[T], parent, depth int) error
	walk = func(n *node[T], parent, depth int) error {
		id++
		v := NodeView[T]{
			ID:       id,
			Parent:   parent,
			Depth:    depth,
			Leaf:     n.isLeaf(),
			Min:      n.min,
			Max:      n.max,
			Children: len(n.children),
		}
		if err := fn(v); err != nil {
			return err
		}
		for _, child := range n.children {
			if err := walk(child, v.ID, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(t.root, 0, 0)
}
