package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and is meant to be used in tests. It
// verifies fan-out bounds, uniform leaf depth, sorted children, cached bounds,
// parent back-links and strictly ascending leaf values.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrInvariant)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvariant)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	height, err := t.checkNode(t.root, true)
	if err != nil {
		tracer().Debugf("btree check failed: %v", err)
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	var prev T
	first := true
	var orderErr error
	t.ForEach(func(v T) bool {
		if !first && !t.cfg.Less(prev, v) {
			orderErr = fmt.Errorf("%w: leaf values not strictly ascending at %v", ErrInvariant, v)
			return false
		}
		prev, first = v, false
		return true
	})
	return orderErr
}

func (t *Tree[T]) checkNode(n *node[T], isRoot bool) (height int, err error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	if n.isLeaf() {
		if t.cfg.Less(n.min, n.max) || t.cfg.Less(n.max, n.min) {
			return 0, fmt.Errorf("%w: leaf bounds differ", ErrInvariant)
		}
		return 1, nil
	}
	if len(n.children) > MaxChildren {
		return 0, fmt.Errorf("%w: child count %d exceeds degree %d",
			ErrInvariant, len(n.children), MaxChildren)
	}
	if len(n.children) < MinChildren {
		return 0, fmt.Errorf("%w: child count %d below minimum %d (root=%v)",
			ErrInvariant, len(n.children), MinChildren, isRoot)
	}
	var childHeight int
	for i, child := range n.children {
		if child == nil {
			return 0, fmt.Errorf("%w: nil child at index %d", ErrInvariant, i)
		}
		if child.parent != n {
			return 0, fmt.Errorf("%w: broken parent link at index %d", ErrInvariant, i)
		}
		if i > 0 && !t.cfg.Less(n.children[i-1].max, child.min) {
			return 0, fmt.Errorf("%w: children not sorted at index %d", ErrInvariant, i)
		}
		cHeight, cErr := t.checkNode(child, false)
		if cErr != nil {
			return 0, cErr
		}
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
		}
	}
	first, last := n.children[0], n.children[len(n.children)-1]
	if !t.equiv(n.min, first.min) || !t.equiv(n.max, last.max) {
		return 0, fmt.Errorf("%w: stale bounds on inner node", ErrInvariant)
	}
	return childHeight + 1, nil
}
