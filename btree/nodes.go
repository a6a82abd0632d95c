package btree

// overflowStorage is the child capacity of inner nodes, allowing for a
// transient overflow before a split.
const overflowStorage = MaxChildren + 1

// node is either a leaf holding exactly one value (then min == max == value)
// or an inner node owning its children. parent is a back-link used for
// navigation only and is nil for the root.
type node[T any] struct {
	parent   *node[T]
	min, max T
	// children is sorted ascending by max and empty for leaves.
	children []*node[T]
}

func (n *node[T]) isLeaf() bool { return len(n.children) == 0 }

// value returns the value stored in a leaf.
func (n *node[T]) value() T { return n.max }

// recalc re-derives the bounds of an inner node from its children.
// Leaves and transiently childless nodes keep their bounds.
func (n *node[T]) recalc() {
	if len(n.children) == 0 {
		return
	}
	n.min = n.children[0].min
	n.max = n.children[len(n.children)-1].max
}

// addChild inserts child at its sorted position and adopts it.
func (n *node[T]) addChild(child *node[T], less LessFunc[T]) {
	assert(child != nil, "addChild called with nil child")
	child.parent = n
	at := len(n.children)
	for i, c := range n.children {
		if less(child.max, c.max) {
			at = i
			break
		}
	}
	n.children = insertAt(n.children, at, child)
	n.recalc()
}

// deleteChild removes child by identity. The child keeps its parent link;
// callers re-link or discard it.
func (n *node[T]) deleteChild(child *node[T]) {
	at := n.childPosition(child)
	assert(at >= 0, "deleteChild: node is not a child")
	copy(n.children[at:], n.children[at+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	n.recalc()
}

// childPosition returns the index of child among the children of n, or -1.
func (n *node[T]) childPosition(child *node[T]) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// insertAt inserts value into a slice at idx, growing the slice in place if
// capacity allows.
func insertAt[T any](src []T, idx int, value T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	var zero T
	src = append(src, zero)
	copy(src[idx+1:], src[idx:])
	src[idx] = value
	return src
}
