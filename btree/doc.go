/*
Package btree provides the balanced search tree backing sorted sets.

The tree is a (2,4)-tree of augmented nodes. Every stored value lives in a
leaf of its own; internal nodes own between 2 and 4 children and cache the
minimum and maximum value of their subtree. All leaves are at the same depth.

Current status:
  - leaf-per-value storage with min/max augmentation on inner nodes,
  - descent steered by the cached maximum of each child,
  - insertion with overflow splitting, growing the tree at the root only,
  - deletion with absorb-then-resplit underflow handling, shrinking the tree
    at the root only,
  - iterators computing successor/predecessor from parent links and cached
    bounds, without a position stack,
  - deep copy and teardown,
  - a strict invariant checker for tests (`Check`).

The tree is not safe for concurrent use. Iterators are invalidated by any
mutation of the tree they were obtained from.

Clients will usually want to use package sortedset instead, which wraps a
tree and keeps track of its cardinality.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'sortedset'
func tracer() tracing.Trace {
	return tracing.Select("sortedset")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
