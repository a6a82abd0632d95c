package btree

import (
	"cmp"
	"fmt"
)

const (
	// MaxChildren is the upper fan-out bound of inner nodes.
	MaxChildren = 4
	// MinChildren is the lower fan-out bound of inner nodes.
	MinChildren = 2
)

// LessFunc is a strict order over values of type T.
//
// Two values a and b are considered equivalent if neither
//
//	less(a, b)  nor  less(b, a)
//
// holds. Equivalent values are stored only once.
type LessFunc[T any] func(a, b T) bool

// Config configures a tree.
type Config[T any] struct {
	// Less orders the values of the tree. It is required.
	Less LessFunc[T]
}

// OrderedConfig returns a configuration using the natural order of T.
func OrderedConfig[T cmp.Ordered]() Config[T] {
	return Config[T]{Less: cmp.Less[T]}
}

func (cfg Config[T]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: less function is required", ErrInvalidConfig)
	}
	return nil
}
