package sortedset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/sortedset/btree"
)

// Set is an ordered set of values of type T.
//
// A set has to be created by one of the constructors (New, NewFunc, From, …);
// the zero value is not usable for insertion. A nil *Set behaves like the
// empty set for all read-only operations.
type Set[T any] struct {
	tree *btree.Tree[T]
	size int
}

// Iterator is a bidirectional cursor over the values of a set.
// See btree.Iterator.
type Iterator[T any] = btree.Iterator[T]

// New creates an empty set ordered by the natural order of T.
func New[T cmp.Ordered]() *Set[T] {
	return &Set[T]{tree: btree.NewOrdered[T]()}
}

// NewFunc creates an empty set ordered by less, which has to be a strict
// weak order. It returns an error if less is nil.
func NewFunc[T any](less func(a, b T) bool) (*Set[T], error) {
	tree, err := btree.New(btree.Config[T]{Less: less})
	if err != nil {
		return nil, err
	}
	return &Set[T]{tree: tree}, nil
}

// From creates a set holding the distinct values of a list.
func From[T cmp.Ordered](values ...T) *Set[T] {
	s := New[T]()
	s.insertAll(values)
	return s
}

// FromFunc creates a set ordered by less, holding the distinct values of a list.
func FromFunc[T any](less func(a, b T) bool, values ...T) (*Set[T], error) {
	s, err := NewFunc(less)
	if err != nil {
		return nil, err
	}
	s.insertAll(values)
	return s, nil
}

// FromSeq creates a set holding the distinct values of a sequence.
func FromSeq[T cmp.Ordered](seq iter.Seq[T]) *Set[T] {
	s := New[T]()
	n := 0
	for v := range seq {
		s.Insert(v)
		n++
	}
	tracer().Debugf("sortedset: built set of %d values from %d inputs", s.size, n)
	return s
}

func (s *Set[T]) insertAll(values []T) {
	for _, v := range values {
		s.Insert(v)
	}
	tracer().Debugf("sortedset: built set of %d values from %d inputs", s.size, len(values))
}

// Clone returns an independent deep copy of s.
func (s *Set[T]) Clone() *Set[T] {
	if s == nil {
		return nil
	}
	return &Set[T]{tree: s.tree.Clone(), size: s.size}
}

// Assign replaces the contents (and order) of s with a deep copy of src.
// Assigning a set to itself is a no-op.
func (s *Set[T]) Assign(src *Set[T]) {
	must(s != nil, "sortedset: Assign to nil set")
	if src == nil {
		s.Clear()
		return
	}
	if s.tree.Same(src.tree) {
		tracer().Debugf("sortedset: self-assignment skipped")
		return
	}
	s.tree.Clear()
	s.tree = src.tree.Clone()
	s.size = src.size
}

// Clear removes all values from s.
func (s *Set[T]) Clear() {
	if s == nil || s.tree == nil {
		return
	}
	s.tree.Clear()
	s.size = 0
}

// Len returns the number of values in s.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// IsEmpty reports whether s holds no values.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Insert adds x to s. It returns false if s already holds a value equivalent
// to x; s is unchanged then.
func (s *Set[T]) Insert(x T) bool {
	must(s != nil && s.tree != nil, "sortedset: Insert into uninitialized set")
	if s.tree.Insert(x) {
		s.size++
		return true
	}
	return false
}

// Erase removes the value equivalent to x from s. It returns false if there
// is no such value; s is unchanged then.
func (s *Set[T]) Erase(x T) bool {
	if s == nil || s.tree == nil {
		return false
	}
	if s.tree.Erase(x) {
		s.size--
		return true
	}
	return false
}

// Contains reports whether s holds a value equivalent to x.
func (s *Set[T]) Contains(x T) bool {
	if s == nil {
		return false
	}
	return s.tree.Contains(x)
}

// Find returns an iterator at the value equivalent to x, or End.
func (s *Set[T]) Find(x T) Iterator[T] {
	if s == nil || s.tree == nil {
		return Iterator[T]{}
	}
	return s.tree.Find(x)
}

// LowerBound returns an iterator at the smallest value not less than x, or End.
func (s *Set[T]) LowerBound(x T) Iterator[T] {
	if s == nil || s.tree == nil {
		return Iterator[T]{}
	}
	return s.tree.LowerBound(x)
}

// Begin returns an iterator at the smallest value, or End if s is empty.
func (s *Set[T]) Begin() Iterator[T] {
	if s == nil {
		return Iterator[T]{}
	}
	return s.tree.Begin()
}

// End returns the past-the-end iterator of s.
func (s *Set[T]) End() Iterator[T] {
	if s == nil {
		return Iterator[T]{}
	}
	return s.tree.End()
}

// Min returns the smallest value of s, if any.
func (s *Set[T]) Min() (T, bool) {
	if s == nil {
		var zero T
		return zero, false
	}
	return s.tree.Min()
}

// Max returns the largest value of s, if any.
func (s *Set[T]) Max() (T, bool) {
	if s == nil {
		var zero T
		return zero, false
	}
	return s.tree.Max()
}

// All returns an iterator over the values of s in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	if s == nil {
		return func(func(T) bool) {}
	}
	return s.tree.All()
}

// Backward returns an iterator over the values of s in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	if s == nil {
		return func(func(T) bool) {}
	}
	return s.tree.Backward()
}

// Values returns the values of s in ascending order.
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.Len())
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

// String returns a representation like "{1 3 5}".
func (s *Set[T]) String() string {
	var bf strings.Builder
	bf.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			bf.WriteByte(' ')
		}
		fmt.Fprint(&bf, v)
		first = false
	}
	bf.WriteByte('}')
	return bf.String()
}

// Check validates the internal structure of s, including the cardinality
// bookkeeping. It is meant for tests.
func (s *Set[T]) Check() error {
	if s == nil {
		return nil
	}
	if err := s.tree.Check(); err != nil {
		return err
	}
	if n := s.tree.Len(); n != s.size {
		return fmt.Errorf("%w: size is %d, tree holds %d values", btree.ErrInvariant, s.size, n)
	}
	return nil
}
