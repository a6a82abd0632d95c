package sortedset

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sortedset/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedset")
	defer teardown()

	s := New[int]()
	for _, v := range []int{5, 3, 8, 1} {
		s.Insert(v)
	}
	assert.Equal(t, []int{1, 3, 5, 8}, s.Values())
	assert.Equal(t, 4, s.Len())

	lb := s.LowerBound(4)
	require.False(t, lb.IsEnd())
	assert.Equal(t, 5, lb.Value())

	s.Erase(3)
	assert.Equal(t, []int{1, 5, 8}, s.Values())
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Find(8).Equal(s.End()))
	assert.True(t, s.Find(3).Equal(s.End()))

	n := s.Len()
	assert.True(t, s.Insert(10))
	assert.False(t, s.Insert(10))
	assert.Equal(t, n+1, s.Len())
	require.NoError(t, s.Check())
}

func TestSetCopyIsIndependent(t *testing.T) {
	a := From(1, 2, 3, 4, 5)
	b := a.Clone()
	b.Erase(3)
	assert.Equal(t, 5, a.Len())
	assert.True(t, a.Contains(3))
	assert.Equal(t, 4, b.Len())
	assert.False(t, b.Contains(3))
	a.Insert(6)
	assert.False(t, b.Contains(6))
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())
}

func TestSetAssign(t *testing.T) {
	a := From(1, 2, 3)
	b := From(7, 8)
	b.Assign(a)
	assert.Equal(t, []int{1, 2, 3}, b.Values())
	assert.Equal(t, 3, b.Len())
	b.Insert(4)
	assert.Equal(t, []int{1, 2, 3}, a.Values(), "assignment must deep-copy")

	root := a.tree
	a.Assign(a)
	assert.Same(t, root, a.tree, "self-assignment must not rebuild the tree")
	assert.Equal(t, []int{1, 2, 3}, a.Values())

	e1, e2 := New[int](), New[int]()
	e1.Assign(e2)
	assert.True(t, e1.IsEmpty())
	require.NoError(t, e1.Check())

	b.Assign(nil)
	assert.True(t, b.IsEmpty())
}

func TestSetEraseAbsent(t *testing.T) {
	s := From(2, 4, 6)
	assert.False(t, s.Erase(3))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{2, 4, 6}, s.Values())
}

func TestSetSizeTracksDistinctValues(t *testing.T) {
	s := From(3, 1, 3, 2, 1, 3)
	assert.Equal(t, 3, s.Len())
	for _, v := range []int{1, 1, 9} {
		s.Erase(v)
	}
	assert.Equal(t, 2, s.Len())
	s.Clear()
	assert.True(t, s.IsEmpty())
	require.NoError(t, s.Check())
}

func TestSetFromSeq(t *testing.T) {
	s := FromSeq(slices.Values([]string{"pear", "apple", "fig", "apple"}))
	assert.Equal(t, []string{"apple", "fig", "pear"}, s.Values())
	assert.Equal(t, "{apple fig pear}", s.String())
}

func TestSetFromFunc(t *testing.T) {
	type version struct{ major, minor int }
	less := func(a, b version) bool {
		if a.major != b.major {
			return a.major < b.major
		}
		return a.minor < b.minor
	}
	s, err := FromFunc(less, version{1, 2}, version{0, 9}, version{1, 0}, version{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []version{{0, 9}, {1, 0}, {1, 2}}, s.Values())
	mx, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, version{1, 2}, mx)

	_, err = FromFunc[version](nil)
	assert.True(t, errors.Is(err, btree.ErrInvalidConfig))
}

func TestSetIteration(t *testing.T) {
	s := From(10, 20, 30)
	var got []int
	for it := s.Begin(); !it.Equal(s.End()); it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{10, 20, 30}, got)
	assert.Equal(t, []int{30, 20, 10}, slices.Collect(s.Backward()))

	it := s.End()
	it.Prev()
	assert.Equal(t, 30, it.Value())
	it.Prev()
	it.Next()
	assert.Equal(t, 30, it.Value())
}

func TestNilSetReadsAsEmpty(t *testing.T) {
	var s *Set[int]
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains(1))
	assert.False(t, s.Erase(1))
	assert.True(t, s.Begin().IsEnd())
	assert.True(t, s.Find(1).IsEnd())
	assert.True(t, s.LowerBound(1).IsEnd())
	assert.Empty(t, s.Values())
	assert.Equal(t, "{}", s.String())
	assert.Nil(t, s.Clone())
	_, ok := s.Min()
	assert.False(t, ok)
}

func TestSetMatchesModel(t *testing.T) {
	s := New[int]()
	model := map[int]bool{}
	for i := 0; i < 2000; i++ {
		x := (i * 7919) % 257
		if i%3 == 2 {
			assert.Equal(t, model[x], s.Erase(x))
			delete(model, x)
		} else {
			assert.Equal(t, !model[x], s.Insert(x))
			model[x] = true
		}
	}
	require.NoError(t, s.Check())
	assert.Equal(t, len(model), s.Len())
	values := s.Values()
	assert.True(t, slices.IsSorted(values))
	for _, v := range values {
		assert.True(t, model[v])
	}
}

func TestInsertIntoUninitializedSetPanics(t *testing.T) {
	var s Set[int]
	assert.Panics(t, func() { s.Insert(1) })
	var p *Set[int]
	assert.Panics(t, func() { p.Insert(1) })
	assert.Panics(t, func() { p.Assign(From(1)) })
}
