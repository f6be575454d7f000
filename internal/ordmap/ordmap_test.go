package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intKey int

func (a intKey) CompareTo(b intKey) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func eqInt(a, b int) bool { return a == b }
func cmpInt(a, b int) int { return a - b }

// TestEqualUsesInOrderSequence checks that two maps built by different
// insertion orders but with the same entries compare equal, since
// equality is defined over the in-order sequence of entries, not the
// tree shape.
func TestEqualUsesInOrderSequence(t *testing.T) {
	a := Empty[intKey, int]().Insert(1, 1).Insert(2, 2).Insert(3, 3)
	b := Empty[intKey, int]().Insert(3, 3).Insert(1, 1).Insert(2, 2)
	assert.True(t, Equal(a, b, eqInt))

	c := b.Insert(3, 30)
	assert.False(t, Equal(a, c, eqInt))
}

// TestCompareEmptyLessThanNonEmpty checks that an empty map compares
// less than any nonempty one.
func TestCompareEmptyLessThanNonEmpty(t *testing.T) {
	empty := Empty[intKey, int]()
	nonEmpty := Empty[intKey, int]().Insert(1, 1)
	assert.Equal(t, -1, Compare(empty, nonEmpty, cmpInt))
	assert.Equal(t, 1, Compare(nonEmpty, empty, cmpInt))
	assert.Equal(t, 0, Compare(empty, empty, cmpInt))
}

// TestCompareLexicographic.
func TestCompareLexicographic(t *testing.T) {
	a := Empty[intKey, int]().Insert(1, 1).Insert(2, 2)
	b := Empty[intKey, int]().Insert(1, 1).Insert(2, 3)
	assert.Equal(t, -1, Compare(a, b, cmpInt))
}

// TestUnionWithCustomMerge checks UnionWith generalizes Union's pinned
// left-bias to an arbitrary merge function.
func TestUnionWithCustomMerge(t *testing.T) {
	a := Empty[intKey, int]().Insert(1, 10)
	b := Empty[intKey, int]().Insert(1, 5)
	sum := UnionWith(a, b, func(x, y int) int { return x + y })
	v, ok := sum.Get(1)
	require.True(t, ok)
	assert.Equal(t, 15, v)
}

// TestMinMaxEntry.
func TestMinMaxEntry(t *testing.T) {
	m := Empty[intKey, string]().Insert(5, "e").Insert(1, "a").Insert(3, "c")
	k, v, ok := m.MinEntry()
	require.True(t, ok)
	assert.Equal(t, intKey(1), k)
	assert.Equal(t, "a", v)

	k, v, ok = m.MaxEntry()
	require.True(t, ok)
	assert.Equal(t, intKey(5), k)
	assert.Equal(t, "e", v)
}
