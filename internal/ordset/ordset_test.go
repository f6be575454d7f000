package ordset

import (
	"testing"

	"github.com/stretchr/testify/assert"
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

func build(vs ...int) Set[intKey] {
	s := Empty[intKey]()
	for _, v := range vs {
		s = s.Insert(intKey(v))
	}
	return s
}

// TestSetAlgebraIdentities checks the standard set-algebra identities
// for a concrete pair of sets.
func TestSetAlgebraIdentities(t *testing.T) {
	a := build(1, 2, 3)
	b := build(2, 3, 4)

	assert.True(t, Equal(Union(a, a), a))
	assert.True(t, Equal(Difference(a, a), Empty[intKey]()))
	assert.True(t, Equal(Union(a, b), build(1, 2, 3, 4)))
	assert.True(t, Equal(Intersection(a, b), build(2, 3)))
	assert.True(t, Equal(SymmetricDifference(a, b), Difference(Union(a, b), Intersection(a, b))))
}

// TestEqualIgnoresInsertionOrder.
func TestEqualIgnoresInsertionOrder(t *testing.T) {
	a := build(3, 1, 2)
	b := build(1, 2, 3)
	assert.True(t, Equal(a, b))
}

// TestCompareEmptyLessThanNonEmpty.
func TestCompareEmptyLessThanNonEmpty(t *testing.T) {
	assert.Equal(t, -1, Compare(Empty[intKey](), build(1)))
	assert.Equal(t, 1, Compare(build(1), Empty[intKey]()))
}

// TestMinMax.
func TestMinMax(t *testing.T) {
	s := build(5, 1, 3)
	min, ok := s.Min()
	assert.True(t, ok)
	assert.Equal(t, intKey(1), min)
	max, ok := s.Max()
	assert.True(t, ok)
	assert.Equal(t, intKey(5), max)
}
