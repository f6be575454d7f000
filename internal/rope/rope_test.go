package rope

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromInts(vs ...int) Rope[int] {
	return FromSlice(vs)
}

// TestInsertAppendBuildsSequence verifies repeated end-insertion (the
// append pattern arrays use) reproduces the input order.
func TestInsertAppendBuildsSequence(t *testing.T) {
	r := Empty[int]()
	for i := 0; i < 50; i++ {
		var ok bool
		r, ok = r.Insert(r.Count(), i)
		require.True(t, ok)
	}
	assert.Equal(t, 50, r.Count())
	assert.Equal(t, 0, seq0(t, r))
	for i := 0; i < 50; i++ {
		v, ok := r.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func seq0(t *testing.T, r Rope[int]) int {
	t.Helper()
	v, ok := r.Get(0)
	require.True(t, ok)
	return v
}

// TestInsertInMiddleShiftsElements.
func TestInsertInMiddleShiftsElements(t *testing.T) {
	r := fromInts(0, 1, 2, 3, 4)
	r, ok := r.Insert(2, 99)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 99, 2, 3, 4}, r.ToSlice())
}

// TestGetInsertLaw checks get(insert(s,i,v),i)=v for every valid
// insertion point.
func TestGetInsertLaw(t *testing.T) {
	r := fromInts(10, 20, 30, 40)
	for i := 0; i <= r.Count(); i++ {
		withV, ok := r.Insert(i, -1)
		require.True(t, ok)
		got, ok := withV.Get(i)
		require.True(t, ok)
		assert.Equal(t, -1, got)
	}
}

// TestRemoveShiftsElementsLeft.
func TestRemoveShiftsElementsLeft(t *testing.T) {
	r := fromInts(0, 1, 2, 3, 4)
	r, ok := r.Remove(2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 3, 4}, r.ToSlice())
}

// TestOutOfRangeReportsFailure checks that Get/Insert/Remove/Split
// reject indices outside their valid range instead of panicking.
func TestOutOfRangeReportsFailure(t *testing.T) {
	r := fromInts(0, 1, 2)
	_, ok := r.Get(3)
	assert.False(t, ok)
	_, ok = r.Get(-1)
	assert.False(t, ok)
	_, ok = r.Insert(4, 9)
	assert.False(t, ok)
	_, ok = r.Remove(3)
	assert.False(t, ok)
	_, _, ok = r.Split(4)
	assert.False(t, ok)
}

// TestConcatSplitInverse checks concat(split(s,i))=s for every valid
// split point.
func TestConcatSplitInverse(t *testing.T) {
	r := fromInts(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	for i := 0; i <= r.Count(); i++ {
		left, right, ok := r.Split(i)
		require.True(t, ok)
		assert.Equal(t, i, left.Count())
		assert.Equal(t, r.Count()-i, right.Count())
		rejoined := Concat(left, right)
		if diff := cmp.Diff(r.ToSlice(), rejoined.ToSlice()); diff != "" {
			t.Errorf("concat(split(r, %d)) != r (-want +got):\n%s", i, diff)
		}
	}
}

// TestSliceReturnsHalfOpenRange.
func TestSliceReturnsHalfOpenRange(t *testing.T) {
	r := fromInts(0, 1, 2, 3, 4, 5)
	mid, ok := r.Slice(2, 4)
	require.True(t, ok)
	assert.Equal(t, []int{2, 3}, mid.ToSlice())
}

// TestCursorWalkOnThreeElements checks a full forward and backward
// walk: min→10→next→20→next→30→next→false; from max, prev yields 20,
// then 10, then false.
func TestCursorWalkOnThreeElements(t *testing.T) {
	r := fromInts(10, 20, 30)

	c := CursorMin(r)
	v, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, 10, v)
	require.True(t, c.Next())
	v, _ = c.Current()
	assert.Equal(t, 20, v)
	require.True(t, c.Next())
	v, _ = c.Current()
	assert.Equal(t, 30, v)
	assert.False(t, c.Next())

	c = CursorMax(r)
	v, ok = c.Current()
	require.True(t, ok)
	assert.Equal(t, 30, v)
	require.True(t, c.Prev())
	v, _ = c.Current()
	assert.Equal(t, 20, v)
	require.True(t, c.Prev())
	v, _ = c.Current()
	assert.Equal(t, 10, v)
	assert.False(t, c.Prev())
}

// TestUpdateReplacesInPlace.
func TestUpdateReplacesInPlace(t *testing.T) {
	r := fromInts(1, 2, 3)
	r, ok := r.Update(1, 99)
	require.True(t, ok)
	assert.Equal(t, []int{1, 99, 3}, r.ToSlice())
}
