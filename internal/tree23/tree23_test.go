package tree23

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intKey lets plain ints serve as tree keys in tests, without pulling
// in internal/value and its import-cycle constraints.
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

func keys[V any](t Tree[intKey, V]) []int {
	var out []int
	Each(t, func(k intKey, _ V) bool {
		out = append(out, int(k))
		return true
	})
	return out
}

// TestInsertGetRoundTrip verifies that inserting a shuffled key set and
// reading it back in order reproduces the sorted sequence.
func TestInsertGetRoundTrip(t *testing.T) {
	tr := Empty[intKey, string]()
	order := rand.New(rand.NewSource(1)).Perm(200)
	for _, k := range order {
		tr = tr.Insert(intKey(k), "v")
	}
	require.Equal(t, 200, tr.Count())

	got := keys(tr)
	for i := range got {
		if i > 0 {
			assert.Less(t, got[i-1], got[i])
		}
	}
	for _, k := range order {
		v, ok := tr.Get(intKey(k))
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	}
}

// TestInsertOverwrites verifies that re-inserting an existing key
// replaces its value without changing the count.
func TestInsertOverwrites(t *testing.T) {
	tr := Empty[intKey, string]().Insert(1, "a").Insert(1, "b")
	require.Equal(t, 1, tr.Count())
	v, ok := tr.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

// TestRemoveShrinksAndPreservesOrder inserts then removes half the
// keys in a different order, checking the survivors stay sorted.
func TestRemoveShrinksAndPreservesOrder(t *testing.T) {
	tr := Empty[intKey, int]()
	for i := 0; i < 100; i++ {
		tr = tr.Insert(intKey(i), i)
	}
	removeOrder := rand.New(rand.NewSource(2)).Perm(100)
	for _, k := range removeOrder[:50] {
		tr = tr.Remove(intKey(k))
	}
	require.Equal(t, 50, tr.Count())
	got := keys(tr)
	for i := range got {
		if i > 0 {
			assert.Less(t, got[i-1], got[i])
		}
	}
}

// TestRemoveMissingIsNoop verifies removing an absent key leaves the
// tree unchanged.
func TestRemoveMissingIsNoop(t *testing.T) {
	tr := Empty[intKey, int]().Insert(1, 1).Insert(2, 2)
	after := tr.Remove(99)
	assert.Equal(t, tr.Count(), after.Count())
	assert.Equal(t, keys(tr), keys(after))
}

// TestSplitJoinInverse checks the split/join inverse law: for every
// key k, join(split(m, k)) reconstructs m, and the sides only hold
// keys strictly less/greater than k.
func TestSplitJoinInverse(t *testing.T) {
	tr := Empty[intKey, int]()
	for i := 0; i < 63; i++ {
		tr = tr.Insert(intKey(i), i*i)
	}
	for k := -1; k <= 63; k++ {
		less, matchV, matched, greater := tr.Split(intKey(k))
		for _, lk := range keys(less) {
			assert.Less(t, lk, k)
		}
		for _, gk := range keys(greater) {
			assert.Greater(t, gk, k)
		}
		wantMatch := k >= 0 && k < 63
		require.Equal(t, wantMatch, matched)

		var rejoined Tree[intKey, int]
		if matched {
			assert.Equal(t, k*k, matchV)
			rejoined = Join(less, intKey(k), matchV, greater)
		} else {
			rejoined = Join2(less, greater)
		}
		assert.Equal(t, keys(tr), keys(rejoined))
		assert.Equal(t, tr.Count(), rejoined.Count())
	}
}

// TestSplitConcreteScenario checks Split against a small, hand-traced tree.
func TestSplitConcreteScenario(t *testing.T) {
	tr := Empty[intKey, string]().Insert(1, "a").Insert(2, "b").Insert(3, "c").Insert(4, "d")
	less, matchV, matched, greater := tr.Split(3)
	require.True(t, matched)
	assert.Equal(t, "c", matchV)
	assert.Equal(t, []int{1, 2}, keys(less))
	assert.Equal(t, []int{4}, keys(greater))
}

// TestUnionLeftBias checks that Union keeps the left operand's value
// on a key collision.
func TestUnionLeftBias(t *testing.T) {
	a := Empty[intKey, string]().Insert(1, "a").Insert(2, "b")
	b := Empty[intKey, string]().Insert(2, "X").Insert(3, "c")
	u := Union(a, b)
	v1, _ := u.Get(1)
	v2, _ := u.Get(2)
	v3, _ := u.Get(3)
	assert.Equal(t, "a", v1)
	assert.Equal(t, "b", v2) // a's value wins the collision at key 2
	assert.Equal(t, "c", v3)
	assert.Equal(t, 3, u.Count())
}

// TestUnionIdempotentAndAssociative checks Union is idempotent
// (union(a,a)=a) and associative.
func TestUnionIdempotentAndAssociative(t *testing.T) {
	a := Empty[intKey, int]().Insert(1, 1).Insert(3, 3)
	b := Empty[intKey, int]().Insert(2, 2).Insert(3, 30)
	c := Empty[intKey, int]().Insert(4, 4)

	assert.Equal(t, keys(a), keys(Union(a, a)))

	left := Union(Union(a, b), c)
	right := Union(a, Union(b, c))
	assert.Equal(t, keys(left), keys(right))
}

// TestIntersectionKeepsOnlySharedKeys.
func TestIntersectionKeepsOnlySharedKeys(t *testing.T) {
	a := Empty[intKey, int]().Insert(1, 1).Insert(2, 2).Insert(3, 3)
	b := Empty[intKey, int]().Insert(2, 20).Insert(3, 30).Insert(4, 40)
	i := Intersection(a, b)
	assert.Equal(t, []int{2, 3}, keys(i))
	v, _ := i.Get(2)
	assert.Equal(t, 2, v) // a's value wins, matching union's bias
}

// TestDifferenceOfSelfIsEmpty checks difference(a,a)=empty.
func TestDifferenceOfSelfIsEmpty(t *testing.T) {
	a := Empty[intKey, int]().Insert(1, 1).Insert(2, 2)
	assert.True(t, Difference(a, a).IsEmpty())
}

// TestSymmetricDifferenceMatchesDefinition checks
// symmetric_difference(a,b) = (a∪b)\(a∩b).
func TestSymmetricDifferenceMatchesDefinition(t *testing.T) {
	a := Empty[intKey, int]().Insert(1, 1).Insert(2, 2).Insert(3, 3)
	b := Empty[intKey, int]().Insert(2, 2).Insert(3, 3).Insert(4, 4)
	sd := SymmetricDifference(a, b)
	want := Difference(Union(a, b), Intersection(a, b))
	assert.Equal(t, keys(want), keys(sd))
}

// TestCursorCoverage checks that min→next enumerates every element in
// order, max→prev in reverse, and both stay terminal afterward.
func TestCursorCoverage(t *testing.T) {
	tr := Empty[intKey, int]()
	for i := 0; i < 10; i++ {
		tr = tr.Insert(intKey(i), i)
	}

	c := CursorMin(tr)
	var forward []int
	for {
		k, _, ok := c.Current()
		if !ok {
			break
		}
		forward = append(forward, int(k))
		if !c.Next() {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, forward)
	assert.False(t, c.Next())
	assert.False(t, c.Next())

	c = CursorMax(tr)
	var backward []int
	for {
		k, _, ok := c.Current()
		if !ok {
			break
		}
		backward = append(backward, int(k))
		if !c.Prev() {
			break
		}
	}
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, backward)
	assert.False(t, c.Prev())
	assert.False(t, c.Prev())
}

// TestCursorOnEmptyTree.
func TestCursorOnEmptyTree(t *testing.T) {
	tr := Empty[intKey, int]()
	_, _, ok := CursorMin(tr).Current()
	assert.False(t, ok)
	_, _, ok = CursorMax(tr).Current()
	assert.False(t, ok)
}

// TestCursorCanReverseDirection checks that stepping Next to the end
// and then Prev walks back, exercising the before/after rebuild path.
func TestCursorCanReverseDirection(t *testing.T) {
	tr := Empty[intKey, int]().Insert(1, 1).Insert(2, 2).Insert(3, 3)
	c := CursorMin(tr)
	for c.Next() {
	}
	require.False(t, c.Next())
	require.True(t, c.Prev())
	k, _, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, intKey(3), k)
}
