package gctx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fen/internal/value"
)

func TestCountersAreIndependentAndMonotonic(t *testing.T) {
	c := New()
	assert.Equal(t, uint64(1), c.Gensym.Next())
	assert.Equal(t, uint64(2), c.Gensym.Next())
	assert.Equal(t, uint64(1), c.ClosureID.Next())
	assert.Equal(t, uint64(1), c.CellID.Next())
}

func TestRequireCacheMissThenHit(t *testing.T) {
	c := New()
	opts := value.EmptyMap().Insert(value.Keyword("verbose"), value.Bool(true))

	_, _, ok := c.LookupRequire("/a.fen", opts)
	assert.False(t, ok)

	c.StoreRequire("/a.fen", opts, value.Int(42), false)

	result, failed, ok := c.LookupRequire("/a.fen", opts)
	assert.True(t, ok)
	assert.False(t, failed)
	assert.Equal(t, value.Int(42), result)
}

func TestRequireCacheDistinguishesByOptionValueEquality(t *testing.T) {
	c := New()
	optsA := value.EmptyMap().Insert(value.Keyword("mode"), value.Keyword("a"))
	optsB := value.EmptyMap().Insert(value.Keyword("mode"), value.Keyword("b"))

	c.StoreRequire("/a.fen", optsA, value.Int(1), false)

	_, _, ok := c.LookupRequire("/a.fen", optsB)
	assert.False(t, ok, "different option map must not hit a differently-keyed cache entry")

	result, _, ok := c.LookupRequire("/a.fen", optsA)
	assert.True(t, ok)
	assert.Equal(t, value.Int(1), result)
}

func TestRequireCacheStoreReplacesPriorEntryForSameKey(t *testing.T) {
	c := New()
	opts := value.EmptyMap().Insert(value.Keyword("verbose"), value.Bool(true))

	c.StoreRequire("/a.fen", opts, value.Int(1), false)
	c.StoreRequire("/a.fen", opts, value.Int(2), false)

	result, failed, ok := c.LookupRequire("/a.fen", opts)
	assert.True(t, ok)
	assert.False(t, failed)
	assert.Equal(t, value.Int(2), result, "a second store under the same key must replace the first")
}

func TestRequireCacheRemembersFailureToo(t *testing.T) {
	c := New()
	opts := value.EmptyMap()
	c.StoreRequire("/broken.fen", opts, value.Keyword("err-require"), true)

	result, failed, ok := c.LookupRequire("/broken.fen", opts)
	assert.True(t, ok)
	assert.True(t, failed)
	assert.Equal(t, value.Keyword("err-require"), result)
}
