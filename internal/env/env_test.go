package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreThenLoadRoundTrips(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.Store(0, 2, "hello"))
	v, err := e.Load(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestLoadUnwrittenSlotIsNilNotError(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.Store(0, 5, "x"))
	v, err := e.Load(0, 0)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestLoadWalksUpParentChain(t *testing.T) {
	grandparent := New(nil)
	require.NoError(t, grandparent.Store(0, 0, "root"))
	parent := New(grandparent)
	child := New(parent)

	v, err := child.Load(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "root", v)
}

func TestStoreMutatesSharedFrameVisibleToAllHolders(t *testing.T) {
	parent := New(nil)
	childA := New(parent)
	childB := New(parent)

	require.NoError(t, childA.Store(1, 0, "shared"))
	v, err := childB.Load(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "shared", v)
}

func TestWalkPastChainDepthReportsContractViolation(t *testing.T) {
	e := New(nil)
	_, err := e.Load(1, 0)
	assert.Error(t, err)
}

func TestParentReturnsNilAtTop(t *testing.T) {
	e := New(nil)
	assert.Nil(t, e.Parent())

	child := New(e)
	assert.Same(t, e, child.Parent())
}
