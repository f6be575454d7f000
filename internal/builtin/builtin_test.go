package builtin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fen/internal/value"
)

func TestAddHappyPath(t *testing.T) {
	res, thrown, ok := Add([]value.Value{value.Int(1), value.Int(2)})
	require.True(t, ok, "unexpected throw: %v", thrown)
	assert.Equal(t, value.Int(3), res)
}

func TestAddWrongArityThrowsNumArgs(t *testing.T) {
	_, thrown, ok := Add([]value.Value{value.Int(1)})
	require.False(t, ok)
	tagOf(t, thrown, "err-num-args")
}

func TestAddWrongTypeThrowsErrType(t *testing.T) {
	_, thrown, ok := Add([]value.Value{value.Int(1), value.Bool(true)})
	require.False(t, ok)
	tagOf(t, thrown, "err-type")
}

func TestAddOverflowThrowsErrWrap(t *testing.T) {
	_, thrown, ok := Add([]value.Value{value.Int(1<<62 - 1 + 1<<62), value.Int(1 << 62)})
	require.False(t, ok)
	tagOf(t, thrown, "err-wrap")
}

func TestMulOverflowThrowsErrWrap(t *testing.T) {
	_, thrown, ok := Mul([]value.Value{value.Int(2), value.Int(1 << 62)})
	require.False(t, ok)
	tagOf(t, thrown, "err-wrap")
}

func TestMulMinInt64TimesNegativeOneThrowsErrWrap(t *testing.T) {
	_, thrown, ok := Mul([]value.Value{value.Int(math.MinInt64), value.Int(-1)})
	require.False(t, ok)
	tagOf(t, thrown, "err-wrap")

	_, thrown, ok = Mul([]value.Value{value.Int(-1), value.Int(math.MinInt64)})
	require.False(t, ok)
	tagOf(t, thrown, "err-wrap")
}

func TestDivByZeroThrowsErrZero(t *testing.T) {
	_, thrown, ok := Div([]value.Value{value.Int(1), value.Int(0)})
	require.False(t, ok)
	tagOf(t, thrown, "err-zero")
}

func TestArrGetOutOfRangeThrowsErrLookup(t *testing.T) {
	arr := value.NewArr([]value.Value{value.Int(10)})
	_, thrown, ok := ArrGet([]value.Value{arr, value.Int(5)})
	require.False(t, ok)
	tagOf(t, thrown, "err-lookup")
}

func TestCellGetSetRoundTrip(t *testing.T) {
	c := value.NewCell(1, value.Int(1))
	res, thrown, ok := CellSet([]value.Value{c, value.Int(99)})
	require.True(t, ok, "unexpected throw: %v", thrown)
	assert.Equal(t, value.TheNil, res)

	res, thrown, ok = CellGet([]value.Value{c})
	require.True(t, ok, "unexpected throw: %v", thrown)
	assert.Equal(t, value.Int(99), res)
}

func TestSetInsertAndContains(t *testing.T) {
	s := value.EmptySet()
	s2, thrown, ok := SetInsert([]value.Value{s, value.Int(1)})
	require.True(t, ok, "unexpected throw: %v", thrown)

	found, thrown, ok := SetContains([]value.Value{s2, value.Int(1)})
	require.True(t, ok, "unexpected throw: %v", thrown)
	assert.Equal(t, value.Bool(true), found)
}

func TestStandardRegistryResolvesEveryTag(t *testing.T) {
	reg := Standard()
	for _, tag := range []string{
		"+", "-", "*", "/", "<", "==",
		"arr-get", "arr-insert", "arr-remove", "arr-count",
		"map-get", "map-insert", "set-insert", "set-contains",
		"cell-get", "cell-set",
	} {
		_, ok := reg.Lookup(value.NewFunBuiltin(tag))
		assert.True(t, ok, "tag %q should be registered", tag)
	}
}

func tagOf(t *testing.T, thrown value.Value, want string) {
	t.Helper()
	m, ok := thrown.(value.MapV)
	require.True(t, ok, "thrown value must be a map")
	tag, found := m.Get(value.Keyword("tag"))
	require.True(t, found)
	assert.Equal(t, value.Keyword(want), tag)
}
