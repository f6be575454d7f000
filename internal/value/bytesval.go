package value

import "fen/internal/rope"

// Bytes is a persistent byte sequence, compared lexicographically by
// byte.
type Bytes struct {
	b rope.Rope[byte]
}

func NewBytes(bs []byte) Bytes {
	return Bytes{b: rope.FromSlice(bs)}
}

func (Bytes) Kind() Kind   { return KindBytes }
func (Bytes) Truthy() bool { return true }

func (bv Bytes) CompareTo(o Value) int {
	if c := compareKind(bv, o); c != 0 {
		return c
	}
	return rope.Compare(bv.b, o.(Bytes).b, cmpByte)
}

func cmpByte(a, b byte) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (bv Bytes) Count() int            { return bv.b.Count() }
func (bv Bytes) Get(i int) (byte, bool) { return bv.b.Get(i) }

func (bv Bytes) Insert(i int, b byte) (Bytes, bool) {
	nb, ok := bv.b.Insert(i, b)
	return Bytes{b: nb}, ok
}

func (bv Bytes) Remove(i int) (Bytes, bool) {
	nb, ok := bv.b.Remove(i)
	return Bytes{b: nb}, ok
}

func (bv Bytes) Update(i int, b byte) (Bytes, bool) {
	nb, ok := bv.b.Update(i, b)
	return Bytes{b: nb}, ok
}

func (bv Bytes) Slice(lo, hi int) (Bytes, bool) {
	nb, ok := bv.b.Slice(lo, hi)
	return Bytes{b: nb}, ok
}

func ConcatBytes(a, b Bytes) Bytes {
	return Bytes{b: rope.Concat(a.b, b.b)}
}

func (bv Bytes) ToSlice() []byte { return bv.b.ToSlice() }

func (bv Bytes) CursorMin() *rope.Cursor[byte] { return rope.CursorMin(bv.b) }
func (bv Bytes) CursorMax() *rope.Cursor[byte] { return rope.CursorMax(bv.b) }
