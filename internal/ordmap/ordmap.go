// Package ordmap is the ordered-map face of the persistent tree,
// built directly on internal/tree23's generic engine. It stays
// generic over both key and value so internal/value can instantiate
// Map[Value, Value] without ordmap ever importing internal/value —
// that one-directional dependency is what keeps value/ordmap/tree23
// free of import cycles.
package ordmap

import "fen/internal/tree23"

// Map is a persistent ordered associative container, keyed by any
// type implementing tree23.Ordered.
type Map[K tree23.Ordered[K], V any] struct {
	t tree23.Tree[K, V]
}

// Empty returns the empty map.
func Empty[K tree23.Ordered[K], V any]() Map[K, V] {
	return Map[K, V]{}
}

func (m Map[K, V]) Count() int    { return m.t.Count() }
func (m Map[K, V]) IsEmpty() bool { return m.t.IsEmpty() }

func (m Map[K, V]) Get(k K) (V, bool)   { return m.t.Get(k) }
func (m Map[K, V]) Contains(k K) bool   { return m.t.Contains(k) }
func (m Map[K, V]) Insert(k K, v V) Map[K, V] {
	return Map[K, V]{t: m.t.Insert(k, v)}
}
func (m Map[K, V]) Remove(k K) Map[K, V] {
	return Map[K, V]{t: m.t.Remove(k)}
}

// Split partitions m at k into (less, match?, greater): the matched
// entry is returned out-of-band in neither side.
func (m Map[K, V]) Split(k K) (less Map[K, V], matchV V, matched bool, greater Map[K, V]) {
	l, v, ok, g := m.t.Split(k)
	return Map[K, V]{t: l}, v, ok, Map[K, V]{t: g}
}

// Join reassembles a split map around a pivot entry.
func Join[K tree23.Ordered[K], V any](less Map[K, V], k K, v V, greater Map[K, V]) Map[K, V] {
	return Map[K, V]{t: tree23.Join(less.t, k, v, greater.t)}
}

// Join2 reassembles a split map with no pivot entry of its own.
func Join2[K tree23.Ordered[K], V any](less, greater Map[K, V]) Map[K, V] {
	return Map[K, V]{t: tree23.Join2(less.t, greater.t)}
}

// Union keeps a's value whenever a key collides with b; see
// internal/tree23's Union for why the bias is shape-independent.
func Union[K tree23.Ordered[K], V any](a, b Map[K, V]) Map[K, V] {
	return Map[K, V]{t: tree23.Union(a.t, b.t)}
}

// UnionWith resolves collisions with an explicit merge function,
// generalizing Union beyond the pinned left-wins bias.
func UnionWith[K tree23.Ordered[K], V any](a, b Map[K, V], merge func(a, b V) V) Map[K, V] {
	return Map[K, V]{t: tree23.UnionWith(a.t, b.t, merge)}
}

func Intersection[K tree23.Ordered[K], V any](a, b Map[K, V]) Map[K, V] {
	return Map[K, V]{t: tree23.Intersection(a.t, b.t)}
}

func Difference[K tree23.Ordered[K], V any](a, b Map[K, V]) Map[K, V] {
	return Map[K, V]{t: tree23.Difference(a.t, b.t)}
}

func SymmetricDifference[K tree23.Ordered[K], V any](a, b Map[K, V]) Map[K, V] {
	return Map[K, V]{t: tree23.SymmetricDifference(a.t, b.t)}
}

// Each walks m in key order, stopping early if f returns false.
func (m Map[K, V]) Each(f func(K, V) bool) {
	tree23.Each(m.t, f)
}

// MinEntry and MaxEntry expose the bounds a cursor_min/cursor_max
// built-in would read without building a full cursor.
func (m Map[K, V]) MinEntry() (k K, v V, ok bool) {
	c := tree23.CursorMin(m.t)
	return c.Current()
}

func (m Map[K, V]) MaxEntry() (k K, v V, ok bool) {
	c := tree23.CursorMax(m.t)
	return c.Current()
}

// Cursor is ordmap's bidirectional ordered cursor.
type Cursor[K tree23.Ordered[K], V any] struct {
	c *tree23.Cursor[K, V]
}

func CursorMin[K tree23.Ordered[K], V any](m Map[K, V]) Cursor[K, V] {
	return Cursor[K, V]{c: tree23.CursorMin(m.t)}
}

func CursorMax[K tree23.Ordered[K], V any](m Map[K, V]) Cursor[K, V] {
	return Cursor[K, V]{c: tree23.CursorMax(m.t)}
}

func (c Cursor[K, V]) Current() (K, V, bool) { return c.c.Current() }
func (c Cursor[K, V]) Next() bool            { return c.c.Next() }
func (c Cursor[K, V]) Prev() bool            { return c.c.Prev() }

// Equal reports whether a and b hold the same in-order entry sequence.
// eq compares values (keys compare via K.CompareTo).
func Equal[K tree23.Ordered[K], V any](a, b Map[K, V], eq func(x, y V) bool) bool {
	if a.Count() != b.Count() {
		return false
	}
	ca, cb := tree23.CursorMin(a.t), tree23.CursorMin(b.t)
	for {
		ka, va, oka := ca.Current()
		kb, vb, okb := cb.Current()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if ka.CompareTo(kb) != 0 || !eq(va, vb) {
			return false
		}
		ca.Next()
		cb.Next()
	}
}

// Compare orders a and b lexicographically by entry sequence, empty
// less than nonempty.
func Compare[K tree23.Ordered[K], V any](a, b Map[K, V], cmpV func(x, y V) int) int {
	ca, cb := tree23.CursorMin(a.t), tree23.CursorMin(b.t)
	for {
		ka, va, oka := ca.Current()
		kb, vb, okb := cb.Current()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return 1
		}
		if c := ka.CompareTo(kb); c != 0 {
			return c
		}
		if c := cmpV(va, vb); c != 0 {
			return c
		}
		ca.Next()
		cb.Next()
	}
}
