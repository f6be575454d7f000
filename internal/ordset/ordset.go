// Package ordset is the ordered-set face of the persistent tree,
// built on internal/tree23 with an empty-struct value type so set
// nodes carry no payload beyond the key.
package ordset

import "fen/internal/tree23"

type unit = struct{}

// Set is a persistent ordered set.
type Set[K tree23.Ordered[K]] struct {
	t tree23.Tree[K, unit]
}

func Empty[K tree23.Ordered[K]]() Set[K] {
	return Set[K]{}
}

func (s Set[K]) Count() int      { return s.t.Count() }
func (s Set[K]) IsEmpty() bool   { return s.t.IsEmpty() }
func (s Set[K]) Contains(k K) bool {
	return s.t.Contains(k)
}

func (s Set[K]) Insert(k K) Set[K] {
	return Set[K]{t: s.t.Insert(k, unit{})}
}

func (s Set[K]) Remove(k K) Set[K] {
	return Set[K]{t: s.t.Remove(k)}
}

func (s Set[K]) Split(k K) (less Set[K], matched bool, greater Set[K]) {
	l, _, ok, g := s.t.Split(k)
	return Set[K]{t: l}, ok, Set[K]{t: g}
}

func Join[K tree23.Ordered[K]](less Set[K], k K, greater Set[K]) Set[K] {
	return Set[K]{t: tree23.Join(less.t, k, unit{}, greater.t)}
}

func Join2[K tree23.Ordered[K]](less, greater Set[K]) Set[K] {
	return Set[K]{t: tree23.Join2(less.t, greater.t)}
}

func Union[K tree23.Ordered[K]](a, b Set[K]) Set[K] {
	return Set[K]{t: tree23.Union(a.t, b.t)}
}

func Intersection[K tree23.Ordered[K]](a, b Set[K]) Set[K] {
	return Set[K]{t: tree23.Intersection(a.t, b.t)}
}

func Difference[K tree23.Ordered[K]](a, b Set[K]) Set[K] {
	return Set[K]{t: tree23.Difference(a.t, b.t)}
}

func SymmetricDifference[K tree23.Ordered[K]](a, b Set[K]) Set[K] {
	return Set[K]{t: tree23.SymmetricDifference(a.t, b.t)}
}

// Each walks s in key order, stopping early if f returns false.
func (s Set[K]) Each(f func(K) bool) {
	tree23.Each(s.t, func(k K, _ unit) bool { return f(k) })
}

func (s Set[K]) Min() (K, bool) {
	k, _, ok := tree23.CursorMin(s.t).Current()
	return k, ok
}

func (s Set[K]) Max() (K, bool) {
	k, _, ok := tree23.CursorMax(s.t).Current()
	return k, ok
}

// Cursor is ordset's bidirectional ordered cursor.
type Cursor[K tree23.Ordered[K]] struct {
	c *tree23.Cursor[K, unit]
}

func CursorMin[K tree23.Ordered[K]](s Set[K]) Cursor[K] {
	return Cursor[K]{c: tree23.CursorMin(s.t)}
}

func CursorMax[K tree23.Ordered[K]](s Set[K]) Cursor[K] {
	return Cursor[K]{c: tree23.CursorMax(s.t)}
}

func (c Cursor[K]) Current() (K, bool) {
	k, _, ok := c.c.Current()
	return k, ok
}
func (c Cursor[K]) Next() bool { return c.c.Next() }
func (c Cursor[K]) Prev() bool { return c.c.Prev() }

// Equal reports whether a and b hold the same in-order key sequence.
func Equal[K tree23.Ordered[K]](a, b Set[K]) bool {
	if a.Count() != b.Count() {
		return false
	}
	ca, cb := tree23.CursorMin(a.t), tree23.CursorMin(b.t)
	for {
		ka, _, oka := ca.Current()
		kb, _, okb := cb.Current()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if ka.CompareTo(kb) != 0 {
			return false
		}
		ca.Next()
		cb.Next()
	}
}

// Compare orders a and b lexicographically by key sequence, empty less
// than nonempty.
func Compare[K tree23.Ordered[K]](a, b Set[K]) int {
	ca, cb := tree23.CursorMin(a.t), tree23.CursorMin(b.t)
	for {
		ka, _, oka := ca.Current()
		kb, _, okb := cb.Current()
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
		ca.Next()
		cb.Next()
	}
}
