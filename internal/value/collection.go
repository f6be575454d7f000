package value

import (
	"fen/internal/ordmap"
	"fen/internal/ordset"
)

// SetV is a persistent ordered set of Value, compared lexicographically
// by in-order element sequence, empty less than nonempty.
type SetV struct {
	s ordset.Set[Value]
}

func EmptySet() SetV { return SetV{s: ordset.Empty[Value]()} }

func NewSet(vs []Value) SetV {
	s := ordset.Empty[Value]()
	for _, v := range vs {
		s = s.Insert(v)
	}
	return SetV{s: s}
}

func (SetV) Kind() Kind   { return KindSet }
func (SetV) Truthy() bool { return true }

func (sv SetV) CompareTo(o Value) int {
	if c := compareKind(sv, o); c != 0 {
		return c
	}
	return ordset.Compare(sv.s, o.(SetV).s)
}

func (sv SetV) Count() int             { return sv.s.Count() }
func (sv SetV) Contains(v Value) bool  { return sv.s.Contains(v) }
func (sv SetV) Insert(v Value) SetV    { return SetV{s: sv.s.Insert(v)} }
func (sv SetV) Remove(v Value) SetV    { return SetV{s: sv.s.Remove(v)} }
func (sv SetV) Each(f func(Value) bool) { sv.s.Each(f) }
func (sv SetV) Min() (Value, bool)     { return sv.s.Min() }
func (sv SetV) Max() (Value, bool)     { return sv.s.Max() }

func UnionSet(a, b SetV) SetV        { return SetV{s: ordset.Union(a.s, b.s)} }
func IntersectSet(a, b SetV) SetV    { return SetV{s: ordset.Intersection(a.s, b.s)} }
func DifferenceSet(a, b SetV) SetV   { return SetV{s: ordset.Difference(a.s, b.s)} }
func SymDifferenceSet(a, b SetV) SetV {
	return SetV{s: ordset.SymmetricDifference(a.s, b.s)}
}

// MapV is a persistent ordered associative container keyed by Value,
// compared lexicographically by in-order entry sequence. a's entry
// wins on key collision during Union, matching internal/ordmap's
// left-biased semantics.
type MapV struct {
	m ordmap.Map[Value, Value]
}

func EmptyMap() MapV { return MapV{m: ordmap.Empty[Value, Value]()} }

func (MapV) Kind() Kind   { return KindMap }
func (MapV) Truthy() bool { return true }

func (mv MapV) CompareTo(o Value) int {
	if c := compareKind(mv, o); c != 0 {
		return c
	}
	return ordmap.Compare(mv.m, o.(MapV).m, Compare)
}

func (mv MapV) Count() int                 { return mv.m.Count() }
func (mv MapV) Get(k Value) (Value, bool)  { return mv.m.Get(k) }
func (mv MapV) Contains(k Value) bool      { return mv.m.Contains(k) }
func (mv MapV) Insert(k, v Value) MapV     { return MapV{m: mv.m.Insert(k, v)} }
func (mv MapV) Remove(k Value) MapV        { return MapV{m: mv.m.Remove(k)} }
func (mv MapV) Each(f func(k, v Value) bool) { mv.m.Each(f) }
func (mv MapV) MinEntry() (Value, Value, bool) { return mv.m.MinEntry() }
func (mv MapV) MaxEntry() (Value, Value, bool) { return mv.m.MaxEntry() }

func UnionMap(a, b MapV) MapV      { return MapV{m: ordmap.Union(a.m, b.m)} }
func IntersectMap(a, b MapV) MapV  { return MapV{m: ordmap.Intersection(a.m, b.m)} }
func DifferenceMap(a, b MapV) MapV { return MapV{m: ordmap.Difference(a.m, b.m)} }
func SymDifferenceMap(a, b MapV) MapV {
	return MapV{m: ordmap.SymmetricDifference(a.m, b.m)}
}
