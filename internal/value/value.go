// Package value implements the value universe: a tagged sum over
// atomics, identifiers, the persistent collections in
// internal/tree23/internal/rope, and function/cell handles, with one
// fixed total order spanning every variant. internal/tree23,
// internal/rope, internal/ordmap, and internal/ordset are all generic
// and never import this package; Value instantiates them (Arr/App
// over rope.Rope[Value], Set over ordset.Set[Value], Map over
// ordmap.Map[Value, Value]), keeping the dependency one-directional so
// no import cycle can form.
package value

// Value is any member of the value universe. Every concrete variant
// implements CompareTo against the Value interface itself, which
// satisfies internal/tree23's Ordered[Value] constraint directly —
// Set and Map instantiate their trees with Value as the key type.
type Value interface {
	Kind() Kind
	CompareTo(other Value) int
	Truthy() bool
}

// Equal is equality by the cross-variant order: every variant's
// equality check is equivalent to CompareTo returning 0 (floats are
// NaN-free and zero-normalized specifically to make this hold for
// them too).
func Equal(a, b Value) bool {
	return a.CompareTo(b) == 0
}

// compareKind orders by Kind first; returns 0 only when a and b share
// a Kind, in which case the caller compares payload.
func compareKind(a, b Value) int {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
