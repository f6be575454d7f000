// Package tree23 implements the persistent 2-3 search tree that backs
// the ordered map and the ordered set. One generic engine serves both
// so the rebalancing and cursor machinery exists once for them; the
// indexed rope (internal/rope) is a separate engine of the same shape
// that is addressed by position instead of by key.
//
// Insert propagates a split upward from the point of insertion; remove
// heals underflow at a leaf by borrowing from or merging with a
// sibling; join and join2 reuse the insert machinery to splice two
// trees back together around (or without) a pivot. Every node tracks
// its own element count; the Tree handle tracks height so join can
// walk the taller side's spine in O(|lh-gh|).
package tree23

// Ordered is the key constraint: keys compare against other keys of
// the same type. fen's value.Value implements this directly (see
// internal/value), giving every tree a single, centrally defined
// cross-variant order.
type Ordered[T any] interface {
	CompareTo(other T) int
}

// node is either a leaf (nil *node), a 2-node, or a 3-node. isN3
// discriminates; a 2-node only uses left, k1, v1, right.
type node[K Ordered[K], V any] struct {
	isN3        bool
	left, mid, right *node[K, V]
	k1 K
	v1 V
	k2 K
	v2 V
	count int
}

func count[K Ordered[K], V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.count
}

func newN2[K Ordered[K], V any](l *node[K, V], k K, v V, r *node[K, V]) *node[K, V] {
	return &node[K, V]{left: l, k1: k, v1: v, right: r, count: count(l) + 1 + count(r)}
}

func newN3[K Ordered[K], V any](l *node[K, V], lk K, lv V, m *node[K, V], rk K, rv V, r *node[K, V]) *node[K, V] {
	return &node[K, V]{
		isN3: true,
		left: l, k1: lk, v1: lv,
		mid: m, k2: rk, v2: rv,
		right: r,
		count: count(l) + 1 + count(m) + 1 + count(r),
	}
}

// Tree is an immutable handle: root plus height, so join can find the
// height difference between two trees in O(1) instead of walking
// either spine to measure it.
type Tree[K Ordered[K], V any] struct {
	root   *node[K, V]
	height int
}

// Empty returns the empty tree.
func Empty[K Ordered[K], V any]() Tree[K, V] {
	return Tree[K, V]{}
}

func (t Tree[K, V]) Count() int {
	return count(t.root)
}

func (t Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

func (t Tree[K, V]) Height() int {
	return t.height
}

func get[K Ordered[K], V any](n *node[K, V], k K) (V, bool) {
	for n != nil {
		if !n.isN3 {
			switch c := k.CompareTo(n.k1); {
			case c < 0:
				n = n.left
			case c == 0:
				return n.v1, true
			default:
				n = n.right
			}
			continue
		}
		switch c := k.CompareTo(n.k1); {
		case c < 0:
			n = n.left
		case c == 0:
			return n.v1, true
		default:
			switch c2 := k.CompareTo(n.k2); {
			case c2 < 0:
				n = n.mid
			case c2 == 0:
				return n.v2, true
			default:
				n = n.right
			}
		}
	}
	var zero V
	return zero, false
}

func (t Tree[K, V]) Get(k K) (V, bool) {
	return get(t.root, k)
}

func (t Tree[K, V]) Contains(k K) bool {
	_, ok := t.Get(k)
	return ok
}

// insertResult reports how an insert into a subtree settled: either
// the subtree absorbed it in place (Done) or a key propagated upward
// (Up) because a 3-node under pressure split.
type insertResult[K Ordered[K], V any] struct {
	up    bool
	node  *node[K, V] // valid when !up
	left  *node[K, V] // valid when up
	k     K
	v     V
	right *node[K, V]
}

func doneResult[K Ordered[K], V any](n *node[K, V]) insertResult[K, V] {
	return insertResult[K, V]{node: n}
}

func insert[K Ordered[K], V any](n *node[K, V], k K, v V) insertResult[K, V] {
	if n == nil {
		return insertResult[K, V]{up: true, k: k, v: v}
	}
	if !n.isN3 {
		switch c := k.CompareTo(n.k1); {
		case c < 0:
			return n2HandleInsertL(insert(n.left, k, v), n.k1, n.v1, n.right)
		case c == 0:
			return doneResult(newN2(n.left, k, v, n.right))
		default:
			return n2HandleInsertR(n.left, n.k1, n.v1, insert(n.right, k, v))
		}
	}
	switch c := k.CompareTo(n.k1); {
	case c < 0:
		return n3HandleInsertL(insert(n.left, k, v), n.k1, n.v1, n.mid, n.k2, n.v2, n.right)
	case c == 0:
		return doneResult(newN3(n.left, k, v, n.mid, n.k2, n.v2, n.right))
	default:
		switch c2 := k.CompareTo(n.k2); {
		case c2 < 0:
			return n3HandleInsertM(n.left, n.k1, n.v1, insert(n.mid, k, v), n.k2, n.v2, n.right)
		case c2 == 0:
			return doneResult(newN3(n.left, n.k1, n.v1, n.mid, k, v, n.right))
		default:
			return n3HandleInsertR(n.left, n.k1, n.v1, n.mid, n.k2, n.v2, insert(n.right, k, v))
		}
	}
}

func n2HandleInsertL[K Ordered[K], V any](r insertResult[K, V], k K, v V, right *node[K, V]) insertResult[K, V] {
	if !r.up {
		return doneResult(newN2(r.node, k, v, right))
	}
	return doneResult(newN3(r.left, r.k, r.v, r.right, k, v, right))
}

func n2HandleInsertR[K Ordered[K], V any](left *node[K, V], k K, v V, r insertResult[K, V]) insertResult[K, V] {
	if !r.up {
		return doneResult(newN2(left, k, v, r.node))
	}
	return doneResult(newN3(left, k, v, r.left, r.k, r.v, r.right))
}

func n3HandleInsertL[K Ordered[K], V any](r insertResult[K, V], lk K, lv V, m *node[K, V], rk K, rv V, right *node[K, V]) insertResult[K, V] {
	if !r.up {
		return doneResult(newN3(r.node, lk, lv, m, rk, rv, right))
	}
	return insertResult[K, V]{
		up: true,
		left: newN2(r.left, r.k, r.v, r.right), k: lk, v: lv,
		right: newN2(m, rk, rv, right),
	}
}

func n3HandleInsertM[K Ordered[K], V any](l *node[K, V], lk K, lv V, r insertResult[K, V], rk K, rv V, right *node[K, V]) insertResult[K, V] {
	if !r.up {
		return doneResult(newN3(l, lk, lv, r.node, rk, rv, right))
	}
	return insertResult[K, V]{
		up: true,
		left: newN2(l, lk, lv, r.left), k: r.k, v: r.v,
		right: newN2(r.right, rk, rv, right),
	}
}

func n3HandleInsertR[K Ordered[K], V any](l *node[K, V], lk K, lv V, m *node[K, V], rk K, rv V, r insertResult[K, V]) insertResult[K, V] {
	if !r.up {
		return doneResult(newN3(l, lk, lv, m, rk, rv, r.node))
	}
	return insertResult[K, V]{
		up: true,
		left: newN2(l, lk, lv, m), k: rk, v: rv,
		right: newN2(r.left, r.k, r.v, r.right),
	}
}

// insertRoot applies insert at the root, handling the height increase
// when a split propagates past the root — the only case where the
// tree grows taller.
func insertRoot[K Ordered[K], V any](n *node[K, V], h int, k K, v V) (*node[K, V], int) {
	if n == nil {
		return newN2[K, V](nil, k, v, nil), 1
	}
	r := insert(n, k, v)
	if !r.up {
		return r.node, h
	}
	return newN2(r.left, r.k, r.v, r.right), h + 1
}

func (t Tree[K, V]) Insert(k K, v V) Tree[K, V] {
	root, h := insertRoot(t.root, t.height, k, v)
	return Tree[K, V]{root: root, height: h}
}

// removeResult reports how a remove from a subtree settled: Done means
// the subtree settled at its original height; Up means it underflowed
// by one.
type removeResult[K Ordered[K], V any] struct {
	up   bool
	node *node[K, V]
}

func doneRemove[K Ordered[K], V any](n *node[K, V]) removeResult[K, V] {
	return removeResult[K, V]{node: n}
}

func upRemove[K Ordered[K], V any](n *node[K, V]) removeResult[K, V] {
	return removeResult[K, V]{up: true, node: n}
}

func getMax[K Ordered[K], V any](n *node[K, V]) (K, V) {
	for {
		if !n.isN3 {
			if n.right == nil {
				return n.k1, n.v1
			}
			n = n.right
		} else {
			if n.right == nil {
				return n.k2, n.v2
			}
			n = n.right
		}
	}
}

func getMin[K Ordered[K], V any](n *node[K, V]) (K, V) {
	for {
		if n.left == nil {
			return n.k1, n.v1
		}
		n = n.left
	}
}

func remove[K Ordered[K], V any](n *node[K, V], k K) removeResult[K, V] {
	if n == nil {
		return doneRemove[K, V](nil)
	}
	if !n.isN3 {
		switch c := k.CompareTo(n.k1); {
		case c < 0:
			return n2HandleRemoveL(remove(n.left, k), n.k1, n.v1, n.right)
		case c == 0:
			if n.right == nil {
				return upRemove[K, V](nil)
			}
			maxK, maxV := getMax(n.left)
			return n2HandleRemoveL(remove(n.left, maxK), maxK, maxV, n.right)
		default:
			return n2HandleRemoveR(n.left, n.k1, n.v1, remove(n.right, k))
		}
	}
	switch c := k.CompareTo(n.k1); {
	case c < 0:
		return n3HandleRemoveL(remove(n.left, k), n.k1, n.v1, n.mid, n.k2, n.v2, n.right)
	case c == 0:
		if n.mid == nil {
			return doneRemove(newN2[K, V](nil, n.k2, n.v2, nil))
		}
		maxK, maxV := getMax(n.left)
		return n3HandleRemoveL(remove(n.left, maxK), maxK, maxV, n.mid, n.k2, n.v2, n.right)
	default:
		switch c2 := k.CompareTo(n.k2); {
		case c2 < 0:
			return n3HandleRemoveM(n.left, n.k1, n.v1, remove(n.mid, k), n.k2, n.v2, n.right)
		case c2 == 0:
			if n.right == nil {
				return doneRemove(newN2[K, V](nil, n.k1, n.v1, nil))
			}
			maxK, maxV := getMax(n.mid)
			return n3HandleRemoveM(n.left, n.k1, n.v1, remove(n.mid, maxK), maxK, maxV, n.right)
		default:
			return n3HandleRemoveR(n.left, n.k1, n.v1, n.mid, n.k2, n.v2, remove(n.right, k))
		}
	}
}

func n2HandleRemoveL[K Ordered[K], V any](r removeResult[K, V], k K, v V, right *node[K, V]) removeResult[K, V] {
	if !r.up {
		return doneRemove(newN2(r.node, k, v, right))
	}
	if !right.isN3 {
		return upRemove(newN3(r.node, k, v, right.left, right.k1, right.v1, right.right))
	}
	return doneRemove(newN2(
		newN2(r.node, k, v, right.left), right.k1, right.v1,
		newN2(right.mid, right.k2, right.v2, right.right),
	))
}

func n2HandleRemoveR[K Ordered[K], V any](left *node[K, V], k K, v V, r removeResult[K, V]) removeResult[K, V] {
	if !r.up {
		return doneRemove(newN2(left, k, v, r.node))
	}
	if !left.isN3 {
		return upRemove(newN3(left.left, left.k1, left.v1, left.right, k, v, r.node))
	}
	return doneRemove(newN2(
		newN2(left.left, left.k1, left.v1, left.mid), left.k2, left.v2,
		newN2(left.right, k, v, r.node),
	))
}

func n3HandleRemoveL[K Ordered[K], V any](r removeResult[K, V], lk K, lv V, m *node[K, V], rk K, rv V, right *node[K, V]) removeResult[K, V] {
	if !r.up {
		return doneRemove(newN3(r.node, lk, lv, m, rk, rv, right))
	}
	if !m.isN3 {
		return doneRemove(newN2(
			newN3(r.node, lk, lv, m.left, m.k1, m.v1, m.right), rk, rv, right,
		))
	}
	return doneRemove(newN3(
		newN2(r.node, lk, lv, m.left), m.k1, m.v1,
		newN2(m.mid, m.k2, m.v2, m.right), rk, rv, right,
	))
}

func n3HandleRemoveM[K Ordered[K], V any](l *node[K, V], lk K, lv V, r removeResult[K, V], rk K, rv V, right *node[K, V]) removeResult[K, V] {
	if !r.up {
		return doneRemove(newN3(l, lk, lv, r.node, rk, rv, right))
	}
	if !right.isN3 {
		return doneRemove(newN2(
			l, lk, lv,
			newN3(r.node, rk, rv, right.left, right.k1, right.v1, right.right),
		))
	}
	return doneRemove(newN3(
		l, lk, lv,
		newN2(r.node, rk, rv, right.left), right.k1, right.v1,
		newN2(right.mid, right.k2, right.v2, right.right),
	))
}

func n3HandleRemoveR[K Ordered[K], V any](l *node[K, V], lk K, lv V, m *node[K, V], rk K, rv V, r removeResult[K, V]) removeResult[K, V] {
	if !r.up {
		return doneRemove(newN3(l, lk, lv, m, rk, rv, r.node))
	}
	if !m.isN3 {
		return doneRemove(newN2(
			l, lk, lv,
			newN3(m.left, m.k1, m.v1, m.right, rk, rv, r.node),
		))
	}
	return doneRemove(newN3(
		l, lk, lv,
		newN2(m.left, m.k1, m.v1, m.mid), m.k2, m.v2,
		newN2(m.right, rk, rv, r.node),
	))
}

func (t Tree[K, V]) Remove(k K) Tree[K, V] {
	if t.root == nil {
		return t
	}
	r := remove(t.root, k)
	if !r.up {
		return Tree[K, V]{root: r.node, height: t.height}
	}
	return Tree[K, V]{root: r.node, height: t.height - 1}
}

// joinLesserSmaller walks greater's left spine for hDiff steps, then
// reuses the insert up-propagation machinery to attach lesser+k+v at
// the right depth. joinGreaterSmaller is the mirror image.
func joinLesserSmaller[K Ordered[K], V any](lesser *node[K, V], k K, v V, greater *node[K, V], hDiff int) insertResult[K, V] {
	if hDiff == 0 {
		return insertResult[K, V]{up: true, left: lesser, k: k, v: v, right: greater}
	}
	if !greater.isN3 {
		return n2HandleInsertL(joinLesserSmaller(lesser, k, v, greater.left, hDiff-1), greater.k1, greater.v1, greater.right)
	}
	return n3HandleInsertL(joinLesserSmaller(lesser, k, v, greater.left, hDiff-1), greater.k1, greater.v1, greater.mid, greater.k2, greater.v2, greater.right)
}

func joinGreaterSmaller[K Ordered[K], V any](lesser *node[K, V], k K, v V, greater *node[K, V], hDiff int) insertResult[K, V] {
	if hDiff == 0 {
		return insertResult[K, V]{up: true, left: lesser, k: k, v: v, right: greater}
	}
	if !lesser.isN3 {
		return n2HandleInsertR(lesser.left, lesser.k1, lesser.v1, joinGreaterSmaller(lesser.right, k, v, greater, hDiff-1))
	}
	return n3HandleInsertR(lesser.left, lesser.k1, lesser.v1, lesser.mid, lesser.k2, lesser.v2, joinGreaterSmaller(lesser.right, k, v, greater, hDiff-1))
}

func join[K Ordered[K], V any](lesser *node[K, V], lh int, k K, v V, greater *node[K, V], gh int) (*node[K, V], int) {
	if lesser == nil {
		return insertRoot(greater, gh, k, v)
	}
	if greater == nil {
		return insertRoot(lesser, lh, k, v)
	}
	switch {
	case lh < gh:
		r := joinLesserSmaller(lesser, k, v, greater, gh-lh)
		if !r.up {
			return r.node, gh
		}
		return newN2(r.left, r.k, r.v, r.right), gh + 1
	case lh == gh:
		return newN2(lesser, k, v, greater), gh + 1
	default:
		r := joinGreaterSmaller(lesser, k, v, greater, lh-gh)
		if !r.up {
			return r.node, lh
		}
		return newN2(r.left, r.k, r.v, r.right), lh + 1
	}
}

// Join merges two trees around a pivot (k,v), descending the taller
// side's spine for |lh-gh| steps. The caller guarantees every key in
// less is < k < every key in greater.
func Join[K Ordered[K], V any](less Tree[K, V], k K, v V, greater Tree[K, V]) Tree[K, V] {
	root, h := join(less.root, less.height, k, v, greater.root, greater.height)
	return Tree[K, V]{root: root, height: h}
}

// Join2 joins without a pivot by extracting less's max and joining
// with it.
func Join2[K Ordered[K], V any](less Tree[K, V], greater Tree[K, V]) Tree[K, V] {
	if less.root == nil {
		return greater
	}
	maxK, maxV := getMax(less.root)
	nl := less.Remove(maxK)
	return Join(nl, maxK, maxV, greater)
}

type splitResult[K Ordered[K], V any] struct {
	less, greater     Tree[K, V]
	matchK            K
	matchV            V
	matched           bool
}

func splitNode[K Ordered[K], V any](n *node[K, V], h int, k K) splitResult[K, V] {
	if n == nil {
		return splitResult[K, V]{}
	}
	if !n.isN3 {
		switch c := k.CompareTo(n.k1); {
		case c < 0:
			sub := splitNode(n.left, h-1, k)
			greater := Join(sub.greater, n.k1, n.v1, Tree[K, V]{root: n.right, height: h - 1})
			return splitResult[K, V]{less: sub.less, greater: greater, matchK: sub.matchK, matchV: sub.matchV, matched: sub.matched}
		case c == 0:
			return splitResult[K, V]{
				less:    Tree[K, V]{root: n.left, height: h - 1},
				greater: Tree[K, V]{root: n.right, height: h - 1},
				matchK:  n.k1, matchV: n.v1, matched: true,
			}
		default:
			sub := splitNode(n.right, h-1, k)
			less := Join(Tree[K, V]{root: n.left, height: h - 1}, n.k1, n.v1, sub.less)
			return splitResult[K, V]{less: less, greater: sub.greater, matchK: sub.matchK, matchV: sub.matchV, matched: sub.matched}
		}
	}
	switch c := k.CompareTo(n.k1); {
	case c < 0:
		sub := splitNode(n.left, h-1, k)
		tmp := Join(sub.greater, n.k1, n.v1, Tree[K, V]{root: n.mid, height: h - 1})
		greater := Join(tmp, n.k2, n.v2, Tree[K, V]{root: n.right, height: h - 1})
		return splitResult[K, V]{less: sub.less, greater: greater, matchK: sub.matchK, matchV: sub.matchV, matched: sub.matched}
	case c == 0:
		return splitResult[K, V]{
			less:    Tree[K, V]{root: n.left, height: h - 1},
			greater: Tree[K, V]{root: newN2(n.mid, n.k2, n.v2, n.right), height: h},
			matchK:  n.k1, matchV: n.v1, matched: true,
		}
	default:
		switch c2 := k.CompareTo(n.k2); {
		case c2 < 0:
			sub := splitNode(n.mid, h-1, k)
			less := Join(Tree[K, V]{root: n.left, height: h - 1}, n.k1, n.v1, sub.less)
			greater := Join(sub.greater, n.k2, n.v2, Tree[K, V]{root: n.right, height: h - 1})
			return splitResult[K, V]{less: less, greater: greater, matchK: sub.matchK, matchV: sub.matchV, matched: sub.matched}
		case c2 == 0:
			return splitResult[K, V]{
				less:    Tree[K, V]{root: newN2(n.left, n.k1, n.v1, n.mid), height: h},
				greater: Tree[K, V]{root: n.right, height: h - 1},
				matchK:  n.k2, matchV: n.v2, matched: true,
			}
		default:
			sub := splitNode(n.right, h-1, k)
			tmp := Join(Tree[K, V]{root: n.mid, height: h - 1}, n.k2, n.v2, sub.less)
			less := Join(Tree[K, V]{root: n.left, height: h - 1}, n.k1, n.v1, tmp)
			return splitResult[K, V]{less: less, greater: sub.greater, matchK: sub.matchK, matchV: sub.matchV, matched: sub.matched}
		}
	}
}

// Split partitions t at k into (less, matched-entry?, greater): the
// matched entry, if any, is returned out-of-band in neither side.
func (t Tree[K, V]) Split(k K) (less Tree[K, V], matchV V, matched bool, greater Tree[K, V]) {
	r := splitNode(t.root, t.height, k)
	return r.less, r.matchV, r.matched, r.greater
}
