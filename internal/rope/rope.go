// Package rope implements a persistent indexed sequence: a 2-3 tree
// keyed by subtree position rather than by comparing user keys. It is
// structurally similar to internal/tree23 (same 2-node/3-node shape,
// the same up-propagating insert and borrow/merge remove, the same
// spine-walking join) but the traversal decision at every node is
// "which index range does i fall in" instead of a key comparison, so
// it is a separate engine rather than an instantiation of tree23.
package rope

// node is either a leaf (nil), a 2-node (left, v1, right), or a
// 3-node (left, v1, mid, v2, right). count is the subtree's total
// element count, used to decide which child an index falls into.
type node[V any] struct {
	isN3             bool
	left, mid, right *node[V]
	v1, v2           V
	count            int
}

func count[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.count
}

func newN2[V any](l *node[V], v V, r *node[V]) *node[V] {
	return &node[V]{left: l, v1: v, right: r, count: count(l) + 1 + count(r)}
}

func newN3[V any](l *node[V], v1 V, m *node[V], v2 V, r *node[V]) *node[V] {
	return &node[V]{
		isN3: true, left: l, v1: v1, mid: m, v2: v2, right: r,
		count: count(l) + 1 + count(m) + 1 + count(r),
	}
}

// Rope is an immutable handle: root plus height, mirroring
// tree23.Tree so Join can walk the taller side's spine in O(|lh-gh|).
type Rope[V any] struct {
	root   *node[V]
	height int
}

// Empty returns the empty sequence.
func Empty[V any]() Rope[V] {
	return Rope[V]{}
}

func (r Rope[V]) Count() int {
	return count(r.root)
}

func (r Rope[V]) IsEmpty() bool {
	return r.root == nil
}

func (r Rope[V]) Height() int {
	return r.height
}

func get[V any](n *node[V], i int) (V, bool) {
	for n != nil {
		lc := count(n.left)
		if i < lc {
			n = n.left
			continue
		}
		if i == lc {
			return n.v1, true
		}
		i -= lc + 1
		if !n.isN3 {
			n = n.right
			continue
		}
		mc := count(n.mid)
		if i < mc {
			n = n.mid
			continue
		}
		if i == mc {
			return n.v2, true
		}
		i -= mc + 1
		n = n.right
	}
	var zero V
	return zero, false
}

// Get returns the element at position i, or ok=false if i is out of
// range. This package reports out-of-range access as a plain bool;
// callers are free to turn that into a richer error of their own.
func (r Rope[V]) Get(i int) (V, bool) {
	if i < 0 || i >= r.Count() {
		var zero V
		return zero, false
	}
	return get(r.root, i)
}

func update[V any](n *node[V], i int, v V) *node[V] {
	lc := count(n.left)
	if i < lc {
		return newN2Like(n, update(n.left, i, v), n.right)
	}
	if i == lc {
		if !n.isN3 {
			return newN2(n.left, v, n.right)
		}
		return newN3(n.left, v, n.mid, n.v2, n.right)
	}
	j := i - lc - 1
	if !n.isN3 {
		return newN2(n.left, n.v1, update(n.right, j, v))
	}
	mc := count(n.mid)
	if j < mc {
		return newN3(n.left, n.v1, update(n.mid, j, v), n.v2, n.right)
	}
	if j == mc {
		return newN3(n.left, n.v1, n.mid, v, n.right)
	}
	return newN3(n.left, n.v1, n.mid, n.v2, update(n.right, j-mc-1, v))
}

// newN2Like rebuilds a node with a replaced left child, preserving
// whether it was a 2- or 3-node.
func newN2Like[V any](old *node[V], left, right *node[V]) *node[V] {
	if !old.isN3 {
		return newN2(left, old.v1, right)
	}
	return newN3(left, old.v1, old.mid, old.v2, right)
}

// Update returns a copy of r with position i replaced by v.
func (r Rope[V]) Update(i int, v V) (Rope[V], bool) {
	if i < 0 || i >= r.Count() {
		return r, false
	}
	return Rope[V]{root: update(r.root, i, v), height: r.height}, true
}

// insertResult mirrors tree23's up-propagating insert result.
type insertResult[V any] struct {
	up    bool
	node  *node[V]
	left  *node[V]
	v     V
	right *node[V]
}

func doneResult[V any](n *node[V]) insertResult[V] {
	return insertResult[V]{node: n}
}

// insertAt inserts v so that it becomes element i of the subtree
// rooted at n (0 <= i <= count(n)), shifting elements at and after i
// one to the right.
func insertAt[V any](n *node[V], i int, v V) insertResult[V] {
	if n == nil {
		return insertResult[V]{up: true, v: v}
	}
	lc := count(n.left)
	if !n.isN3 {
		if i <= lc {
			return n2HandleInsertL(insertAt(n.left, i, v), n.v1, n.right)
		}
		return n2HandleInsertR(n.left, n.v1, insertAt(n.right, i-lc-1, v))
	}
	mc := count(n.mid)
	if i <= lc {
		return n3HandleInsertL(insertAt(n.left, i, v), n.v1, n.mid, n.v2, n.right)
	}
	j := i - lc - 1
	if j <= mc {
		return n3HandleInsertM(n.left, n.v1, insertAt(n.mid, j, v), n.v2, n.right)
	}
	return n3HandleInsertR(n.left, n.v1, n.mid, n.v2, insertAt(n.right, j-mc-1, v))
}

func n2HandleInsertL[V any](r insertResult[V], v V, right *node[V]) insertResult[V] {
	if !r.up {
		return doneResult(newN2(r.node, v, right))
	}
	return doneResult(newN3(r.left, r.v, r.right, v, right))
}

func n2HandleInsertR[V any](left *node[V], v V, r insertResult[V]) insertResult[V] {
	if !r.up {
		return doneResult(newN2(left, v, r.node))
	}
	return doneResult(newN3(left, v, r.left, r.v, r.right))
}

func n3HandleInsertL[V any](r insertResult[V], v1 V, m *node[V], v2 V, right *node[V]) insertResult[V] {
	if !r.up {
		return doneResult(newN3(r.node, v1, m, v2, right))
	}
	return insertResult[V]{up: true, left: newN2(r.left, r.v, r.right), v: v1, right: newN2(m, v2, right)}
}

func n3HandleInsertM[V any](l *node[V], v1 V, r insertResult[V], v2 V, right *node[V]) insertResult[V] {
	if !r.up {
		return doneResult(newN3(l, v1, r.node, v2, right))
	}
	return insertResult[V]{up: true, left: newN2(l, v1, r.left), v: r.v, right: newN2(r.right, v2, right)}
}

func n3HandleInsertR[V any](l *node[V], v1 V, m *node[V], v2 V, r insertResult[V]) insertResult[V] {
	if !r.up {
		return doneResult(newN3(l, v1, m, v2, r.node))
	}
	return insertResult[V]{up: true, left: newN2(l, v1, m), v: v2, right: newN2(r.left, r.v, r.right)}
}

func insertRoot[V any](n *node[V], h int, i int, v V) (*node[V], int) {
	if n == nil {
		return newN2[V](nil, v, nil), 1
	}
	r := insertAt(n, i, v)
	if !r.up {
		return r.node, h
	}
	return newN2(r.left, r.v, r.right), h + 1
}

// Insert returns a copy of r with v inserted at position i (0 <= i <=
// Count()), shifting later elements right by one.
func (r Rope[V]) Insert(i int, v V) (Rope[V], bool) {
	if i < 0 || i > r.Count() {
		return r, false
	}
	root, h := insertRoot(r.root, r.height, i, v)
	return Rope[V]{root: root, height: h}, true
}

// removeResult mirrors tree23's Remove enum.
type removeResult[V any] struct {
	up   bool
	node *node[V]
}

func doneRemove[V any](n *node[V]) removeResult[V] {
	return removeResult[V]{node: n}
}

func upRemove[V any](n *node[V]) removeResult[V] {
	return removeResult[V]{up: true, node: n}
}

func getMax[V any](n *node[V]) V {
	for {
		if !n.isN3 {
			if n.right == nil {
				return n.v1
			}
			n = n.right
		} else {
			if n.right == nil {
				return n.v2
			}
			n = n.right
		}
	}
}

func removeMax[V any](n *node[V]) removeResult[V] {
	if !n.isN3 {
		if n.right == nil {
			return upRemove[V](nil)
		}
		return n2HandleRemoveR(n.left, n.v1, removeMax(n.right))
	}
	if n.right == nil {
		return doneRemove(newN2[V](nil, n.v1, nil))
	}
	return n3HandleRemoveR(n.left, n.v1, n.mid, n.v2, removeMax(n.right))
}

func removeAt[V any](n *node[V], i int) removeResult[V] {
	if n == nil {
		return doneRemove[V](nil)
	}
	lc := count(n.left)
	if !n.isN3 {
		if i < lc {
			return n2HandleRemoveL(removeAt(n.left, i), n.v1, n.right)
		}
		if i == lc {
			if n.left == nil {
				return upRemove[V](nil)
			}
			nv := getMax(n.left)
			return n2HandleRemoveL(removeMax(n.left), nv, n.right)
		}
		return n2HandleRemoveR(n.left, n.v1, removeAt(n.right, i-lc-1))
	}
	mc := count(n.mid)
	if i < lc {
		return n3HandleRemoveL(removeAt(n.left, i), n.v1, n.mid, n.v2, n.right)
	}
	if i == lc {
		if n.left == nil {
			return doneRemove(newN2[V](nil, n.v2, nil))
		}
		nv := getMax(n.left)
		return n3HandleRemoveL(removeMax(n.left), nv, n.mid, n.v2, n.right)
	}
	j := i - lc - 1
	if j < mc {
		return n3HandleRemoveM(n.left, n.v1, removeAt(n.mid, j), n.v2, n.right)
	}
	if j == mc {
		if n.mid == nil {
			return doneRemove(newN2[V](nil, n.v1, nil))
		}
		nv := getMax(n.mid)
		return n3HandleRemoveM(n.left, n.v1, removeMax(n.mid), nv, n.right)
	}
	return n3HandleRemoveR(n.left, n.v1, n.mid, n.v2, removeAt(n.right, j-mc-1))
}

func n2HandleRemoveL[V any](r removeResult[V], v V, right *node[V]) removeResult[V] {
	if !r.up {
		return doneRemove(newN2(r.node, v, right))
	}
	if !right.isN3 {
		return upRemove(newN3(r.node, v, right.left, right.v1, right.right))
	}
	return doneRemove(newN2(newN2(r.node, v, right.left), right.v1, newN2(right.mid, right.v2, right.right)))
}

func n2HandleRemoveR[V any](left *node[V], v V, r removeResult[V]) removeResult[V] {
	if !r.up {
		return doneRemove(newN2(left, v, r.node))
	}
	if !left.isN3 {
		return upRemove(newN3(left.left, left.v1, left.right, v, r.node))
	}
	return doneRemove(newN2(newN2(left.left, left.v1, left.mid), left.v2, newN2(left.right, v, r.node)))
}

func n3HandleRemoveL[V any](r removeResult[V], v1 V, m *node[V], v2 V, right *node[V]) removeResult[V] {
	if !r.up {
		return doneRemove(newN3(r.node, v1, m, v2, right))
	}
	if !m.isN3 {
		return doneRemove(newN2(newN3(r.node, v1, m.left, m.v1, m.right), v2, right))
	}
	return doneRemove(newN3(newN2(r.node, v1, m.left), m.v1, newN2(m.mid, m.v2, m.right), v2, right))
}

func n3HandleRemoveM[V any](l *node[V], v1 V, r removeResult[V], v2 V, right *node[V]) removeResult[V] {
	if !r.up {
		return doneRemove(newN3(l, v1, r.node, v2, right))
	}
	if !right.isN3 {
		return doneRemove(newN2(l, v1, newN3(r.node, v2, right.left, right.v1, right.right)))
	}
	return doneRemove(newN3(l, v1, newN2(r.node, v2, right.left), right.v1, newN2(right.mid, right.v2, right.right)))
}

func n3HandleRemoveR[V any](l *node[V], v1 V, m *node[V], v2 V, r removeResult[V]) removeResult[V] {
	if !r.up {
		return doneRemove(newN3(l, v1, m, v2, r.node))
	}
	if !m.isN3 {
		return doneRemove(newN2(l, v1, newN3(m.left, m.v1, m.right, v2, r.node)))
	}
	return doneRemove(newN3(l, v1, newN2(m.left, m.v1, m.mid), m.v2, newN2(m.right, v2, r.node)))
}

// Remove returns a copy of r with the element at position i removed.
func (r Rope[V]) Remove(i int) (Rope[V], bool) {
	if i < 0 || i >= r.Count() {
		return r, false
	}
	result := removeAt(r.root, i)
	if !result.up {
		return Rope[V]{root: result.node, height: r.height}, true
	}
	return Rope[V]{root: result.node, height: r.height - 1}, true
}

func joinLesserSmaller[V any](lesser *node[V], v V, greater *node[V], hDiff int) insertResult[V] {
	if hDiff == 0 {
		return insertResult[V]{up: true, left: lesser, v: v, right: greater}
	}
	if !greater.isN3 {
		return n2HandleInsertL(joinLesserSmaller(lesser, v, greater.left, hDiff-1), greater.v1, greater.right)
	}
	return n3HandleInsertL(joinLesserSmaller(lesser, v, greater.left, hDiff-1), greater.v1, greater.mid, greater.v2, greater.right)
}

func joinGreaterSmaller[V any](lesser *node[V], v V, greater *node[V], hDiff int) insertResult[V] {
	if hDiff == 0 {
		return insertResult[V]{up: true, left: lesser, v: v, right: greater}
	}
	if !lesser.isN3 {
		return n2HandleInsertR(lesser.left, lesser.v1, joinGreaterSmaller(lesser.right, v, greater, hDiff-1))
	}
	return n3HandleInsertR(lesser.left, lesser.v1, lesser.mid, lesser.v2, joinGreaterSmaller(lesser.right, v, greater, hDiff-1))
}

func join[V any](lesser *node[V], lh int, v V, greater *node[V], gh int) (*node[V], int) {
	if lesser == nil {
		return insertRoot(greater, gh, 0, v)
	}
	if greater == nil {
		return insertRoot(lesser, lh, count(lesser), v)
	}
	switch {
	case lh < gh:
		r := joinLesserSmaller(lesser, v, greater, gh-lh)
		if !r.up {
			return r.node, gh
		}
		return newN2(r.left, r.v, r.right), gh + 1
	case lh == gh:
		return newN2(lesser, v, greater), gh + 1
	default:
		r := joinGreaterSmaller(lesser, v, greater, lh-gh)
		if !r.up {
			return r.node, lh
		}
		return newN2(r.left, r.v, r.right), lh + 1
	}
}

// Join glues lesser, then v, then greater into one sequence, descending
// the taller side's spine for |lh-gh| steps.
func Join[V any](lesser Rope[V], v V, greater Rope[V]) Rope[V] {
	root, h := join(lesser.root, lesser.height, v, greater.root, greater.height)
	return Rope[V]{root: root, height: h}
}

// Concat appends b's elements after a's, implemented as Join without
// a pivot by extracting a's last element, mirroring tree23.Join2.
func Concat[V any](a, b Rope[V]) Rope[V] {
	if a.root == nil {
		return b
	}
	last := getMax(a.root)
	rest, _ := a.Remove(a.Count() - 1)
	return Join(rest, last, b)
}

type splitResult[V any] struct {
	less, greater Rope[V]
}

func splitNode[V any](n *node[V], h int, i int) splitResult[V] {
	if n == nil {
		return splitResult[V]{}
	}
	lc := count(n.left)
	if !n.isN3 {
		if i < lc {
			sub := splitNode(n.left, h-1, i)
			greater := Join(sub.greater, n.v1, Rope[V]{root: n.right, height: h - 1})
			return splitResult[V]{less: sub.less, greater: greater}
		}
		if i == lc {
			return splitResult[V]{less: Rope[V]{root: n.left, height: h - 1}, greater: Rope[V]{root: n.right, height: h - 1}}
		}
		sub := splitNode(n.right, h-1, i-lc-1)
		less := Join(Rope[V]{root: n.left, height: h - 1}, n.v1, sub.less)
		return splitResult[V]{less: less, greater: sub.greater}
	}
	mc := count(n.mid)
	if i < lc {
		sub := splitNode(n.left, h-1, i)
		tmp := Join(sub.greater, n.v1, Rope[V]{root: n.mid, height: h - 1})
		greater := Join(tmp, n.v2, Rope[V]{root: n.right, height: h - 1})
		return splitResult[V]{less: sub.less, greater: greater}
	}
	if i == lc {
		return splitResult[V]{
			less:    Rope[V]{root: n.left, height: h - 1},
			greater: Rope[V]{root: newN2(n.mid, n.v2, n.right), height: h},
		}
	}
	j := i - lc - 1
	if j < mc {
		sub := splitNode(n.mid, h-1, j)
		less := Join(Rope[V]{root: n.left, height: h - 1}, n.v1, sub.less)
		greater := Join(sub.greater, n.v2, Rope[V]{root: n.right, height: h - 1})
		return splitResult[V]{less: less, greater: greater}
	}
	if j == mc {
		return splitResult[V]{
			less:    Rope[V]{root: newN2(n.left, n.v1, n.mid), height: h},
			greater: Rope[V]{root: n.right, height: h - 1},
		}
	}
	sub := splitNode(n.right, h-1, j-mc-1)
	tmp := Join(Rope[V]{root: n.mid, height: h - 1}, n.v2, sub.less)
	less := Join(Rope[V]{root: n.left, height: h - 1}, n.v1, tmp)
	return splitResult[V]{less: less, greater: sub.greater}
}

// Split partitions r at position i into (left, right), left holding
// the first i elements. 0 <= i <= Count().
func (r Rope[V]) Split(i int) (left, right Rope[V], ok bool) {
	if i < 0 || i > r.Count() {
		return r, Rope[V]{}, false
	}
	res := splitNode(r.root, r.height, i)
	return res.less, res.greater, true
}

// Slice returns the half-open range [lo, hi) as two splits.
func (r Rope[V]) Slice(lo, hi int) (Rope[V], bool) {
	if lo < 0 || hi > r.Count() || lo > hi {
		return Rope[V]{}, false
	}
	_, rest, ok := r.Split(lo)
	if !ok {
		return Rope[V]{}, false
	}
	middle, _, ok := rest.Split(hi - lo)
	if !ok {
		return Rope[V]{}, false
	}
	return middle, true
}

// FromSlice builds a Rope from vs in order, by repeated append — used
// by value constructors and tests, not on any hot path.
func FromSlice[V any](vs []V) Rope[V] {
	r := Empty[V]()
	for _, v := range vs {
		r, _ = r.Insert(r.Count(), v)
	}
	return r
}

// ToSlice materializes r in order.
func (r Rope[V]) ToSlice() []V {
	out := make([]V, 0, r.Count())
	var walk func(n *node[V])
	walk = func(n *node[V]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.v1)
		if n.isN3 {
			walk(n.mid)
			out = append(out, n.v2)
		}
		walk(n.right)
	}
	walk(r.root)
	return out
}
