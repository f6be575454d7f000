package tree23

// rootEntry, leftOf and rightOf decompose a node the same way Split's
// case analysis does: a 3-node's "right part" is its mid+k2+right
// reassembled as one 2-node at the parent's own height, since mid and
// right together span exactly what a 2-node's single right child would.
func rootEntry[K Ordered[K], V any](n *node[K, V]) (K, V) {
	return n.k1, n.v1
}

func leftOf[K Ordered[K], V any](n *node[K, V], h int) Tree[K, V] {
	return Tree[K, V]{root: n.left, height: h - 1}
}

func rightOf[K Ordered[K], V any](n *node[K, V], h int) Tree[K, V] {
	if !n.isN3 {
		return Tree[K, V]{root: n.right, height: h - 1}
	}
	return Tree[K, V]{root: newN2(n.mid, n.k2, n.v2, n.right), height: h}
}

// Union merges a and b, keeping a's value whenever a key is present in
// both: split the non-pivot side by the pivot side's root, recurse on
// both halves, rejoin. The a-derived half stays the bias-carrying
// argument at every recursive step rather than letting the two sides
// swap roles, so the left-wins bias holds for every collision
// regardless of tree shape, not only at the outermost call.
func Union[K Ordered[K], V any](a, b Tree[K, V]) Tree[K, V] {
	if a.root == nil {
		return b
	}
	if b.root == nil {
		return a
	}
	bk, bv := rootEntry(b.root)
	lm, matchV, matched, rm := a.Split(bk)
	nl := Union(lm, leftOf(b.root, b.height))
	nr := Union(rm, rightOf(b.root, b.height))
	if matched {
		return Join(nl, bk, matchV, nr)
	}
	return Join(nl, bk, bv, nr)
}

// UnionWith merges a and b, resolving collisions by calling merge(aVal,
// bVal) for any key present in both. It generalizes Union, which is
// UnionWith(a, b, func(av, bv V) V { return av }).
func UnionWith[K Ordered[K], V any](a, b Tree[K, V], merge func(a, b V) V) Tree[K, V] {
	if a.root == nil {
		return b
	}
	if b.root == nil {
		return a
	}
	bk, bv := rootEntry(b.root)
	lm, matchV, matched, rm := a.Split(bk)
	nl := UnionWith(lm, leftOf(b.root, b.height), merge)
	nr := UnionWith(rm, rightOf(b.root, b.height), merge)
	if matched {
		return Join(nl, bk, merge(matchV, bv), nr)
	}
	return Join(nl, bk, bv, nr)
}

// Intersection keeps only keys present in both a and b, with a's value
// on each kept entry.
func Intersection[K Ordered[K], V any](a, b Tree[K, V]) Tree[K, V] {
	if a.root == nil || b.root == nil {
		return Tree[K, V]{}
	}
	bk, _ := rootEntry(b.root)
	lm, matchV, matched, rm := a.Split(bk)
	nl := Intersection(lm, leftOf(b.root, b.height))
	nr := Intersection(rm, rightOf(b.root, b.height))
	if matched {
		return Join(nl, bk, matchV, nr)
	}
	return Join2(nl, nr)
}

// Difference keeps keys of a that are absent from b.
func Difference[K Ordered[K], V any](a, b Tree[K, V]) Tree[K, V] {
	if a.root == nil {
		return a
	}
	if b.root == nil {
		return a
	}
	bk, _ := rootEntry(b.root)
	lm, _, _, rm := a.Split(bk)
	nl := Difference(lm, leftOf(b.root, b.height))
	nr := Difference(rm, rightOf(b.root, b.height))
	return Join2(nl, nr)
}

// SymmetricDifference keeps keys present in exactly one of a, b (b's
// value where the key comes only from b).
func SymmetricDifference[K Ordered[K], V any](a, b Tree[K, V]) Tree[K, V] {
	if a.root == nil {
		return b
	}
	if b.root == nil {
		return a
	}
	bk, bv := rootEntry(b.root)
	lm, _, matched, rm := a.Split(bk)
	nl := SymmetricDifference(lm, leftOf(b.root, b.height))
	nr := SymmetricDifference(rm, rightOf(b.root, b.height))
	if matched {
		return Join2(nl, nr)
	}
	return Join(nl, bk, bv, nr)
}
