package tree23

// Each walks t in key order, calling f(k, v) for every entry. It stops
// early if f returns false.
func Each[K Ordered[K], V any](t Tree[K, V], f func(K, V) bool) {
	eachNode(t.root, f)
}

func eachNode[K Ordered[K], V any](n *node[K, V], f func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !eachNode(n.left, f) {
		return false
	}
	if !f(n.k1, n.v1) {
		return false
	}
	if n.isN3 {
		if !eachNode(n.mid, f) {
			return false
		}
		if !f(n.k2, n.v2) {
			return false
		}
	}
	return eachNode(n.right, f)
}
