package tree23

// A Cursor walks a Tree in key order in either direction. Internally it
// holds a path stack of (node, slot) frames: for a 2-node the slots are
// 0=left child, 1=(k1,v1), 2=right child; for a 3-node they are
// 0=left, 1=(k1,v1), 2=mid, 3=(k2,v2), 4=right. Odd slots are stopping
// points; even slots are children to descend into (skipped when nil).
// This one generic state machine backs the ordered map and ordered set
// cursors; internal/rope keeps its own copy of the same state machine.
type Cursor[K Ordered[K], V any] struct {
	root  *node[K, V]
	stack []frame[K, V]
	pos   cursorPos
}

type frame[K Ordered[K], V any] struct {
	node *node[K, V]
	idx  int
}

type cursorPos int

const (
	posAt cursorPos = iota
	posBefore
	posAfter
)

func nodeItemCount[K Ordered[K], V any](n *node[K, V]) int {
	if n.isN3 {
		return 5
	}
	return 3
}

func isKeySlot(idx int) bool {
	return idx%2 == 1
}

func childAt[K Ordered[K], V any](n *node[K, V], idx int) *node[K, V] {
	switch idx {
	case 0:
		return n.left
	case 2:
		if n.isN3 {
			return n.mid
		}
		return n.right
	default: // 4, only valid for a 3-node
		return n.right
	}
}

func keyAt[K Ordered[K], V any](n *node[K, V], idx int) (K, V) {
	if idx == 1 {
		return n.k1, n.v1
	}
	return n.k2, n.v2
}

// advanceToKey normalizes stack forward until its top frame sits on a
// key slot, or the stack empties (meaning the walk ran off the end).
func advanceToKey[K Ordered[K], V any](stack []frame[K, V]) []frame[K, V] {
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= nodeItemCount(top.node) {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return stack
			}
			stack[len(stack)-1].idx++
			continue
		}
		if isKeySlot(top.idx) {
			return stack
		}
		if child := childAt(top.node, top.idx); child != nil {
			stack = append(stack, frame[K, V]{node: child, idx: 0})
		} else {
			top.idx++
		}
	}
	return stack
}

// retreatToKey is advanceToKey's mirror image, walking backward.
func retreatToKey[K Ordered[K], V any](stack []frame[K, V]) []frame[K, V] {
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx < 0 {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return stack
			}
			stack[len(stack)-1].idx--
			continue
		}
		if isKeySlot(top.idx) {
			return stack
		}
		if child := childAt(top.node, top.idx); child != nil {
			stack = append(stack, frame[K, V]{node: child, idx: nodeItemCount(child) - 1})
		} else {
			top.idx--
		}
	}
	return stack
}

// CursorMin returns a cursor positioned at t's smallest entry, or one
// already past-end if t is empty.
func CursorMin[K Ordered[K], V any](t Tree[K, V]) *Cursor[K, V] {
	c := &Cursor[K, V]{root: t.root}
	if t.root == nil {
		c.pos = posAfter
		return c
	}
	c.stack = advanceToKey([]frame[K, V]{{node: t.root, idx: 0}})
	if len(c.stack) == 0 {
		c.pos = posAfter
	}
	return c
}

// CursorMax returns a cursor positioned at t's largest entry, or one
// already before-start if t is empty.
func CursorMax[K Ordered[K], V any](t Tree[K, V]) *Cursor[K, V] {
	c := &Cursor[K, V]{root: t.root}
	if t.root == nil {
		c.pos = posBefore
		return c
	}
	c.stack = retreatToKey([]frame[K, V]{{node: t.root, idx: nodeItemCount(t.root) - 1}})
	if len(c.stack) == 0 {
		c.pos = posBefore
	}
	return c
}

// Current reports the entry the cursor sits on, or ok=false if the
// cursor is before the first or past the last entry.
func (c *Cursor[K, V]) Current() (k K, v V, ok bool) {
	if len(c.stack) == 0 {
		return k, v, false
	}
	top := c.stack[len(c.stack)-1]
	k, v = keyAt(top.node, top.idx)
	return k, v, true
}

// Next advances the cursor to the next entry, returning false (and
// leaving the cursor in the past-end state) when there is none.
func (c *Cursor[K, V]) Next() bool {
	if len(c.stack) > 0 {
		c.stack[len(c.stack)-1].idx++
		c.stack = advanceToKey(c.stack)
		if len(c.stack) == 0 {
			c.pos = posAfter
			return false
		}
		return true
	}
	if c.pos == posAfter || c.root == nil {
		c.pos = posAfter
		return false
	}
	c.stack = advanceToKey([]frame[K, V]{{node: c.root, idx: 0}})
	if len(c.stack) == 0 {
		c.pos = posAfter
		return false
	}
	return true
}

// Prev retreats the cursor to the previous entry, returning false (and
// leaving the cursor in the before-start state) when there is none.
func (c *Cursor[K, V]) Prev() bool {
	if len(c.stack) > 0 {
		c.stack[len(c.stack)-1].idx--
		c.stack = retreatToKey(c.stack)
		if len(c.stack) == 0 {
			c.pos = posBefore
			return false
		}
		return true
	}
	if c.pos == posBefore || c.root == nil {
		c.pos = posBefore
		return false
	}
	c.stack = retreatToKey([]frame[K, V]{{node: c.root, idx: nodeItemCount(c.root) - 1}})
	if len(c.stack) == 0 {
		c.pos = posBefore
		return false
	}
	return true
}
