package value

// Cell is a mutable reference cell. Every copy of a Cell value shares
// the same box, so mutating one visibly mutates all of them. Cell is
// compared by its minted id, never by the boxed content, so two cells
// holding equal values but minted separately stay distinct.
// internal/gctx mints the id.
type Cell struct {
	id  uint64
	box *cellBox
}

type cellBox struct {
	v Value
}

func NewCell(id uint64, initial Value) Cell {
	return Cell{id: id, box: &cellBox{v: initial}}
}

func (c Cell) ID() uint64 { return c.id }
func (Cell) Kind() Kind   { return KindCell }
func (Cell) Truthy() bool { return true }

func (c Cell) CompareTo(o Value) int {
	if cmp := compareKind(c, o); cmp != 0 {
		return cmp
	}
	return cmpUint64(c.id, o.(Cell).id)
}

// Get reads the cell's current content.
func (c Cell) Get() Value { return c.box.v }

// Set overwrites the cell's content in place, visible through every
// copy of this Cell.
func (c Cell) Set(v Value) { c.box.v = v }
