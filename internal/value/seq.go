package value

import "fen/internal/rope"

// Arr and App share representation and contracts: both are a
// persistent sequence of Value built on internal/rope. The
// distinction is purely interpretive — the VM
// treats App as an application form during compilation and Arr as
// plain data at runtime — so the two are separate Go types only to
// keep that interpretation visible at the type level; seqOps below
// holds the shared implementation.
type seqOps struct {
	r rope.Rope[Value]
}

func (s seqOps) count() int                 { return s.r.Count() }
func (s seqOps) get(i int) (Value, bool)    { return s.r.Get(i) }
func (s seqOps) cmp(o seqOps) int           { return rope.Compare(s.r, o.r, Compare) }

// Compare is the free-function form of Value.CompareTo, for use as a
// comparator passed to generic helpers (rope.Compare, ordmap.Compare).
func Compare(a, b Value) int { return a.CompareTo(b) }

// Arr is a persistent array value (runtime data).
type Arr struct{ seqOps }

func NewArr(vs []Value) Arr { return Arr{seqOps{r: rope.FromSlice(vs)}} }

func (Arr) Kind() Kind   { return KindArr }
func (Arr) Truthy() bool { return true }
func (a Arr) CompareTo(o Value) int {
	if c := compareKind(a, o); c != 0 {
		return c
	}
	return a.cmp(o.(Arr).seqOps)
}

func (a Arr) Count() int              { return a.count() }
func (a Arr) Get(i int) (Value, bool) { return a.get(i) }
func (a Arr) Insert(i int, v Value) (Arr, bool) {
	nr, ok := a.r.Insert(i, v)
	return Arr{seqOps{r: nr}}, ok
}
func (a Arr) Remove(i int) (Arr, bool) {
	nr, ok := a.r.Remove(i)
	return Arr{seqOps{r: nr}}, ok
}
func (a Arr) Update(i int, v Value) (Arr, bool) {
	nr, ok := a.r.Update(i, v)
	return Arr{seqOps{r: nr}}, ok
}
func (a Arr) Slice(lo, hi int) (Arr, bool) {
	nr, ok := a.r.Slice(lo, hi)
	return Arr{seqOps{r: nr}}, ok
}
func ConcatArr(a, b Arr) Arr { return Arr{seqOps{r: rope.Concat(a.r, b.r)}} }
func (a Arr) ToSlice() []Value { return a.r.ToSlice() }
func (a Arr) CursorMin() *rope.Cursor[Value] { return rope.CursorMin(a.r) }
func (a Arr) CursorMax() *rope.Cursor[Value] { return rope.CursorMax(a.r) }

// App is a persistent application-form value (the compiler's view of
// a function call before it is turned into bytecode). See Arr for the
// shared operation set; App exists as its own type only to keep
// "this is a call form, not data" visible at the type level.
type App struct{ seqOps }

func NewApp(vs []Value) App { return App{seqOps{r: rope.FromSlice(vs)}} }

func (App) Kind() Kind   { return KindApp }
func (App) Truthy() bool { return true }
func (a App) CompareTo(o Value) int {
	if c := compareKind(a, o); c != 0 {
		return c
	}
	return a.cmp(o.(App).seqOps)
}

func (a App) Count() int              { return a.count() }
func (a App) Get(i int) (Value, bool) { return a.get(i) }
func (a App) ToSlice() []Value        { return a.r.ToSlice() }
