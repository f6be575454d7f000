// Package gctx holds the process-wide counters and caches the VM and
// compiler need but that value, env, and bytecode must stay free of:
// gensym ids, closure ids, cell ids, and the require cache. Keeping
// these in one small package, rather than as package-level globals
// scattered across value/vm, keeps every id space and every cache tied
// to one Context instance instead of to the process.
package gctx

import (
	"sync/atomic"

	"fen/internal/value"
)

// Counter is a monotonically increasing, concurrency-safe id source.
// Zero value is ready to use and starts at 1 (0 is reserved so a
// zero-value id field reliably means "unset").
type Counter struct {
	n uint64
}

// Next returns the next id from the counter.
func (c *Counter) Next() uint64 {
	return atomic.AddUint64(&c.n, 1)
}

// Context bundles the counters and caches one running program needs.
// The counters are ready to use at their zero value; the require cache
// is allocated by New, so a Context must come from New. Context is not
// safe to copy after first use (Counter embeds an atomic word).
type Context struct {
	Gensym   Counter // mints value.IdSymbol ids
	ClosureID Counter // mints value.FunClosure ids
	CellID   Counter // mints value.Cell ids

	require requireCache
}

// New returns a fresh, independent Context. Each embedded program run
// gets its own, so two runs never share gensym/closure/cell id spaces.
func New() *Context {
	return &Context{require: newRequireCache()}
}

// LookupRequire and StoreRequire implement the module-load memoization
// table. Actual file resolution and evaluation live in the host
// embedding this interpreter; gctx only remembers, for a given
// (canonical path, option map) pair, the most recently stored result,
// so a load's side effects need not be re-run once that pair has been
// cached.
func (c *Context) LookupRequire(path string, options value.Value) (result value.Value, failed, ok bool) {
	return c.require.Lookup(path, options)
}
