// Package vm implements the bytecode interpreter loop: frame state,
// the call/return/tail-call/throw protocol, and built-in dispatch. An
// explicit frame stack, a pluggable DebugHook, and an operand stack
// local to each frame carry this module's persistent internal/value
// universe through execution.
package vm

import (
	"fen/internal/builtin"
	"fen/internal/bytecode"
	"fen/internal/env"
	"fen/internal/gctx"
	"fen/internal/value"
)

// DebugHook is the one logging/tracing extension point the VM calls
// into: OnInstruction can abort execution by returning false (used by
// step debuggers), while OnCall/OnReturn/OnThrow are pure
// notifications.
type DebugHook interface {
	OnInstruction(v *VM, frame *Frame, instr bytecode.Instruction) bool
	OnCall(v *VM, callee value.Value)
	OnReturn(v *VM, result value.Value)
	OnThrow(v *VM, thrown value.Value)
}

// Frame is one call's execution state: program counter as
// block+offset, an operand stack private to the frame, the
// catch-handler register, and the environment this frame executes in.
type Frame struct {
	chunk   *bytecode.Chunk
	block   bytecode.BlockID
	offset  int
	stack   []value.Value
	handler bytecode.BlockID
	env     *env.Env
}

func newFrame(chunk *bytecode.Chunk, entry bytecode.BlockID, e *env.Env) *Frame {
	return &Frame{chunk: chunk, block: entry, offset: 0, handler: bytecode.ReturnBlock, env: e}
}

func (f *Frame) push(v value.Value) { f.stack = append(f.stack, v) }

func (f *Frame) pop() value.Value {
	n := len(f.stack) - 1
	v := f.stack[n]
	f.stack = f.stack[:n]
	return v
}

func (f *Frame) popN(n int) []value.Value {
	start := len(f.stack) - n
	out := make([]value.Value, n)
	copy(out, f.stack[start:])
	f.stack = f.stack[:start]
	return out
}

func (f *Frame) jump(b bytecode.BlockID) { f.block = b; f.offset = 0 }

func (f *Frame) current() (bytecode.Instruction, bool) {
	bb, ok := f.chunk.Block(f.block)
	if !ok || f.offset >= len(bb.Instrs) {
		return bytecode.Instruction{}, false
	}
	return bb.Instrs[f.offset], true
}

// VM holds the global state shared across frames: the built-in
// registry and the id-minting/require-cache context.
type VM struct {
	Builtins builtin.Registry
	Ctx      *gctx.Context
	Debug    DebugHook

	frames []*Frame
}

// New returns a VM ready to run closures built with chunks targeting
// it. A nil DebugHook disables tracing. "cell-make" is added to a copy
// of builtins, wiring builtin.CellMake to this VM's own Ctx.CellID
// counter — the one built-in that needs gctx and so cannot live in
// builtin.Standard()'s context-free registry (see cell.go).
func New(builtins builtin.Registry, ctx *gctx.Context, hook DebugHook) *VM {
	withCellMake := make(builtin.Registry, len(builtins)+1)
	for tag, fn := range builtins {
		withCellMake[tag] = fn
	}
	withCellMake["cell-make"] = func(args []value.Value) (value.Value, value.Value, bool) {
		return builtin.CellMake(ctx.CellID.Next, args)
	}
	return &VM{Builtins: withCellMake, Ctx: ctx, Debug: hook}
}

// thrownError carries a thrown Value out of Run when the outermost
// frame's catch handler is the return sentinel: a Throw with no
// enclosing handler propagates by returning the top of stack as an
// error.
type thrownError struct {
	v value.Value
}

func (e *thrownError) Error() string { return "thrown value" }

// Run invokes a closure with the given arguments end to end. It
// returns the closure's result, or the thrown value (ok=false) if the
// call's outermost catch handler never caught it.
func (v *VM) Run(fn value.FunClosure, args []value.Value) (result value.Value, thrown value.Value, ok bool) {
	e, errv, ok2 := bindArgs(fn, args)
	if !ok2 {
		return nil, errv, false
	}
	frame := newFrame(fn.Chunk, fn.Entry, e)
	v.frames = append(v.frames, frame)
	defer func() { v.frames = v.frames[:len(v.frames)-1] }()

	res, err := v.runFrame(frame)
	if err != nil {
		if te, isThrown := err.(*thrownError); isThrown {
			return nil, te.v, false
		}
		panic(err) // programming-error contract violation, not a thrown value
	}
	return res, nil, true
}

// bindArgs implements a closure's argument-binding entry protocol:
// fixed arity writes args into slots 0..n-1; variadic arity packs
// everything into slot 0 as an Arr.
func bindArgs(fn value.FunClosure, args []value.Value) (*env.Env, value.Value, bool) {
	e := env.New(envParentOf(fn))
	if fn.Arity.Variadic {
		if err := e.Store(0, 0, value.NewArr(args)); err != nil {
			panic(err)
		}
		return e, nil, true
	}
	n := fn.Arity.Fixed
	if len(args) != n {
		return nil, builtin.ErrNumArgs(value.Int(n), value.Int(len(args))), false
	}
	for i, a := range args {
		if err := e.Store(0, i, a); err != nil {
			panic(err)
		}
	}
	return e, nil, true
}

func envParentOf(fn value.FunClosure) *env.Env {
	if fn.Env == nil {
		return nil
	}
	return fn.Env.(*env.Env)
}
