package value

import "fen/internal/bytecode"

// FunClosure is a function value closing over an environment, compared
// by identity (its minted id), not by structure — two closures built
// from the same chunk and entry block are still distinct values.
// internal/gctx mints the id; FunClosure takes it as a constructor
// argument so this package never needs to import gctx.
type FunClosure struct {
	id     uint64
	Chunk  *bytecode.Chunk
	Entry  bytecode.BlockID
	Arity  bytecode.Arity
	Env    any // *env.Env; kept untyped here to avoid value->env->value cycles
}

func NewFunClosure(id uint64, chunk *bytecode.Chunk, entry bytecode.BlockID, arity bytecode.Arity, env any) FunClosure {
	return FunClosure{id: id, Chunk: chunk, Entry: entry, Arity: arity, Env: env}
}

func (f FunClosure) ID() uint64  { return f.id }
func (FunClosure) Kind() Kind    { return KindFunClosure }
func (FunClosure) Truthy() bool  { return true }

func (f FunClosure) CompareTo(o Value) int {
	if c := compareKind(f, o); c != 0 {
		return c
	}
	return cmpUint64(f.id, o.(FunClosure).id)
}

// FunBuiltin is a reference to a native built-in, compared
// lexicographically by its tag, so two FunBuiltin values naming the
// same built-in are always equal regardless of when or where they
// were produced.
type FunBuiltin struct {
	Tag string
}

func NewFunBuiltin(tag string) FunBuiltin { return FunBuiltin{Tag: tag} }

func (FunBuiltin) Kind() Kind   { return KindFunBuiltin }
func (FunBuiltin) Truthy() bool { return true }

func (b FunBuiltin) CompareTo(o Value) int {
	if c := compareKind(b, o); c != 0 {
		return c
	}
	return cmpString(b.Tag, o.(FunBuiltin).Tag)
}
