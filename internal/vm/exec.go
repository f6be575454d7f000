package vm

import (
	"github.com/pkg/errors"

	"fen/internal/builtin"
	"fen/internal/bytecode"
	"fen/internal/value"
)

func errNumArgsThrow(expected, got int) value.Value {
	return builtin.ErrNumArgs(value.Int(expected), value.Int(got))
}

// runFrame drives one frame's program counter to completion. It
// returns a Go error only for programming-error contract violations
// (bad block id, wrong operand kind on the stack); thrown language
// values travel back as *thrownError, matching Run's contract.
func (v *VM) runFrame(frame *Frame) (value.Value, error) {
	for {
		instr, ok := frame.current()
		if !ok {
			return nil, errors.Errorf("vm: pc ran off block %d with no terminating instruction", frame.block)
		}
		if v.Debug != nil && !v.Debug.OnInstruction(v, frame, instr) {
			return nil, errors.New("vm: execution aborted by debug hook")
		}
		frame.offset++

		switch instr.Op {
		case bytecode.OpLiteral:
			frame.push(instr.Literal.(value.Value))

		case bytecode.OpArr:
			frame.push(value.NewArr(frame.popN(instr.N)))

		case bytecode.OpApp:
			frame.push(value.NewApp(frame.popN(instr.N)))

		case bytecode.OpSet:
			s := value.EmptySet()
			for _, e := range frame.popN(instr.N) {
				s = s.Insert(e)
			}
			frame.push(s)

		case bytecode.OpMap:
			items := frame.popN(2 * instr.N)
			m := value.EmptyMap()
			for i := 0; i+1 < len(items); i += 2 {
				m = m.Insert(items[i+1], items[i])
			}
			frame.push(m)

		case bytecode.OpFunLiteral:
			id := v.Ctx.ClosureID.Next()
			frame.push(value.NewFunClosure(id, instr.Chunk, instr.Entry, instr.Arity, frame.env))

		case bytecode.OpJump:
			if instr.Target == bytecode.ReturnBlock {
				return frame.pop(), nil
			}
			frame.jump(instr.Target)

		case bytecode.OpCondJump:
			if frame.pop().Truthy() {
				frame.jump(instr.Then)
			} else {
				frame.jump(instr.Else)
			}

		case bytecode.OpThrow:
			thrown := frame.stack[len(frame.stack)-1]
			if v.Debug != nil {
				v.Debug.OnThrow(v, thrown)
			}
			if frame.handler == bytecode.ReturnBlock {
				return nil, &thrownError{v: thrown}
			}
			frame.jump(frame.handler)

		case bytecode.OpSetCatchHandler:
			frame.handler = instr.Handler

		case bytecode.OpPush:
			loaded, err := frame.env.Load(instr.Addr.Up, instr.Addr.ID)
			if err != nil {
				return nil, err
			}
			vv, isValue := loaded.(value.Value)
			if !isValue {
				vv = value.TheNil // slot never written, reads as nil
			}
			frame.push(vv)

		case bytecode.OpPop:
			if err := frame.env.Store(instr.Addr.Up, instr.Addr.ID, frame.pop()); err != nil {
				return nil, err
			}

		case bytecode.OpSwap:
			n := len(frame.stack)
			frame.stack[n-1], frame.stack[n-2] = frame.stack[n-2], frame.stack[n-1]

		case bytecode.OpCall:
			args := frame.popN(instr.NArgs)
			fn := frame.pop()
			if v.Debug != nil {
				v.Debug.OnCall(v, fn)
			}
			res, thrown, ok := v.callValue(fn, args)
			if !ok {
				if !v.deliverThrow(frame, thrown) {
					return nil, &thrownError{v: thrown}
				}
				continue
			}
			if v.Debug != nil {
				v.Debug.OnReturn(v, res)
			}
			if instr.Keep {
				frame.push(res)
			}

		case bytecode.OpApply:
			argsVal := frame.pop()
			fn := frame.pop()
			arr, okArr := argsVal.(value.Arr)
			if !okArr {
				return nil, errors.Errorf("vm: Apply operand is not an Arr (got %T)", argsVal)
			}
			res, thrown, ok := v.callValue(fn, arr.ToSlice())
			if !ok {
				if !v.deliverThrow(frame, thrown) {
					return nil, &thrownError{v: thrown}
				}
				continue
			}
			frame.push(res)

		case bytecode.OpTailCall:
			if err := v.tailCall(frame, instr); err != nil {
				return nil, err
			}

		default:
			return nil, errors.Errorf("vm: unknown opcode %v", instr.Op)
		}
	}
}

// deliverThrow pushes the thrown value and jumps to the catch handler,
// or reports failure to the caller when there is none. It returns
// false when the frame's handler is the return sentinel, meaning the
// caller must propagate the throw itself.
func (v *VM) deliverThrow(frame *Frame, thrown value.Value) bool {
	frame.push(thrown)
	if frame.handler == bytecode.ReturnBlock {
		return false
	}
	frame.jump(frame.handler)
	return true
}

// callValue dispatches a call to either a closure (via a fresh frame
// bound by the usual argument-binding entry protocol) or a built-in
// (dispatch by tag, delegating to internal/builtin).
func (v *VM) callValue(fn value.Value, args []value.Value) (result value.Value, thrown value.Value, ok bool) {
	switch f := fn.(type) {
	case value.FunClosure:
		e, errv, bound := bindArgs(f, args)
		if !bound {
			return nil, errv, false
		}
		callee := newFrame(f.Chunk, f.Entry, e)
		v.frames = append(v.frames, callee)
		res, err := v.runFrame(callee)
		v.frames = v.frames[:len(v.frames)-1]
		if err != nil {
			if te, isThrown := err.(*thrownError); isThrown {
				return nil, te.v, false
			}
			panic(err)
		}
		return res, nil, true

	case value.FunBuiltin:
		impl, found := v.Builtins.Lookup(f)
		if !found {
			panic(errors.Errorf("vm: no builtin registered for tag %q", f.Tag))
		}
		res, thrownV, callOK := impl(args)
		return res, thrownV, callOK

	default:
		panic(errors.Errorf("vm: attempt to call non-function value of kind %v", fn.Kind()))
	}
}

// tailCall overwrites the current frame's argument slots and jumps,
// with no new frame pushed — this is what gives mutually-recursive
// self/sibling calls O(1) stack.
func (v *VM) tailCall(frame *Frame, instr bytecode.Instruction) error {
	args := frame.popN(instr.NArgs)
	target, err := frame.env.Load(instr.Addr.Up, instr.Addr.ID)
	if err != nil {
		return err
	}
	fc, ok := target.(value.FunClosure)
	if !ok {
		return errors.Errorf("vm: TailCall address did not resolve to a closure (got %T)", target)
	}
	if fc.Arity.Variadic {
		if err := frame.env.Store(0, 0, value.NewArr(args)); err != nil {
			return err
		}
	} else {
		if len(args) != fc.Arity.Fixed {
			if !v.deliverThrow(frame, errNumArgsThrow(fc.Arity.Fixed, len(args))) {
				return &thrownError{v: errNumArgsThrow(fc.Arity.Fixed, len(args))}
			}
			return nil
		}
		for i, a := range args {
			if err := frame.env.Store(0, i, a); err != nil {
				return err
			}
		}
	}
	frame.chunk = fc.Chunk
	frame.jump(fc.Entry)
	return nil
}
