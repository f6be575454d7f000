package builtin

import (
	"math"

	"fen/internal/value"
)

// Fn is the shape every built-in dispatches to: given its arguments,
// produce a result or a thrown error value. The bool distinguishes a
// normal return from a throw, letting the VM's Call instruction branch
// on built-in outcome the same way it branches on a called closure
// throwing.
type Fn func(args []value.Value) (result value.Value, thrown value.Value, ok bool)

func typeKeyword(v value.Value) value.Value {
	return value.Keyword(v.Kind().String())
}

func wantInt(v value.Value) (value.Int, bool) {
	i, ok := v.(value.Int)
	return i, ok
}

func numArgsOK(args []value.Value, n int) (value.Value, bool) {
	if len(args) != n {
		return ErrNumArgs(value.Int(n), value.Int(len(args))), false
	}
	return nil, true
}

// Add implements the 2-argument integer addition builtin. Overflow
// without an explicit wrap mode throws :err-wrap.
func Add(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	a, ok := wantInt(args[0])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[0])), false
	}
	b, ok := wantInt(args[1])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[1])), false
	}
	sum := int64(a) + int64(b)
	if (int64(a) > 0 && int64(b) > 0 && sum < 0) || (int64(a) < 0 && int64(b) < 0 && sum > 0) {
		return nil, ErrWrap(), false
	}
	return value.Int(sum), nil, true
}

// Sub implements the 2-argument integer subtraction builtin.
func Sub(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	a, ok := wantInt(args[0])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[0])), false
	}
	b, ok := wantInt(args[1])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[1])), false
	}
	diff := int64(a) - int64(b)
	if (int64(b) < 0 && diff < int64(a)) || (int64(b) > 0 && diff > int64(a)) {
		return nil, ErrWrap(), false
	}
	return value.Int(diff), nil, true
}

// Mul implements the 2-argument integer multiplication builtin.
func Mul(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	a, ok := wantInt(args[0])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[0])), false
	}
	b, ok := wantInt(args[1])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[1])), false
	}
	if a == 0 || b == 0 {
		return value.Int(0), nil, true
	}
	// -1 * math.MinInt64 overflows and wraps back to math.MinInt64, and
	// Go defines math.MinInt64 / -1 == math.MinInt64, so the division
	// check below can't see this case on its own — it has to be caught
	// explicitly before the general check runs.
	if (a == -1 && int64(b) == math.MinInt64) || (b == -1 && int64(a) == math.MinInt64) {
		return nil, ErrWrap(), false
	}
	prod := int64(a) * int64(b)
	if prod/int64(a) != int64(b) {
		return nil, ErrWrap(), false
	}
	return value.Int(prod), nil, true
}

// Div implements integer division, throwing :err-zero on a zero
// divisor.
func Div(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	a, ok := wantInt(args[0])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[0])), false
	}
	b, ok := wantInt(args[1])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[1])), false
	}
	if b == 0 {
		return nil, ErrZero(), false
	}
	return value.Int(int64(a) / int64(b)), nil, true
}

// Eq implements the 2-argument equality builtin, using the same
// cross-variant ordering value.Equal defines elsewhere rather than
// requiring matching kinds.
func Eq(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	return value.Bool(value.Equal(args[0], args[1])), nil, true
}

// Lt implements the 2-argument integer less-than builtin.
func Lt(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	a, ok := wantInt(args[0])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[0])), false
	}
	b, ok := wantInt(args[1])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[1])), false
	}
	return value.Bool(a < b), nil, true
}
