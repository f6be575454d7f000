package builtin

import "fen/internal/value"

// CellMake implements the 1-argument cell-constructor builtin. The id
// comes from mintID, which the VM wires to its gctx.Context's cell
// counter, since builtin functions here stay free of gctx to keep the
// dependency graph one-directional (value/builtin never import gctx;
// gctx imports value).
func CellMake(mintID func() uint64, args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 1); !ok {
		return nil, errv, false
	}
	return value.NewCell(mintID(), args[0]), nil, true
}

// CellGet implements the 1-argument cell-read builtin.
func CellGet(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 1); !ok {
		return nil, errv, false
	}
	c, ok := args[0].(value.Cell)
	if !ok {
		return nil, ErrType(value.Keyword("cell"), typeKeyword(args[0])), false
	}
	return c.Get(), nil, true
}

// CellSet implements the 2-argument cell-write builtin. It always
// succeeds for a well-typed cell argument: :err-not-writable is
// reserved for values other than Cell that are asked to accept a
// write (e.g. via a generic "set!" builtin overloaded across writable
// kinds), not for Cell itself.
func CellSet(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	c, ok := args[0].(value.Cell)
	if !ok {
		return nil, ErrType(value.Keyword("cell"), typeKeyword(args[0])), false
	}
	c.Set(args[1])
	return value.TheNil, nil, true
}
