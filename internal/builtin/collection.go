package builtin

import "fen/internal/value"

// ArrGet implements the 2-argument Arr element-read builtin, throwing
// :err-lookup on an out-of-range index.
func ArrGet(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	a, ok := args[0].(value.Arr)
	if !ok {
		return nil, ErrType(value.Keyword("arr"), typeKeyword(args[0])), false
	}
	i, ok := wantInt(args[1])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[1])), false
	}
	v, ok := a.Get(int(i))
	if !ok {
		return nil, ErrLookup(args[1]), false
	}
	return v, nil, true
}

// ArrInsert implements the 3-argument Arr insert builtin.
func ArrInsert(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 3); !ok {
		return nil, errv, false
	}
	a, ok := args[0].(value.Arr)
	if !ok {
		return nil, ErrType(value.Keyword("arr"), typeKeyword(args[0])), false
	}
	i, ok := wantInt(args[1])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[1])), false
	}
	out, ok := a.Insert(int(i), args[2])
	if !ok {
		return nil, ErrLookup(args[1]), false
	}
	return out, nil, true
}

// ArrRemove implements the 2-argument Arr remove builtin.
func ArrRemove(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	a, ok := args[0].(value.Arr)
	if !ok {
		return nil, ErrType(value.Keyword("arr"), typeKeyword(args[0])), false
	}
	i, ok := wantInt(args[1])
	if !ok {
		return nil, ErrType(value.Keyword("int"), typeKeyword(args[1])), false
	}
	out, ok := a.Remove(int(i))
	if !ok {
		return nil, ErrLookup(args[1]), false
	}
	return out, nil, true
}

// ArrCount implements the 1-argument Arr length builtin.
func ArrCount(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 1); !ok {
		return nil, errv, false
	}
	a, ok := args[0].(value.Arr)
	if !ok {
		return nil, ErrType(value.Keyword("arr"), typeKeyword(args[0])), false
	}
	return value.Int(a.Count()), nil, true
}

// MapGet implements the 2-argument MapV lookup builtin.
func MapGet(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	m, ok := args[0].(value.MapV)
	if !ok {
		return nil, ErrType(value.Keyword("map"), typeKeyword(args[0])), false
	}
	v, ok := m.Get(args[1])
	if !ok {
		return nil, ErrLookup(args[1]), false
	}
	return v, nil, true
}

// MapInsert implements the 3-argument MapV insert builtin.
func MapInsert(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 3); !ok {
		return nil, errv, false
	}
	m, ok := args[0].(value.MapV)
	if !ok {
		return nil, ErrType(value.Keyword("map"), typeKeyword(args[0])), false
	}
	return m.Insert(args[1], args[2]), nil, true
}

// SetInsert implements the 2-argument SetV insert builtin.
func SetInsert(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	s, ok := args[0].(value.SetV)
	if !ok {
		return nil, ErrType(value.Keyword("set"), typeKeyword(args[0])), false
	}
	return s.Insert(args[1]), nil, true
}

// SetContains implements the 2-argument SetV membership builtin.
func SetContains(args []value.Value) (value.Value, value.Value, bool) {
	if errv, ok := numArgsOK(args, 2); !ok {
		return nil, errv, false
	}
	s, ok := args[0].(value.SetV)
	if !ok {
		return nil, ErrType(value.Keyword("set"), typeKeyword(args[0])), false
	}
	return value.Bool(s.Contains(args[1])), nil, true
}
