// Package builtin implements the reference collaborators a closure's
// Call instruction dispatches to by tag, plus the thrown-value
// constructors for the error shapes a built-in can raise. These are
// ordinary Value maps with a :tag keyword, never Go errors — they
// travel through the VM's catch-handler protocol exactly like any
// other thrown value.
package builtin

import "fen/internal/value"

func errMap(tag string, fields ...value.Value) value.Value {
	m := value.EmptyMap().Insert(value.Keyword("tag"), value.Keyword(tag))
	for i := 0; i+1 < len(fields); i += 2 {
		m = m.Insert(fields[i], fields[i+1])
	}
	return m
}

// ErrType builds a :err-type thrown value.
func ErrType(expected, got value.Value) value.Value {
	return errMap("err-type", value.Keyword("expected"), expected, value.Keyword("got"), got)
}

// ErrLookup builds a :err-lookup thrown value for the missing key/index.
func ErrLookup(got value.Value) value.Value {
	return errMap("err-lookup", value.Keyword("got"), got)
}

// ErrNegative builds a :err-negative thrown value.
func ErrNegative(got value.Value) value.Value {
	return errMap("err-negative", value.Keyword("got"), got)
}

// ErrZero builds a :err-zero thrown value (division or modulo by zero).
func ErrZero() value.Value { return errMap("err-zero") }

// ErrWrap builds a :err-wrap thrown value (integer overflow, no
// fallback argument supplied).
func ErrWrap() value.Value { return errMap("err-wrap") }

// ErrCollectionFull builds a :err-collection-full thrown value.
func ErrCollectionFull() value.Value { return errMap("err-collection-full") }

// ErrCollectionEmpty builds a :err-collection-empty thrown value.
func ErrCollectionEmpty() value.Value { return errMap("err-collection-empty") }

// ErrNotByte builds a :err-not-byte thrown value.
func ErrNotByte(got value.Value) value.Value {
	return errMap("err-not-byte", value.Keyword("got"), got)
}

// ErrNotUnicodeScalar builds a :err-not-unicode-scalar thrown value.
func ErrNotUnicodeScalar(got value.Value) value.Value {
	return errMap("err-not-unicode-scalar", value.Keyword("got"), got)
}

// ErrNotWritable builds a :err-not-writable thrown value.
func ErrNotWritable() value.Value { return errMap("err-not-writable") }

// ErrNumArgs builds a :err-num-args thrown value.
func ErrNumArgs(expected, got value.Value) value.Value {
	return errMap("err-num-args", value.Keyword("expected"), expected, value.Keyword("got"), got)
}

// ErrRequire builds a :err-require thrown value.
func ErrRequire() value.Value { return errMap("err-require") }
