package value

import (
	"unicode/utf8"

	"fen/internal/rope"
)

// Str is a persistent character rope. It tracks codepoint count (via
// the underlying rope's Count) and byte count separately, so both
// indexing modes are available without a linear scan.
type Str struct {
	chars    rope.Rope[rune]
	byteLen  int
}

// NewStringFromGoString builds a Str from a Go string.
func NewStringFromGoString(s string) Str {
	runes := []rune(s)
	return Str{chars: rope.FromSlice(runes), byteLen: len(s)}
}

// NewStringFromRunes builds a Str from a rune slice.
func NewStringFromRunes(rs []rune) Str {
	n := 0
	for _, r := range rs {
		n += utf8.RuneLen(r)
	}
	return Str{chars: rope.FromSlice(rs), byteLen: n}
}

func (Str) Kind() Kind   { return KindString }
func (Str) Truthy() bool { return true }

func (s Str) CompareTo(o Value) int {
	if c := compareKind(s, o); c != 0 {
		return c
	}
	return rope.Compare(s.chars, o.(Str).chars, cmpInt32)
}

func cmpInt32(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CountChars is the codepoint count (the "codepoint-count" index
// mode).
func (s Str) CountChars() int { return s.chars.Count() }

// CountBytes is the cached UTF-8 byte length (the "byte-count" index
// mode).
func (s Str) CountBytes() int { return s.byteLen }

// GetChar returns the i-th codepoint.
func (s Str) GetChar(i int) (rune, bool) { return s.chars.Get(i) }

// InsertChar inserts r before codepoint position i.
func (s Str) InsertChar(i int, r rune) (Str, bool) {
	nr, ok := s.chars.Insert(i, r)
	if !ok {
		return s, false
	}
	return Str{chars: nr, byteLen: s.byteLen + utf8.RuneLen(r)}, true
}

// RemoveChar removes the codepoint at position i.
func (s Str) RemoveChar(i int) (Str, bool) {
	r, ok := s.chars.Get(i)
	if !ok {
		return s, false
	}
	nr, _ := s.chars.Remove(i)
	return Str{chars: nr, byteLen: s.byteLen - utf8.RuneLen(r)}, true
}

// UpdateChar replaces the codepoint at position i.
func (s Str) UpdateChar(i int, r rune) (Str, bool) {
	old, ok := s.chars.Get(i)
	if !ok {
		return s, false
	}
	nr, _ := s.chars.Update(i, r)
	return Str{chars: nr, byteLen: s.byteLen - utf8.RuneLen(old) + utf8.RuneLen(r)}, true
}

// SliceChars returns the half-open codepoint range [lo, hi).
func (s Str) SliceChars(lo, hi int) (Str, bool) {
	sub, ok := s.chars.Slice(lo, hi)
	if !ok {
		return s, false
	}
	return NewStringFromRunes(sub.ToSlice()), true
}

// ConcatStr appends b's characters after a's.
func ConcatStr(a, b Str) Str {
	return Str{chars: rope.Concat(a.chars, b.chars), byteLen: a.byteLen + b.byteLen}
}

// String implements fmt.Stringer for debugging/logging, not for the
// language's own string-conversion builtins.
func (s Str) String() string {
	return string(s.chars.ToSlice())
}

// CursorMin/CursorMax back the bidirectional character cursor builtins.
func (s Str) CursorMin() *rope.Cursor[rune] { return rope.CursorMin(s.chars) }
func (s Str) CursorMax() *rope.Cursor[rune] { return rope.CursorMax(s.chars) }
