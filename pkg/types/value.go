package types

import "strings"

// -----------------------------------------------------------------------------
// Registry Values
// -----------------------------------------------------------------------------

// ValueKind discriminates the two value shapes a PuTTY session export uses:
// UTF-16LE strings (hex(1)) and 32-bit integers (dword). Other registry value
// types never reach this layer; the parser drops them.
type ValueKind uint8

const (
	// KindText is a string decoded from a hex(1) payload.
	KindText ValueKind = iota
	// KindInteger is an unsigned integer decoded from a dword payload.
	KindInteger
)

// Value is a two-variant tagged union. Accessors are total: asking a text
// value for its integer yields 0, and asking an integer value for its text
// yields "". Callers never need to inspect the kind before reading, which
// keeps lookups over machine-exported (and possibly corrupt) data permissive.
type Value struct {
	kind ValueKind
	text string
	num  uint32
}

// Text builds a text-kind value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Integer builds an integer-kind value.
func Integer(n uint32) Value {
	return Value{kind: KindInteger, num: n}
}

// Kind reports which variant this value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the string payload, or "" for an integer value.
func (v Value) Text() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

// Integer returns the numeric payload, or 0 for a text value.
func (v Value) Integer() uint32 {
	if v.kind != KindInteger {
		return 0
	}
	return v.num
}

// -----------------------------------------------------------------------------
// Value Maps
// -----------------------------------------------------------------------------

// ValueMap holds the decoded values of one registry key, by value name.
// Names are unique within a key; the parser overwrites on re-declaration.
type ValueMap map[string]Value

// Text returns the named value's string payload trimmed of surrounding
// whitespace. Missing names and integer-kind values yield "".
func (m ValueMap) Text(name string) string {
	return strings.TrimSpace(m[name].Text())
}

// Integer returns the named value's numeric payload, or def when the name is
// missing or holds a text value.
func (m ValueMap) Integer(name string, def uint32) uint32 {
	v, ok := m[name]
	if !ok || v.Kind() != KindInteger {
		return def
	}
	return v.Integer()
}

// Clone returns a shallow copy. Values are immutable, so sharing them is safe.
func (m ValueMap) Clone() ValueMap {
	out := make(ValueMap, len(m))
	for name, v := range m {
		out[name] = v
	}
	return out
}
