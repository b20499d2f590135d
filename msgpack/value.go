package msgpack

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies which variant a Value holds
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat32
	KindFloat64
	KindString
	KindBinary
	KindArray
	KindMap
)

var kindNames = map[Kind]string{
	KindNil:     "nil",
	KindBool:    "bool",
	KindInt:     "int",
	KindUint:    "uint",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "str",
	KindBinary:  "bin",
	KindArray:   "array",
	KindMap:     "map",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MapEntry is a single key/value pair of a map Value. Keys are always
// strings; entry order is the encoding order.
type MapEntry struct {
	Key string
	Val Value
}

// Value is the self-describing tagged union exchanged across the actor
// and provider call boundary. The zero Value is nil.
type Value struct {
	kind    Kind
	num     uint64 // bool, int, uint, float bits
	str     string
	bin     []byte
	arr     []Value
	entries []MapEntry
}

// Constructors

// Nil returns the nil Value
func Nil() Value { return Value{kind: KindNil} }

// Bool returns a boolean Value
func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// Int returns a signed integer Value
func Int(v int64) Value { return Value{kind: KindInt, num: uint64(v)} }

// Uint returns an unsigned integer Value
func Uint(v uint64) Value { return Value{kind: KindUint, num: v} }

// Float32 returns a 32-bit float Value
func Float32(v float32) Value {
	return Value{kind: KindFloat32, num: uint64(math.Float32bits(v))}
}

// Float64 returns a 64-bit float Value
func Float64(v float64) Value {
	return Value{kind: KindFloat64, num: math.Float64bits(v)}
}

// String returns a UTF-8 string Value
func String(v string) Value { return Value{kind: KindString, str: v} }

// Binary returns a raw byte Value
func Binary(v []byte) Value { return Value{kind: KindBinary, bin: v} }

// Array returns an ordered sequence Value
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// ArrayOf returns an ordered sequence Value over an existing slice
func ArrayOf(elems []Value) Value { return Value{kind: KindArray, arr: elems} }

// Map returns a string-keyed mapping Value. Entry order is preserved
// through encode and decode.
func Map(entries ...MapEntry) Value { return Value{kind: KindMap, entries: entries} }

// MapOf returns a mapping Value over an existing entry slice
func MapOf(entries []MapEntry) Value { return Value{kind: KindMap, entries: entries} }

// Entry builds a single map entry
func Entry(key string, val Value) MapEntry { return MapEntry{Key: key, Val: val} }

// Accessors. The bool result reports whether the Value holds the
// requested variant; numeric accessors additionally accept the opposite
// signedness when the value is representable, because canonical
// encoding collapses non-negative integers to the unsigned wire forms.

// Kind returns the variant tag
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether the Value is nil
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsBool returns the boolean variant
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.num != 0, true
}

// AsInt returns the value as a signed 64-bit integer
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return int64(v.num), true
	case KindUint:
		if v.num <= math.MaxInt64 {
			return int64(v.num), true
		}
	}
	return 0, false
}

// AsUint returns the value as an unsigned 64-bit integer
func (v Value) AsUint() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.num, true
	case KindInt:
		if int64(v.num) >= 0 {
			return v.num, true
		}
	}
	return 0, false
}

// AsFloat returns the value as a 64-bit float
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat32:
		return float64(math.Float32frombits(uint32(v.num))), true
	case KindFloat64:
		return math.Float64frombits(v.num), true
	}
	return 0, false
}

// AsString returns the string variant
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBinary returns the raw byte variant
func (v Value) AsBinary() ([]byte, bool) {
	if v.kind != KindBinary {
		return nil, false
	}
	return v.bin, true
}

// AsArray returns the ordered sequence variant
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsMap returns the mapping variant in insertion order
func (v Value) AsMap() ([]MapEntry, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.entries, true
}

// Get looks up a key in a map Value. The first matching entry wins.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Val, true
		}
	}
	return Value{}, false
}

// Len returns the element count of an array or map Value, the byte
// length of a string or binary Value, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindMap:
		return len(v.entries)
	case KindString:
		return len(v.str)
	case KindBinary:
		return len(v.bin)
	}
	return 0
}

// Equal reports deep equality. Integers compare across signedness when
// both sides represent the same number. Map comparison ignores entry
// order; insertion order matters only for wire fidelity, not identity.
func (v Value) Equal(o Value) bool {
	switch v.kind {
	case KindInt, KindUint:
		if o.kind != KindInt && o.kind != KindUint {
			return false
		}
		if v.kind == o.kind {
			return v.num == o.num
		}
		// mixed signedness: equal only when both are the same
		// non-negative number
		if v.kind == KindInt && int64(v.num) < 0 {
			return false
		}
		if o.kind == KindInt && int64(o.num) < 0 {
			return false
		}
		return v.num == o.num
	}

	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool, KindFloat32, KindFloat64:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindBinary:
		if len(v.bin) != len(o.bin) {
			return false
		}
		for i := range v.bin {
			if v.bin[i] != o.bin[i] {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.entries) != len(o.entries) {
			return false
		}
		for _, e := range v.entries {
			ov, ok := o.Get(e.Key)
			if !ok || !e.Val.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the Value for logs and test failures. Not the wire form.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.num != 0 {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", int64(v.num))
	case KindUint:
		return fmt.Sprintf("%du", v.num)
	case KindFloat32, KindFloat64:
		f, _ := v.AsFloat()
		return fmt.Sprintf("%g", f)
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindBinary:
		return fmt.Sprintf("bin(%d bytes)", len(v.bin))
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, len(v.entries))
		for i, e := range v.entries {
			parts[i] = e.Key + ": " + e.Val.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "invalid"
}
