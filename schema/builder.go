package schema

import (
	"sort"

	"github.com/wippyai/actor-codec/msgpack"
)

// Builder assembles the mapping form of a message. Fields appear in the
// order the builder methods are called, which implementations keep in
// schema field order so the wire bytes are deterministic.
type Builder struct {
	entries []msgpack.MapEntry
}

// NewBuilder returns an empty Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Value returns the assembled mapping
func (b *Builder) Value() msgpack.Value {
	return msgpack.MapOf(b.entries)
}

func (b *Builder) add(name string, v msgpack.Value) {
	b.entries = append(b.entries, msgpack.Entry(name, v))
}

// String adds a string field
func (b *Builder) String(name, v string) {
	b.add(name, msgpack.String(v))
}

// OptionalString adds a string field only when present
func (b *Builder) OptionalString(name string, v *string) {
	if v != nil {
		b.add(name, msgpack.String(*v))
	}
}

// Bool adds a boolean field
func (b *Builder) Bool(name string, v bool) {
	b.add(name, msgpack.Bool(v))
}

// Bytes adds a raw byte field
func (b *Builder) Bytes(name string, v []byte) {
	b.add(name, msgpack.Binary(v))
}

// Uint32 adds an unsigned 32-bit field
func (b *Builder) Uint32(name string, v uint32) {
	b.add(name, msgpack.Uint(uint64(v)))
}

// Uint64 adds an unsigned 64-bit field
func (b *Builder) Uint64(name string, v uint64) {
	b.add(name, msgpack.Uint(v))
}

// Int32 adds a signed 32-bit field
func (b *Builder) Int32(name string, v int32) {
	b.add(name, msgpack.Int(int64(v)))
}

// Int64 adds a signed 64-bit field
func (b *Builder) Int64(name string, v int64) {
	b.add(name, msgpack.Int(v))
}

// Float64 adds a 64-bit float field
func (b *Builder) Float64(name string, v float64) {
	b.add(name, msgpack.Float64(v))
}

// Strings adds an ordered list of strings
func (b *Builder) Strings(name string, v []string) {
	elems := make([]msgpack.Value, len(v))
	for i, s := range v {
		elems[i] = msgpack.String(s)
	}
	b.add(name, msgpack.ArrayOf(elems))
}

// StringMap adds a string-to-string mapping. Keys are sorted so encode
// output is deterministic even though Go map iteration is not.
func (b *Builder) StringMap(name string, v map[string]string) {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]msgpack.MapEntry, len(keys))
	for i, k := range keys {
		entries[i] = msgpack.Entry(k, msgpack.String(v[k]))
	}
	b.add(name, msgpack.MapOf(entries))
}

// Message adds a nested message field. Callers guard nil pointers
// themselves; an optional nested message is simply not added.
func (b *Builder) Message(name string, m Message) {
	b.add(name, m.ToValue())
}

// Array adds a pre-built sequence field
func (b *Builder) Array(name string, elems []msgpack.Value) {
	b.add(name, msgpack.ArrayOf(elems))
}
