package schema

import (
	"math"

	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/msgpack"
)

// Decoder binds a mapping Value into a message's fields. The first
// fault sticks and later accessors return zero values, so a FromValue
// implementation reads every field and checks Err once at the end.
type Decoder struct {
	typ *Type
	val msgpack.Value
	err error
}

// NewTypeDecoder starts binding v against t. A non-mapping v is an
// immediate schema mismatch.
func NewTypeDecoder(t *Type, v msgpack.Value) *Decoder {
	d := &Decoder{typ: t, val: v}
	if v.Kind() != msgpack.KindMap {
		d.err = errors.New(errors.PhaseBind, errors.KindSchemaMismatch).
			Path(t.Name()).
			WireType(v.Kind().String()).
			Detail("expected a mapping").
			Build()
	}
	return d
}

// Err returns the first fault recorded while binding
func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// lookup fetches a field Value, recording a fault for a missing
// required field. The second result is false when the caller should
// bind the zero value.
func (d *Decoder) lookup(name string) (msgpack.Value, bool) {
	if d.err != nil {
		return msgpack.Value{}, false
	}
	v, ok := d.val.Get(name)
	if !ok {
		f, declared := d.typ.Field(name)
		if declared && f.Required {
			d.fail(errors.FieldMissing(d.typ.Name(), name))
		}
		return msgpack.Value{}, false
	}
	return v, true
}

func (d *Decoder) mismatch(name string, goType string, got msgpack.Kind) {
	d.fail(errors.TypeMismatch([]string{d.typ.Name(), name}, goType, got.String()))
}

// String binds a string field
func (d *Decoder) String(name string) string {
	v, ok := d.lookup(name)
	if !ok {
		return ""
	}
	s, ok := v.AsString()
	if !ok {
		d.mismatch(name, "string", v.Kind())
		return ""
	}
	return s
}

// OptionalString binds a string field that distinguishes absent from
// empty
func (d *Decoder) OptionalString(name string) *string {
	v, ok := d.lookup(name)
	if !ok || v.IsNil() {
		return nil
	}
	s, ok := v.AsString()
	if !ok {
		d.mismatch(name, "string", v.Kind())
		return nil
	}
	return &s
}

// Bool binds a boolean field
func (d *Decoder) Bool(name string) bool {
	v, ok := d.lookup(name)
	if !ok {
		return false
	}
	b, ok := v.AsBool()
	if !ok {
		d.mismatch(name, "bool", v.Kind())
		return false
	}
	return b
}

// Bytes binds a raw byte field. A string value also binds: foreign
// encoders without a bin family emit byte payloads as str.
func (d *Decoder) Bytes(name string) []byte {
	v, ok := d.lookup(name)
	if !ok {
		return nil
	}
	if b, ok := v.AsBinary(); ok {
		return b
	}
	if s, ok := v.AsString(); ok {
		return []byte(s)
	}
	d.mismatch(name, "[]byte", v.Kind())
	return nil
}

// Uint64 binds an unsigned 64-bit field
func (d *Decoder) Uint64(name string) uint64 {
	v, ok := d.lookup(name)
	if !ok {
		return 0
	}
	u, ok := v.AsUint()
	if !ok {
		d.numericFault(name, v, "uint64")
		return 0
	}
	return u
}

// Uint32 binds an unsigned 32-bit field, failing with a range error on
// overflow rather than truncating
func (d *Decoder) Uint32(name string) uint32 {
	v, ok := d.lookup(name)
	if !ok {
		return 0
	}
	u, ok := v.AsUint()
	if !ok {
		d.numericFault(name, v, "uint32")
		return 0
	}
	if u > math.MaxUint32 {
		d.fail(errors.OutOfRange([]string{d.typ.Name(), name}, u, "uint32"))
		return 0
	}
	return uint32(u)
}

// Int64 binds a signed 64-bit field
func (d *Decoder) Int64(name string) int64 {
	v, ok := d.lookup(name)
	if !ok {
		return 0
	}
	i, ok := v.AsInt()
	if !ok {
		d.numericFault(name, v, "int64")
		return 0
	}
	return i
}

// Int32 binds a signed 32-bit field with bounds checking
func (d *Decoder) Int32(name string) int32 {
	v, ok := d.lookup(name)
	if !ok {
		return 0
	}
	i, ok := v.AsInt()
	if !ok {
		d.numericFault(name, v, "int32")
		return 0
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		d.fail(errors.OutOfRange([]string{d.typ.Name(), name}, i, "int32"))
		return 0
	}
	return int32(i)
}

// numericFault separates "not a number at all" (schema mismatch) from
// "a number that does not fit" (range error)
func (d *Decoder) numericFault(name string, v msgpack.Value, width string) {
	switch v.Kind() {
	case msgpack.KindInt, msgpack.KindUint:
		// signedness overflow: e.g. a uint64 above MaxInt64 bound to a
		// signed field, or a negative value bound to an unsigned field
		d.fail(errors.OutOfRange([]string{d.typ.Name(), name}, v.String(), width))
	default:
		d.mismatch(name, width, v.Kind())
	}
}

// Float64 binds a float field
func (d *Decoder) Float64(name string) float64 {
	v, ok := d.lookup(name)
	if !ok {
		return 0
	}
	f, ok := v.AsFloat()
	if !ok {
		d.mismatch(name, "float64", v.Kind())
		return 0
	}
	return f
}

// Strings binds an ordered string list field
func (d *Decoder) Strings(name string) []string {
	v, ok := d.lookup(name)
	if !ok {
		return nil
	}
	arr, ok := v.AsArray()
	if !ok {
		d.mismatch(name, "[]string", v.Kind())
		return nil
	}
	out := make([]string, len(arr))
	for i, elem := range arr {
		s, ok := elem.AsString()
		if !ok {
			d.mismatch(name, "[]string", elem.Kind())
			return nil
		}
		out[i] = s
	}
	return out
}

// StringMap binds a string-to-string mapping field
func (d *Decoder) StringMap(name string) map[string]string {
	v, ok := d.lookup(name)
	if !ok {
		return nil
	}
	entries, ok := v.AsMap()
	if !ok {
		d.mismatch(name, "map[string]string", v.Kind())
		return nil
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		s, ok := e.Val.AsString()
		if !ok {
			d.mismatch(name, "map[string]string", e.Val.Kind())
			return nil
		}
		out[e.Key] = s
	}
	return out
}

// Message binds a nested message field
func (d *Decoder) Message(name string, into Message) {
	v, ok := d.lookup(name)
	if !ok {
		return
	}
	if err := into.FromValue(v); err != nil {
		d.fail(err)
	}
}

// Array binds a raw sequence field for callers that decode the
// elements themselves
func (d *Decoder) Array(name string) []msgpack.Value {
	v, ok := d.lookup(name)
	if !ok {
		return nil
	}
	arr, ok := v.AsArray()
	if !ok {
		d.mismatch(name, "array", v.Kind())
		return nil
	}
	return arr
}

// Value binds a raw field without interpretation
func (d *Decoder) Value(name string) (msgpack.Value, bool) {
	return d.lookup(name)
}
