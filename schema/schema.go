package schema

import (
	"fmt"

	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/msgpack"
)

// FieldKind is the declared semantic type of a schema field. Width
// matters: integer fields are bounds-checked against their declared
// width at bind time.
type FieldKind uint8

const (
	FieldBool FieldKind = iota
	FieldInt32
	FieldInt64
	FieldUint32
	FieldUint64
	FieldFloat64
	FieldString
	FieldBinary
	FieldStringList
	FieldStringMap
	FieldValue // nested message or list of nested messages
)

var fieldKindNames = map[FieldKind]string{
	FieldBool:       "bool",
	FieldInt32:      "int32",
	FieldInt64:      "int64",
	FieldUint32:     "uint32",
	FieldUint64:     "uint64",
	FieldFloat64:    "float64",
	FieldString:     "string",
	FieldBinary:     "binary",
	FieldStringList: "string list",
	FieldStringMap:  "string map",
	FieldValue:      "value",
}

func (k FieldKind) String() string {
	if n, ok := fieldKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("fieldkind(%d)", uint8(k))
}

// Field is one named, typed slot of a schema type
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// Required declares a required field
func Required(name string, kind FieldKind) Field {
	return Field{Name: name, Kind: kind, Required: true}
}

// Optional declares an optional field; absent optional fields bind to
// their zero value
func Optional(name string, kind FieldKind) Field {
	return Field{Name: name, Kind: kind}
}

// Type is a named schema type: an ordered field list. Types are built
// once at package init and never mutated; identity (pointer equality)
// is how the envelope codec checks a message against an operation's
// schema pair.
type Type struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewType builds a schema type. Field order is the encoding order.
func NewType(name string, fields ...Field) *Type {
	t := &Type{
		name:   name,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		t.index[f.Name] = i
	}
	return t
}

// Name returns the type name
func (t *Type) Name() string { return t.name }

// Fields returns the ordered field list. Callers must not mutate it.
func (t *Type) Fields() []Field { return t.fields }

// Field looks up a field by name
func (t *Type) Field(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

// Validate checks that v is a mapping carrying every required field
// with a compatible wire kind. Unknown extra keys pass; they belong to
// a newer schema version.
func (t *Type) Validate(v msgpack.Value) error {
	if v.Kind() != msgpack.KindMap {
		return errors.New(errors.PhaseBind, errors.KindSchemaMismatch).
			Path(t.name).
			WireType(v.Kind().String()).
			Detail("expected a mapping").
			Build()
	}
	for _, f := range t.fields {
		fv, ok := v.Get(f.Name)
		if !ok {
			if f.Required {
				return errors.FieldMissing(t.name, f.Name)
			}
			continue
		}
		if !kindCompatible(f.Kind, fv.Kind()) {
			return errors.New(errors.PhaseBind, errors.KindSchemaMismatch).
				Path(t.name, f.Name).
				WireType(fv.Kind().String()).
				Detail("expected %s", f.Kind).
				Build()
		}
	}
	return nil
}

func kindCompatible(fk FieldKind, vk msgpack.Kind) bool {
	switch fk {
	case FieldBool:
		return vk == msgpack.KindBool
	case FieldInt32, FieldInt64, FieldUint32, FieldUint64:
		return vk == msgpack.KindInt || vk == msgpack.KindUint
	case FieldFloat64:
		return vk == msgpack.KindFloat32 || vk == msgpack.KindFloat64
	case FieldString:
		return vk == msgpack.KindString
	case FieldBinary:
		return vk == msgpack.KindBinary
	case FieldStringList:
		return vk == msgpack.KindArray
	case FieldStringMap:
		return vk == msgpack.KindMap
	case FieldValue:
		return true
	}
	return false
}

// Message is implemented by every schema struct in the catalog. ToValue
// skips absent optional fields; FromValue applies the
// forward-compatibility policy documented on this package.
type Message interface {
	Schema() *Type
	ToValue() msgpack.Value
	FromValue(msgpack.Value) error
}

// EmptyType is the schema of operations that reply with no payload;
// the wire form is an empty mapping.
var EmptyType = NewType("Empty")

// Empty is the Message with no fields
type Empty struct{}

// Schema returns the empty schema type
func (Empty) Schema() *Type { return EmptyType }

// ToValue returns an empty mapping
func (Empty) ToValue() msgpack.Value { return msgpack.Map() }

// FromValue accepts any mapping, ignoring all fields
func (*Empty) FromValue(v msgpack.Value) error {
	return EmptyType.Validate(v)
}
