// Package extras defines the wire types for miscellaneous generation
// requests that sandboxed actors cannot serve themselves: GUIDs,
// sequence numbers, and random numbers. The structs are flat rather
// than variant-shaped to keep serialization predictable for every
// parser in the fleet.
package extras

import (
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

// Operation names for the extras capability
const (
	// OpRequestGuid requests the generation of a GUID
	OpRequestGuid = "Extras.RequestGuid"
	// OpRequestSequence requests a new sequence number
	OpRequestSequence = "Extras.RequestSequence"
	// OpRequestRandom requests a random number within a range
	OpRequestRandom = "Extras.RequestRandom"
)

// GeneratorRequestType is the schema of GeneratorRequest
var GeneratorRequestType = schema.NewType("GeneratorRequest",
	schema.Required("guid", schema.FieldBool),
	schema.Required("sequence", schema.FieldBool),
	schema.Required("random", schema.FieldBool),
	schema.Optional("min", schema.FieldUint32),
	schema.Optional("max", schema.FieldUint32),
)

// GeneratorResultType is the schema of GeneratorResult
var GeneratorResultType = schema.NewType("GeneratorResult",
	schema.Optional("guid", schema.FieldString),
	schema.Optional("sequenceNumber", schema.FieldUint64),
	schema.Optional("randomNumber", schema.FieldUint32),
)

// GeneratorRequest asks the host for generated values
type GeneratorRequest struct {
	// Guid indicates a request for a GUID
	Guid bool
	// Sequence indicates a request for a sequence number
	Sequence bool
	// Random indicates a request for a random number
	Random bool
	// Min value for a random number request
	Min uint32
	// Max value for a random number request
	Max uint32
}

func (m *GeneratorRequest) Schema() *schema.Type { return GeneratorRequestType }

func (m *GeneratorRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Bool("guid", m.Guid)
	b.Bool("sequence", m.Sequence)
	b.Bool("random", m.Random)
	b.Uint32("min", m.Min)
	b.Uint32("max", m.Max)
	return b.Value()
}

func (m *GeneratorRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(GeneratorRequestType, v)
	m.Guid = d.Bool("guid")
	m.Sequence = d.Bool("sequence")
	m.Random = d.Bool("random")
	m.Min = d.Uint32("min")
	m.Max = d.Uint32("max")
	return d.Err()
}

// GeneratorResult carries the generated values. The struct is
// flattened: a field the caller did not request stays at its zero
// value.
type GeneratorResult struct {
	// The requested GUID, if any
	Guid *string
	// The requested sequence number (0 if not requested)
	SequenceNumber uint64
	// The requested random number (0 if not requested)
	RandomNumber uint32
}

func (m *GeneratorResult) Schema() *schema.Type { return GeneratorResultType }

func (m *GeneratorResult) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.OptionalString("guid", m.Guid)
	b.Uint64("sequenceNumber", m.SequenceNumber)
	b.Uint32("randomNumber", m.RandomNumber)
	return b.Value()
}

func (m *GeneratorResult) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(GeneratorResultType, v)
	m.Guid = d.OptionalString("guid")
	m.SequenceNumber = d.Uint64("sequenceNumber")
	m.RandomNumber = d.Uint32("randomNumber")
	return d.Err()
}

// SampleGeneratorResult returns a representative GeneratorResult for
// codec validation tooling
func SampleGeneratorResult() *GeneratorResult {
	guid := "insert_generated_guid_here"
	return &GeneratorResult{
		Guid:           &guid,
		SequenceNumber: 0,
		RandomNumber:   0,
	}
}
