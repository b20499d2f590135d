// Package schema defines the typed message layer above the msgpack
// wire format: named schema types with ordered, optionally-required
// fields, and the Message interface every catalog struct implements.
//
// # Schema Types
//
// A Type is a named, ordered field list. Field order is the
// authoritative encoding order for a type version. Decoding follows the
// forward-compatibility policy shared by every component in the fleet:
//
//   - unknown extra fields are ignored silently
//   - missing optional fields bind to their zero value
//   - missing required fields fail with schema_mismatch
//   - integers outside a field's declared width fail with range_error,
//     never truncate
//
// # Messages
//
// A Message converts itself to and from the generic msgpack.Value
// mapping form:
//
//	type Message interface {
//		Schema() *Type
//		ToValue() msgpack.Value
//		FromValue(msgpack.Value) error
//	}
//
// Implementations use Builder for ToValue and Decoder for FromValue:
//
//	func (r *GetRequest) ToValue() msgpack.Value {
//		b := schema.NewBuilder()
//		b.String("key", r.Key)
//		return b.Value()
//	}
//
//	func (r *GetRequest) FromValue(v msgpack.Value) error {
//		d := schema.NewTypeDecoder(GetRequestType, v)
//		r.Key = d.String("key")
//		return d.Err()
//	}
//
// Decoder records the first fault and turns the remaining accessors
// into no-ops, so FromValue never yields a partially-checked result.
package schema
