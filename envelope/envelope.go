package envelope

import (
	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/registry"
	"github.com/wippyai/actor-codec/schema"
)

// Codec encodes and decodes operation payloads against a populated
// registry. The registry must be fully populated before first use.
type Codec struct {
	reg *registry.Registry
}

// New returns a Codec bound to reg
func New(reg *registry.Registry) *Codec {
	return &Codec{reg: reg}
}

// EncodeRequest serializes msg as the request payload of the named
// operation
func (c *Codec) EncodeRequest(operation string, msg schema.Message) ([]byte, error) {
	op, err := c.reg.Resolve(operation)
	if err != nil {
		return nil, err
	}
	return encode(operation, op.Request, msg)
}

// EncodeResponse serializes msg as the response payload of the named
// operation
func (c *Codec) EncodeResponse(operation string, msg schema.Message) ([]byte, error) {
	op, err := c.reg.Resolve(operation)
	if err != nil {
		return nil, err
	}
	return encode(operation, op.Response, msg)
}

// DecodeRequest deserializes a request payload of the named operation
// into msg
func (c *Codec) DecodeRequest(operation string, data []byte, msg schema.Message) error {
	op, err := c.reg.Resolve(operation)
	if err != nil {
		return err
	}
	return decode(operation, op.Request, data, msg)
}

// DecodeResponse deserializes a response payload of the named operation
// into msg
func (c *Codec) DecodeResponse(operation string, data []byte, msg schema.Message) error {
	op, err := c.reg.Resolve(operation)
	if err != nil {
		return err
	}
	return decode(operation, op.Response, data, msg)
}

// encode checks msg against the operation's schema type, validates the
// produced mapping, and marshals it
func encode(operation string, want *schema.Type, msg schema.Message) ([]byte, error) {
	if err := checkSchema(operation, want, msg); err != nil {
		return nil, err
	}
	v := msg.ToValue()
	if err := want.Validate(v); err != nil {
		return nil, err
	}
	return msgpack.Marshal(v), nil
}

// decode unmarshals data into the generic Value form and binds it into
// msg
func decode(operation string, want *schema.Type, data []byte, msg schema.Message) error {
	if err := checkSchema(operation, want, msg); err != nil {
		return err
	}
	v, err := msgpack.Unmarshal(data)
	if err != nil {
		return err
	}
	return msg.FromValue(v)
}

// checkSchema rejects a message whose schema type is not the one the
// operation was registered with. Identity comparison is intentional:
// types are package-level singletons.
func checkSchema(operation string, want *schema.Type, msg schema.Message) error {
	got := msg.Schema()
	if got != want {
		return errors.New(errors.PhaseBind, errors.KindSchemaMismatch).
			Path(operation).
			GoType(got.Name()).
			Detail("message schema %q does not match operation schema %q", got.Name(), want.Name()).
			Build()
	}
	return nil
}
