// Package messaging defines the wire types for the message broker
// capability.
package messaging

import (
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

// Operation names for the messaging capability
const (
	// OpPublish publishes a message from an actor
	OpPublish = "Messaging.Publish"
	// OpDeliverMessage delivers a message to an actor
	OpDeliverMessage = "Messaging.DeliverMessage"
	// OpRequest performs a request-reply publication; inbox management
	// belongs to the provider, not the actor
	OpRequest = "Messaging.Request"
)

// BrokerMessageType is the schema of BrokerMessage
var BrokerMessageType = schema.NewType("BrokerMessage",
	schema.Required("subject", schema.FieldString),
	schema.Optional("replyTo", schema.FieldString),
	schema.Optional("body", schema.FieldBinary),
)

// RequestMessageType is the schema of RequestMessage
var RequestMessageType = schema.NewType("RequestMessage",
	schema.Required("subject", schema.FieldString),
	schema.Optional("body", schema.FieldBinary),
	schema.Required("timeout", schema.FieldInt64),
)

// BrokerMessage is a representation of a broker message
type BrokerMessage struct {
	// The message subject or topic
	Subject string
	// The reply-to subject; empty if there is no reply subject
	ReplyTo string
	// The raw bytes of the message. Encoding/contents is determined by
	// applications out of band
	Body []byte
}

func (m *BrokerMessage) Schema() *schema.Type { return BrokerMessageType }

func (m *BrokerMessage) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("subject", m.Subject)
	b.String("replyTo", m.ReplyTo)
	b.Bytes("body", m.Body)
	return b.Value()
}

func (m *BrokerMessage) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(BrokerMessageType, v)
	m.Subject = d.String("subject")
	m.ReplyTo = d.String("replyTo")
	m.Body = d.Bytes("body")
	return d.Err()
}

// RequestMessage asks the broker for a request-and-reply publication
type RequestMessage struct {
	// Subject on which to publish the request
	Subject string
	// Raw body of the request message
	Body []byte
	// The timeout (milliseconds) to await a reply before giving up
	TimeoutMs int64
}

func (m *RequestMessage) Schema() *schema.Type { return RequestMessageType }

func (m *RequestMessage) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("subject", m.Subject)
	b.Bytes("body", m.Body)
	b.Int64("timeout", m.TimeoutMs)
	return b.Value()
}

func (m *RequestMessage) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(RequestMessageType, v)
	m.Subject = d.String("subject")
	m.Body = d.Bytes("body")
	m.TimeoutMs = d.Int64("timeout")
	return d.Err()
}

// SampleRequestMessage returns a representative RequestMessage for
// codec validation tooling
func SampleRequestMessage() *RequestMessage {
	return &RequestMessage{
		Subject:   "user.profile.175",
		Body:      []byte("raw query bytes"),
		TimeoutMs: 100,
	}
}
