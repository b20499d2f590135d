package actorcodec

import (
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

// Version identifies the catalog revision this module encodes. Parties
// exchanging payloads must agree on the major version.
const Version = "1.0.0"

// Serialize encodes a message into its canonical wire bytes. The result
// validates against the message's own schema before encoding, so a
// message whose field values violate its declared shapes fails here
// rather than on the remote side.
func Serialize(msg schema.Message) ([]byte, error) {
	val := msg.ToValue()
	if err := msg.Schema().Validate(val); err != nil {
		return nil, err
	}
	return msgpack.Marshal(val), nil
}

// Deserialize decodes wire bytes into msg. The payload must consume the
// input exactly; trailing bytes are malformed input. Unknown map keys
// are ignored for forward compatibility.
func Deserialize(data []byte, msg schema.Message) error {
	val, err := msgpack.Unmarshal(data)
	if err != nil {
		return err
	}
	if err := msg.FromValue(val); err != nil {
		return err
	}
	return nil
}
