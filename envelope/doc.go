// Package envelope is the top-level encode/decode entry point used by
// host, provider, and actor code.
//
// A Codec is bound to a populated registry. Encoding resolves the
// operation, checks the message against the operation's schema pair,
// and emits the msgpack mapping form; decoding runs the same path in
// reverse. The operation name itself never appears in the payload;
// the transport carries it out of band.
//
//	codec := envelope.New(reg)
//	data, err := codec.EncodeRequest("KeyValue.Set", &keyvalue.SetRequest{Key: "a", Value: "b"})
//	...
//	var req keyvalue.SetRequest
//	err = codec.DecodeRequest("KeyValue.Set", data, &req)
//
// Faults stay distinguishable through the errors package: a
// malformed_input means the bytes are corrupt, a schema_mismatch means
// well-formed bytes of the wrong shape, and a range_error means a
// numeric field does not fit its declared width. Every call is pure
// with respect to its inputs; a Codec is safe for concurrent use.
package envelope
