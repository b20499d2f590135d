// Package msgpack implements the codec's binary wire format: a
// MessagePack subset shared by the host runtime, capability providers,
// and actor modules.
//
// # Wire Format
//
// Every encoded Value starts with a single tag byte. Variable-width
// kinds carry an explicit big-endian length before the payload
// (MessagePack network byte order; lengths are never delimiter
// terminated, so payloads may contain arbitrary bytes):
//
//	Tag range   Kind
//	─────────────────────────────
//	0x00-0x7f   positive fixint
//	0x80-0x8f   fixmap (up to 15 pairs)
//	0x90-0x9f   fixarray (up to 15 elements)
//	0xa0-0xbf   fixstr (up to 31 bytes)
//	0xc0        nil
//	0xc2, 0xc3  false, true
//	0xc4-0xc6   bin 8/16/32
//	0xca, 0xcb  float 32/64
//	0xcc-0xcf   uint 8/16/32/64
//	0xd0-0xd3   int 8/16/32/64
//	0xd9-0xdb   str 8/16/32
//	0xdc, 0xdd  array 16/32
//	0xde, 0xdf  map 16/32
//	0xe0-0xff   negative fixint
//
// The MessagePack ext family (0xc1, 0xc7-0xc9, 0xd4-0xd8) is not part
// of this wire contract; decoding one fails with a malformed-input
// error.
//
// # Canonical Encoding
//
// Marshal always emits the shortest-width representation: non-negative
// integers use positive fixint or the smallest uint form, negative
// integers use negative fixint or the smallest int form, and strings,
// binary, arrays and maps use their fix forms when length permits.
// Decode accepts any well-formed width, so non-canonical output from a
// foreign peer still round-trips.
//
// # Values
//
// Value is the tagged union carried across the call boundary: nil,
// bool, signed/unsigned integer, 32/64-bit float, UTF-8 string, raw
// bytes, ordered array, and string-keyed map. Map entries keep their
// insertion order through encode and decode; Equal compares maps
// without regard to order.
//
// # Key Types
//
//	Value    - tagged union runtime representation
//	Encoder  - appends Values to a byte buffer
//	Decoder  - positional reader over a byte buffer
//
// Marshal and Unmarshal wrap the two for the whole-buffer case.
package msgpack
