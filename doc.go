// Package actorcodec provides the shared wire-format schema and codec for
// actor and capability-provider message exchange.
//
// Every payload crossing the actor boundary is a self-describing binary
// document built from a small primitive vocabulary, bound to a named
// schema type, and addressed by a fully qualified operation name. Hosts,
// providers, and guest modules all compile against the same catalog, so a
// byte stream produced by one party decodes identically on every other.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	actorcodec/          Root package with Serialize and Deserialize entry points
//	├── msgpack/         Tagged binary primitive codec (wire layer)
//	├── schema/          Schema types, field descriptors, and value binding
//	├── registry/        Operation name to request/response type mapping
//	├── envelope/        Schema-checked encode/decode for operation payloads
//	├── catalog/         The fixed, fleet-wide operation catalog
//	├── errors/          Structured error types for codec failures
//	├── core/            Host lifecycle messages and capability descriptors
//	├── messaging/       Broker publish/request message shapes
//	├── httpcodec/       HTTP server and client request/response shapes
//	├── keyvalue/        Key-value store operation shapes
//	├── blobstore/       Chunked blob transfer shapes
//	├── extras/          GUID, sequence, and random generator shapes
//	├── eventstreams/    Append-only event stream shapes
//	└── logging/         Leveled log write shapes
//
// # Quick Start
//
// Encode a request and decode it back:
//
//	req := &keyvalue.SetRequest{Key: "answer", Value: "42", ExpiresSeconds: 60}
//	data, err := actorcodec.Serialize(req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var got keyvalue.SetRequest
//	if err := actorcodec.Deserialize(data, &got); err != nil {
//	    log.Fatal(err)
//	}
//
// Route through the catalog when the operation name arrives over the wire:
//
//	reg, _ := catalog.New()
//	codec := envelope.New(reg)
//	data, err := codec.EncodeRequest(keyvalue.OpSet, req)
//
// # Compatibility
//
// Decoding ignores map keys that no schema field declares, and missing
// optional fields bind to zero values. Old readers therefore accept
// payloads from newer writers that only add optional fields. A missing
// required field is a schema mismatch; a numeric value that does not fit
// the declared field width is a range error, never a silent truncation.
//
// # Thread Safety
//
// Schema types, the registry, and envelope codecs are immutable after
// construction and safe for concurrent use. Populate the registry during
// single-threaded startup.
package actorcodec
