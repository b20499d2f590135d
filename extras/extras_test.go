package extras

import (
	"testing"

	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/msgpack"
)

func TestGeneratorRequest_RoundTrip(t *testing.T) {
	in := &GeneratorRequest{Random: true, Min: 10, Max: 500}

	var out GeneratorRequest
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if out != *in {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestGeneratorRequest_MissingFlags(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("guid", msgpack.Bool(true)),
	)

	var m GeneratorRequest
	if err := m.FromValue(v); !errors.IsSchemaMismatch(err) {
		t.Fatalf("FromValue() error = %v, want schema_mismatch", err)
	}
}

func TestGeneratorResult_GuidPresent(t *testing.T) {
	in := SampleGeneratorResult()

	var out GeneratorResult
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if out.Guid == nil || *out.Guid != *in.Guid {
		t.Fatalf("Guid = %v, want %q", out.Guid, *in.Guid)
	}
}

func TestGeneratorResult_GuidAbsent(t *testing.T) {
	in := &GeneratorResult{SequenceNumber: 42, RandomNumber: 7}

	var out GeneratorResult
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if out.Guid != nil {
		t.Fatalf("Guid = %q, want nil", *out.Guid)
	}
	if out.SequenceNumber != 42 || out.RandomNumber != 7 {
		t.Fatalf("got %+v", out)
	}
}

func TestGeneratorResult_RandomNumberOverflow(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("randomNumber", msgpack.Uint(1<<35)),
	)

	var m GeneratorResult
	if err := m.FromValue(v); !errors.IsRange(err) {
		t.Fatalf("FromValue() error = %v, want range_error", err)
	}
}
