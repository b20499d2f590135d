package eventstreams

import (
	"reflect"
	"testing"

	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/msgpack"
)

func TestEvent_RoundTrip(t *testing.T) {
	in := &Event{
		EventID: "evt-100",
		Stream:  "orders",
		Values:  map[string]string{"sku": "A-17", "qty": "3"},
	}

	var out Event
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if !reflect.DeepEqual(out, *in) {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestWriteResponse_RoundTrip(t *testing.T) {
	in := &WriteResponse{EventID: "evt-100"}

	var out WriteResponse
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if out != *in {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestStreamQuery_RoundTripWithRange(t *testing.T) {
	in := SampleStreamQuery()

	var out StreamQuery
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if !reflect.DeepEqual(out, *in) {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestStreamQuery_RangeAbsent(t *testing.T) {
	in := &StreamQuery{StreamID: "stream1", Count: 10}

	var out StreamQuery
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if out.Range != nil {
		t.Fatalf("Range = %+v, want nil", out.Range)
	}
}

func TestStreamQuery_RangeMissingBound(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("streamId", msgpack.String("stream1")),
		msgpack.Entry("range", msgpack.Map(
			msgpack.Entry("minTime", msgpack.Uint(0)),
		)),
		msgpack.Entry("count", msgpack.Uint(5)),
	)

	var q StreamQuery
	if err := q.FromValue(v); !errors.IsSchemaMismatch(err) {
		t.Fatalf("FromValue() error = %v, want schema_mismatch", err)
	}
}

func TestStreamResults_RoundTrip(t *testing.T) {
	in := &StreamResults{
		Events: []Event{
			{EventID: "evt-1", Stream: "orders", Values: map[string]string{"sku": "A-17"}},
			{EventID: "evt-2", Stream: "orders", Values: map[string]string{"sku": "B-20"}},
		},
	}

	var out StreamResults
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if !reflect.DeepEqual(out, *in) {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestStreamResults_Empty(t *testing.T) {
	var out StreamResults
	if err := out.FromValue(msgpack.Map()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if len(out.Events) != 0 {
		t.Fatalf("Events = %v, want empty", out.Events)
	}
}
