package keyvalue

import (
	"reflect"
	"testing"

	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   schema.Message
		out  schema.Message
	}{
		{"GetRequest", &GetRequest{Key: "user:17"}, &GetRequest{}},
		{"GetResponse", &GetResponse{Value: "active", Exists: true}, &GetResponse{}},
		{"SetRequest", SampleSetRequest(), &SetRequest{}},
		{"SetResponse", &SetResponse{Value: "active"}, &SetResponse{}},
		{"DelRequest", &DelRequest{Key: "user:17"}, &DelRequest{}},
		{"DelResponse", &DelResponse{Key: "user:17"}, &DelResponse{}},
		{"AddRequest", &AddRequest{Key: "counter", Value: -5}, &AddRequest{}},
		{"AddResponse", &AddResponse{Value: 37}, &AddResponse{}},
		{"ListClearRequest", &ListClearRequest{Key: "queue"}, &ListClearRequest{}},
		{"ListPushRequest", &ListPushRequest{Key: "queue", Value: "job-1"}, &ListPushRequest{}},
		{"ListDelItemRequest", &ListDelItemRequest{Key: "queue", Value: "job-1"}, &ListDelItemRequest{}},
		{"ListRangeRequest", &ListRangeRequest{Key: "queue", Start: -10, Stop: -1}, &ListRangeRequest{}},
		{"ListRangeResponse", SampleListRangeResponse(), &ListRangeResponse{}},
		{"SetAddRequest", &SetAddRequest{Key: "tags", Value: "urgent"}, &SetAddRequest{}},
		{"SetRemoveRequest", &SetRemoveRequest{Key: "tags", Value: "urgent"}, &SetRemoveRequest{}},
		{"SetQueryRequest", &SetQueryRequest{Key: "tags"}, &SetQueryRequest{}},
		{"SetQueryResponse", &SetQueryResponse{Values: []string{"urgent", "review"}}, &SetQueryResponse{}},
		{"SetUnionRequest", &SetUnionRequest{Keys: []string{"tags:a", "tags:b"}}, &SetUnionRequest{}},
		{"SetIntersectionRequest", &SetIntersectionRequest{Keys: []string{"tags:a", "tags:b"}}, &SetIntersectionRequest{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.in.ToValue()
			if err := tc.in.Schema().Validate(v); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if err := tc.out.FromValue(v); err != nil {
				t.Fatalf("FromValue() error = %v", err)
			}
			if !reflect.DeepEqual(tc.out, tc.in) {
				t.Fatalf("round trip = %+v, want %+v", tc.out, tc.in)
			}
		})
	}
}

func TestSetRequest_ExpirationOptional(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("key", msgpack.String("session")),
		msgpack.Entry("value", msgpack.String("active")),
	)

	var m SetRequest
	if err := m.FromValue(v); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if m.ExpiresSeconds != 0 {
		t.Fatalf("ExpiresSeconds = %d, want 0", m.ExpiresSeconds)
	}
}

func TestSetRequest_ExpirationOverflow(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("key", msgpack.String("session")),
		msgpack.Entry("value", msgpack.String("active")),
		msgpack.Entry("expiresSeconds", msgpack.Uint(1<<36)),
	)

	var m SetRequest
	if err := m.FromValue(v); !errors.IsRange(err) {
		t.Fatalf("FromValue() error = %v, want range_error", err)
	}
}

func TestAddRequest_DeltaOverflow(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("key", msgpack.String("counter")),
		msgpack.Entry("value", msgpack.Int(1<<40)),
	)

	var m AddRequest
	if err := m.FromValue(v); !errors.IsRange(err) {
		t.Fatalf("FromValue() error = %v, want range_error", err)
	}
}

func TestSetUnionRequest_MissingKeys(t *testing.T) {
	var m SetUnionRequest
	if err := m.FromValue(msgpack.Map()); !errors.IsSchemaMismatch(err) {
		t.Fatalf("FromValue() error = %v, want schema_mismatch", err)
	}
}

func TestGetRequest_UnknownKeysIgnored(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("key", msgpack.String("user:17")),
		msgpack.Entry("consistency", msgpack.String("strong")),
	)

	var m GetRequest
	if err := m.FromValue(v); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if m.Key != "user:17" {
		t.Fatalf("Key = %q", m.Key)
	}
}
