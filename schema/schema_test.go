package schema

import (
	"math"
	"reflect"
	"testing"

	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/msgpack"
)

var probeType = NewType("Probe",
	Required("name", FieldString),
	Required("count", FieldUint32),
	Optional("note", FieldString),
	Optional("tags", FieldStringList),
	Optional("attrs", FieldStringMap),
	Required("balance", FieldInt32),
	Optional("big", FieldUint64),
	Optional("flag", FieldBool),
	Optional("payload", FieldBinary),
)

func probeValue() msgpack.Value {
	return msgpack.Map(
		msgpack.Entry("name", msgpack.String("a")),
		msgpack.Entry("count", msgpack.Uint(3)),
		msgpack.Entry("balance", msgpack.Int(-7)),
	)
}

func TestType_FieldLookup(t *testing.T) {
	f, ok := probeType.Field("count")
	if !ok {
		t.Fatal("Field(count) not found")
	}
	if f.Kind != FieldUint32 || !f.Required {
		t.Errorf("Field(count) = %+v, want required uint32", f)
	}

	if _, ok := probeType.Field("nope"); ok {
		t.Error("Field(nope) should not be found")
	}

	if probeType.Name() != "Probe" {
		t.Errorf("Name() = %q, want Probe", probeType.Name())
	}
}

func TestType_Validate(t *testing.T) {
	tests := []struct {
		name    string
		val     msgpack.Value
		wantErr func(error) bool
	}{
		{"all required present", probeValue(), nil},
		{
			"extra unknown key tolerated",
			msgpack.Map(
				msgpack.Entry("name", msgpack.String("a")),
				msgpack.Entry("count", msgpack.Uint(3)),
				msgpack.Entry("balance", msgpack.Int(-7)),
				msgpack.Entry("futureField", msgpack.String("ignored")),
			),
			nil,
		},
		{
			"missing required",
			msgpack.Map(msgpack.Entry("name", msgpack.String("a"))),
			errors.IsSchemaMismatch,
		},
		{
			"wrong kind",
			msgpack.Map(
				msgpack.Entry("name", msgpack.Uint(1)),
				msgpack.Entry("count", msgpack.Uint(3)),
				msgpack.Entry("balance", msgpack.Int(-7)),
			),
			errors.IsSchemaMismatch,
		},
		{"not a mapping", msgpack.String("x"), errors.IsSchemaMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := probeType.Validate(tt.val)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !tt.wantErr(err) {
				t.Errorf("Validate() = %v, want matching fault", err)
			}
		})
	}
}

func TestDecoder_BindsFields(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("name", msgpack.String("widget")),
		msgpack.Entry("count", msgpack.Uint(12)),
		msgpack.Entry("note", msgpack.String("spare")),
		msgpack.Entry("tags", msgpack.Array(msgpack.String("a"), msgpack.String("b"))),
		msgpack.Entry("attrs", msgpack.Map(msgpack.Entry("color", msgpack.String("red")))),
		msgpack.Entry("balance", msgpack.Int(-2)),
		msgpack.Entry("big", msgpack.Uint(math.MaxUint64)),
		msgpack.Entry("flag", msgpack.Bool(true)),
		msgpack.Entry("payload", msgpack.Binary([]byte{9, 8})),
	)

	d := NewTypeDecoder(probeType, v)
	name := d.String("name")
	count := d.Uint32("count")
	note := d.OptionalString("note")
	tags := d.Strings("tags")
	attrs := d.StringMap("attrs")
	balance := d.Int32("balance")
	big := d.Uint64("big")
	flag := d.Bool("flag")
	payload := d.Bytes("payload")
	if err := d.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	if name != "widget" || count != 12 || balance != -2 || big != math.MaxUint64 || !flag {
		t.Errorf("scalars = %v %v %v %v %v", name, count, balance, big, flag)
	}
	if note == nil || *note != "spare" {
		t.Errorf("note = %v, want spare", note)
	}
	if !reflect.DeepEqual(tags, []string{"a", "b"}) {
		t.Errorf("tags = %v", tags)
	}
	if !reflect.DeepEqual(attrs, map[string]string{"color": "red"}) {
		t.Errorf("attrs = %v", attrs)
	}
	if !reflect.DeepEqual(payload, []byte{9, 8}) {
		t.Errorf("payload = %v", payload)
	}
}

func TestDecoder_MissingOptionalBindsZero(t *testing.T) {
	d := NewTypeDecoder(probeType, probeValue())
	if note := d.OptionalString("note"); note != nil {
		t.Errorf("note = %v, want nil", note)
	}
	if tags := d.Strings("tags"); tags != nil {
		t.Errorf("tags = %v, want nil", tags)
	}
	if flag := d.Bool("flag"); flag {
		t.Error("flag = true, want false")
	}
	if err := d.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestDecoder_MissingRequired(t *testing.T) {
	d := NewTypeDecoder(probeType, msgpack.Map(
		msgpack.Entry("count", msgpack.Uint(1)),
		msgpack.Entry("balance", msgpack.Int(0)),
	))
	_ = d.String("name")
	if err := d.Err(); !errors.IsSchemaMismatch(err) {
		t.Errorf("Err() = %v, want schema_mismatch", err)
	}
}

func TestDecoder_RangeFaults(t *testing.T) {
	tests := []struct {
		name string
		val  msgpack.Value
		bind func(*Decoder)
	}{
		{
			"uint32 overflow",
			msgpack.Map(msgpack.Entry("count", msgpack.Uint(math.MaxUint32 + 1))),
			func(d *Decoder) { d.Uint32("count") },
		},
		{
			"negative into uint32",
			msgpack.Map(msgpack.Entry("count", msgpack.Int(-1))),
			func(d *Decoder) { d.Uint32("count") },
		},
		{
			"int32 overflow",
			msgpack.Map(msgpack.Entry("balance", msgpack.Int(math.MaxInt32 + 1))),
			func(d *Decoder) { d.Int32("balance") },
		},
		{
			"int32 underflow",
			msgpack.Map(msgpack.Entry("balance", msgpack.Int(math.MinInt32 - 1))),
			func(d *Decoder) { d.Int32("balance") },
		},
		{
			"uint64 max into int64 field",
			msgpack.Map(msgpack.Entry("balance", msgpack.Uint(math.MaxUint64))),
			func(d *Decoder) { d.Int64("balance") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTypeDecoder(probeType, tt.val)
			tt.bind(d)
			if err := d.Err(); !errors.IsRange(err) {
				t.Errorf("Err() = %v, want range_error", err)
			}
		})
	}
}

func TestDecoder_KindMismatch(t *testing.T) {
	d := NewTypeDecoder(probeType, msgpack.Map(
		msgpack.Entry("name", msgpack.Uint(1)),
		msgpack.Entry("count", msgpack.Uint(2)),
		msgpack.Entry("balance", msgpack.Int(0)),
	))
	_ = d.String("name")
	err := d.Err()
	if !errors.IsSchemaMismatch(err) {
		t.Fatalf("Err() = %v, want schema_mismatch", err)
	}
	if errors.IsRange(err) {
		t.Error("kind mismatch must not read as range fault")
	}
}

func TestDecoder_FirstErrorWins(t *testing.T) {
	d := NewTypeDecoder(probeType, msgpack.Map(
		msgpack.Entry("name", msgpack.Uint(1)),
		msgpack.Entry("count", msgpack.String("bad too")),
		msgpack.Entry("balance", msgpack.Int(0)),
	))
	_ = d.String("name")
	first := d.Err()
	_ = d.Uint32("count")
	if d.Err() != first {
		t.Error("second fault overwrote the first")
	}
}

func TestDecoder_BytesAcceptsString(t *testing.T) {
	d := NewTypeDecoder(probeType, msgpack.Map(
		msgpack.Entry("payload", msgpack.String("raw")),
	))
	got := d.Bytes("payload")
	if err := d.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if string(got) != "raw" {
		t.Errorf("payload = %q, want raw", got)
	}
}

func TestBuilder_OrderAndSkips(t *testing.T) {
	var note *string
	b := NewBuilder()
	b.String("name", "widget")
	b.Uint32("count", 3)
	b.OptionalString("note", note)
	b.Int32("balance", -2)
	v := b.Value()

	entries, _ := v.AsMap()
	wantOrder := []string{"name", "count", "balance"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("entries = %d, want %d (absent optional skipped)", len(entries), len(wantOrder))
	}
	for i, k := range wantOrder {
		if entries[i].Key != k {
			t.Errorf("entry %d = %q, want %q", i, entries[i].Key, k)
		}
	}
}

func TestBuilder_StringMapDeterministic(t *testing.T) {
	m := map[string]string{"zebra": "1", "alpha": "2", "mike": "3"}
	b1 := NewBuilder()
	b1.StringMap("attrs", m)
	b2 := NewBuilder()
	b2.StringMap("attrs", m)

	d1 := msgpack.Marshal(b1.Value())
	d2 := msgpack.Marshal(b2.Value())
	if string(d1) != string(d2) {
		t.Error("StringMap encoding is not deterministic")
	}

	attrs, _ := b1.Value().Get("attrs")
	entries, _ := attrs.AsMap()
	if entries[0].Key != "alpha" || entries[1].Key != "mike" || entries[2].Key != "zebra" {
		t.Errorf("keys not sorted: %v %v %v", entries[0].Key, entries[1].Key, entries[2].Key)
	}
}

func TestEmpty(t *testing.T) {
	var e Empty
	data := msgpack.Marshal(e.ToValue())
	if string(data) != "\x80" {
		t.Errorf("Empty encodes as % x, want 80", data)
	}

	var decoded Empty
	if err := decoded.FromValue(msgpack.Map(msgpack.Entry("ignored", msgpack.Uint(1)))); err != nil {
		t.Errorf("FromValue with extra fields = %v, want nil", err)
	}
	if err := decoded.FromValue(msgpack.String("x")); !errors.IsSchemaMismatch(err) {
		t.Errorf("FromValue on non-map = %v, want schema_mismatch", err)
	}
}
