package blobstore

import (
	"reflect"
	"testing"

	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/msgpack"
)

func TestFileChunk_RoundTrip(t *testing.T) {
	in := SampleFileChunk()

	var out FileChunk
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if !reflect.DeepEqual(out, *in) {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestFileChunk_MissingSequenceNo(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("container", msgpack.String("c")),
		msgpack.Entry("id", msgpack.String("b")),
		msgpack.Entry("totalBytes", msgpack.Uint(10)),
		msgpack.Entry("chunkSize", msgpack.Uint(10)),
	)

	var m FileChunk
	if err := m.FromValue(v); !errors.IsSchemaMismatch(err) {
		t.Fatalf("FromValue() error = %v, want schema_mismatch", err)
	}
}

func TestContainerList_RoundTrip(t *testing.T) {
	in := &ContainerList{
		Containers: []Container{{ID: "alpha"}, {ID: "beta"}, {ID: "gamma"}},
	}

	var out ContainerList
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if !reflect.DeepEqual(out, *in) {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestContainerList_Empty(t *testing.T) {
	var out ContainerList
	if err := out.FromValue(msgpack.Map()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if len(out.Containers) != 0 {
		t.Fatalf("Containers = %v, want empty", out.Containers)
	}
}

func TestContainerList_ElementMissingID(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("containers", msgpack.Array(msgpack.Map())),
	)

	var m ContainerList
	if err := m.FromValue(v); !errors.IsSchemaMismatch(err) {
		t.Fatalf("FromValue() error = %v, want schema_mismatch", err)
	}
}

func TestBlobList_RoundTrip(t *testing.T) {
	in := &BlobList{
		Blobs: []Blob{
			{ID: "report.pdf", Container: "docs", ByteSize: 88212},
			{ID: "logo.png", Container: "assets", ByteSize: 4096},
		},
	}

	var out BlobList
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if !reflect.DeepEqual(out, *in) {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestStreamRequest_RoundTrip(t *testing.T) {
	in := &StreamRequest{ID: "blob", Container: "container", ChunkSize: 4096}

	var out StreamRequest
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if out != *in {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestTransfer_RoundTrip(t *testing.T) {
	in := &Transfer{
		BlobID:      "blob",
		Container:   "container",
		ChunkSize:   1024,
		TotalSize:   53400,
		TotalChunks: 53,
	}

	var out Transfer
	if err := out.FromValue(in.ToValue()); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	if out != *in {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestBlob_ByteSizeKindMismatch(t *testing.T) {
	v := msgpack.Map(
		msgpack.Entry("id", msgpack.String("b")),
		msgpack.Entry("container", msgpack.String("c")),
		msgpack.Entry("byteSize", msgpack.String("4096")),
	)

	var m Blob
	if err := m.FromValue(v); !errors.IsSchemaMismatch(err) {
		t.Fatalf("FromValue() error = %v, want schema_mismatch", err)
	}
}
