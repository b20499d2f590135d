// Package blobstore defines the wire types for the binary object
// storage capability. Blobs move as segmented file streams: an upload
// or download is a metadata-carrying chunk followed by data chunks.
package blobstore

import (
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

// Operation names for the blob store capability
const (
	// OpCreateContainer sends a Container, receives the created Container
	OpCreateContainer = "BlobStore.CreateContainer"
	// OpRemoveContainer removes a container; lack of error indicates success
	OpRemoveContainer = "BlobStore.RemoveContainer"
	// OpRemoveObject removes a single blob
	OpRemoveObject = "BlobStore.RemoveObject"
	// OpListObjects lists the blobs in a container
	OpListObjects = "BlobStore.ListObjects"
	// OpUploadChunk stores one piece of a blob being uploaded
	OpUploadChunk = "BlobStore.UploadChunk"
	// OpStartDownload begins streaming chunks back to the caller, which
	// then receives OpReceiveChunk operations as the provider streams
	OpStartDownload = "BlobStore.StartDownload"
	// OpStartUpload initiates an upload with a metadata-carrying chunk
	OpStartUpload = "BlobStore.StartUpload"
	// OpReceiveChunk delivers one piece of a requested download
	OpReceiveChunk = "BlobStore.ReceiveChunk"
	// OpGetObjectInfo queries metadata for a single blob
	OpGetObjectInfo = "BlobStore.GetObjectInfo"
)

// Schemas for the blob store message set
var (
	FileChunkType = schema.NewType("FileChunk",
		schema.Required("sequenceNo", schema.FieldUint64),
		schema.Required("container", schema.FieldString),
		schema.Required("id", schema.FieldString),
		schema.Required("totalBytes", schema.FieldUint64),
		schema.Required("chunkSize", schema.FieldUint64),
		schema.Optional("chunkBytes", schema.FieldBinary),
	)
	ContainerType = schema.NewType("Container",
		schema.Required("id", schema.FieldString),
	)
	ContainerListType = schema.NewType("ContainerList",
		schema.Optional("containers", schema.FieldValue),
	)
	BlobType = schema.NewType("Blob",
		schema.Required("id", schema.FieldString),
		schema.Required("container", schema.FieldString),
		schema.Required("byteSize", schema.FieldUint64),
	)
	BlobListType = schema.NewType("BlobList",
		schema.Optional("blobs", schema.FieldValue),
	)
	StreamRequestType = schema.NewType("StreamRequest",
		schema.Required("id", schema.FieldString),
		schema.Required("container", schema.FieldString),
		schema.Required("chunkSize", schema.FieldUint64),
	)
	TransferType = schema.NewType("Transfer",
		schema.Required("blobId", schema.FieldString),
		schema.Required("container", schema.FieldString),
		schema.Required("chunkSize", schema.FieldUint64),
		schema.Required("totalSize", schema.FieldUint64),
		schema.Required("totalChunks", schema.FieldUint64),
	)
)

// FileChunk is a single chunk of a segmented file stream
type FileChunk struct {
	// SequenceNo orders chunks and supports retry logic
	SequenceNo uint64
	// The container in which this file exists
	Container string
	// The unique ID of the blob
	ID string
	// Total number of bytes in the entire blob
	TotalBytes uint64
	// The number of bytes in any given chunk. The last chunk of a
	// stream may be shorter.
	ChunkSize uint64
	// The raw bytes contained in this chunk
	ChunkBytes []byte
}

func (m *FileChunk) Schema() *schema.Type { return FileChunkType }

func (m *FileChunk) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Uint64("sequenceNo", m.SequenceNo)
	b.String("container", m.Container)
	b.String("id", m.ID)
	b.Uint64("totalBytes", m.TotalBytes)
	b.Uint64("chunkSize", m.ChunkSize)
	b.Bytes("chunkBytes", m.ChunkBytes)
	return b.Value()
}

func (m *FileChunk) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(FileChunkType, v)
	m.SequenceNo = d.Uint64("sequenceNo")
	m.Container = d.String("container")
	m.ID = d.String("id")
	m.TotalBytes = d.Uint64("totalBytes")
	m.ChunkSize = d.Uint64("chunkSize")
	m.ChunkBytes = d.Bytes("chunkBytes")
	return d.Err()
}

// Container identifies a container within a blob store
type Container struct {
	ID string
}

func (m *Container) Schema() *schema.Type { return ContainerType }

func (m *Container) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("id", m.ID)
	return b.Value()
}

func (m *Container) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(ContainerType, v)
	m.ID = d.String("id")
	return d.Err()
}

// ContainerList holds a list of containers
type ContainerList struct {
	Containers []Container
}

func (m *ContainerList) Schema() *schema.Type { return ContainerListType }

func (m *ContainerList) ToValue() msgpack.Value {
	elems := make([]msgpack.Value, len(m.Containers))
	for i := range m.Containers {
		elems[i] = m.Containers[i].ToValue()
	}
	b := schema.NewBuilder()
	b.Array("containers", elems)
	return b.Value()
}

func (m *ContainerList) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(ContainerListType, v)
	elems := d.Array("containers")
	if err := d.Err(); err != nil {
		return err
	}
	m.Containers = make([]Container, len(elems))
	for i, elem := range elems {
		if err := m.Containers[i].FromValue(elem); err != nil {
			return err
		}
	}
	return nil
}

// Blob is metadata about a blob, not the raw bytes
type Blob struct {
	// Unique ID of the blob
	ID string
	// Container in which the blob resides
	Container string
	// Total number of bytes of the blob (file size)
	ByteSize uint64
}

func (m *Blob) Schema() *schema.Type { return BlobType }

func (m *Blob) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("id", m.ID)
	b.String("container", m.Container)
	b.Uint64("byteSize", m.ByteSize)
	return b.Value()
}

func (m *Blob) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(BlobType, v)
	m.ID = d.String("id")
	m.Container = d.String("container")
	m.ByteSize = d.Uint64("byteSize")
	return d.Err()
}

// BlobList wraps a list of blobs
type BlobList struct {
	Blobs []Blob
}

func (m *BlobList) Schema() *schema.Type { return BlobListType }

func (m *BlobList) ToValue() msgpack.Value {
	elems := make([]msgpack.Value, len(m.Blobs))
	for i := range m.Blobs {
		elems[i] = m.Blobs[i].ToValue()
	}
	b := schema.NewBuilder()
	b.Array("blobs", elems)
	return b.Value()
}

func (m *BlobList) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(BlobListType, v)
	elems := d.Array("blobs")
	if err := d.Err(); err != nil {
		return err
	}
	m.Blobs = make([]Blob, len(elems))
	for i, elem := range elems {
		if err := m.Blobs[i].FromValue(elem); err != nil {
			return err
		}
	}
	return nil
}

// StreamRequest begins downloading a stream for a blob
type StreamRequest struct {
	// The unique ID of the requested blob
	ID string
	// The container of the requested blob
	Container string
	// The preferred chunk size. Consumers must not assume delivered
	// chunks are this size.
	ChunkSize uint64
}

func (m *StreamRequest) Schema() *schema.Type { return StreamRequestType }

func (m *StreamRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("id", m.ID)
	b.String("container", m.Container)
	b.Uint64("chunkSize", m.ChunkSize)
	return b.Value()
}

func (m *StreamRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(StreamRequestType, v)
	m.ID = d.String("id")
	m.Container = d.String("container")
	m.ChunkSize = d.Uint64("chunkSize")
	return d.Err()
}

// Transfer is metadata about an in-progress file transfer
type Transfer struct {
	BlobID      string
	Container   string
	ChunkSize   uint64
	TotalSize   uint64
	TotalChunks uint64
}

func (m *Transfer) Schema() *schema.Type { return TransferType }

func (m *Transfer) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("blobId", m.BlobID)
	b.String("container", m.Container)
	b.Uint64("chunkSize", m.ChunkSize)
	b.Uint64("totalSize", m.TotalSize)
	b.Uint64("totalChunks", m.TotalChunks)
	return b.Value()
}

func (m *Transfer) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(TransferType, v)
	m.BlobID = d.String("blobId")
	m.Container = d.String("container")
	m.ChunkSize = d.Uint64("chunkSize")
	m.TotalSize = d.Uint64("totalSize")
	m.TotalChunks = d.Uint64("totalChunks")
	return d.Err()
}

// SampleFileChunk returns a representative FileChunk for codec
// validation tooling
func SampleFileChunk() *FileChunk {
	return &FileChunk{
		SequenceNo: 5,
		Container:  "container",
		ID:         "blob",
		TotalBytes: 53400,
		ChunkSize:  1024,
		ChunkBytes: []byte{1, 2, 3, 4, 5},
	}
}

// SampleContainerList returns a representative ContainerList for codec
// validation tooling
func SampleContainerList() *ContainerList {
	return &ContainerList{
		Containers: []Container{{ID: "container"}},
	}
}
