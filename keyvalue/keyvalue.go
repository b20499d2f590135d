// Package keyvalue defines the wire types for the key-value storage
// capability: plain keys, atomic counters, lists, and sets.
package keyvalue

import (
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

// Operation names for the key-value capability
const (
	OpGet             = "KeyValue.Get"
	OpSet             = "KeyValue.Set"
	OpDel             = "KeyValue.Del"
	OpAdd             = "KeyValue.Add"
	OpKeyExists       = "KeyValue.KeyExists"
	OpListClear       = "KeyValue.ListClear"
	OpListPush        = "KeyValue.ListPush"
	OpListDelItem     = "KeyValue.ListDelItem"
	OpListRange       = "KeyValue.ListRange"
	OpSetAdd          = "KeyValue.SetAdd"
	OpSetRemove       = "KeyValue.SetRemove"
	OpSetQuery        = "KeyValue.SetQuery"
	OpSetUnion        = "KeyValue.SetUnion"
	OpSetIntersection = "KeyValue.SetIntersection"
)

// Schemas for the key-value message set
var (
	GetRequestType = schema.NewType("GetRequest",
		schema.Required("key", schema.FieldString),
	)
	GetResponseType = schema.NewType("GetResponse",
		schema.Optional("value", schema.FieldString),
		schema.Required("exists", schema.FieldBool),
	)
	SetRequestType = schema.NewType("SetRequest",
		schema.Required("key", schema.FieldString),
		schema.Required("value", schema.FieldString),
		schema.Optional("expiresSeconds", schema.FieldUint32),
	)
	SetResponseType = schema.NewType("SetResponse",
		schema.Required("value", schema.FieldString),
	)
	DelRequestType = schema.NewType("DelRequest",
		schema.Required("key", schema.FieldString),
	)
	DelResponseType = schema.NewType("DelResponse",
		schema.Required("key", schema.FieldString),
	)
	AddRequestType = schema.NewType("AddRequest",
		schema.Required("key", schema.FieldString),
		schema.Required("value", schema.FieldInt32),
	)
	AddResponseType = schema.NewType("AddResponse",
		schema.Required("value", schema.FieldInt32),
	)
	ListClearRequestType = schema.NewType("ListClearRequest",
		schema.Required("key", schema.FieldString),
	)
	ListPushRequestType = schema.NewType("ListPushRequest",
		schema.Required("key", schema.FieldString),
		schema.Required("value", schema.FieldString),
	)
	ListDelItemRequestType = schema.NewType("ListDelItemRequest",
		schema.Required("key", schema.FieldString),
		schema.Required("value", schema.FieldString),
	)
	ListRangeRequestType = schema.NewType("ListRangeRequest",
		schema.Required("key", schema.FieldString),
		schema.Required("start", schema.FieldInt32),
		schema.Required("stop", schema.FieldInt32),
	)
	ListRangeResponseType = schema.NewType("ListRangeResponse",
		schema.Optional("values", schema.FieldStringList),
	)
	SetAddRequestType = schema.NewType("SetAddRequest",
		schema.Required("key", schema.FieldString),
		schema.Required("value", schema.FieldString),
	)
	SetRemoveRequestType = schema.NewType("SetRemoveRequest",
		schema.Required("key", schema.FieldString),
		schema.Required("value", schema.FieldString),
	)
	SetQueryRequestType = schema.NewType("SetQueryRequest",
		schema.Required("key", schema.FieldString),
	)
	SetQueryResponseType = schema.NewType("SetQueryResponse",
		schema.Optional("values", schema.FieldStringList),
	)
	SetUnionRequestType = schema.NewType("SetUnionRequest",
		schema.Required("keys", schema.FieldStringList),
	)
	SetIntersectionRequestType = schema.NewType("SetIntersectionRequest",
		schema.Required("keys", schema.FieldStringList),
	)
)

// GetRequest fetches a single value by key
type GetRequest struct {
	Key string
}

func (m *GetRequest) Schema() *schema.Type { return GetRequestType }

func (m *GetRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	return b.Value()
}

func (m *GetRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(GetRequestType, v)
	m.Key = d.String("key")
	return d.Err()
}

// GetResponse carries the fetched value. Exists distinguishes a missing
// key from a stored empty string.
type GetResponse struct {
	Value  string
	Exists bool
}

func (m *GetResponse) Schema() *schema.Type { return GetResponseType }

func (m *GetResponse) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("value", m.Value)
	b.Bool("exists", m.Exists)
	return b.Value()
}

func (m *GetResponse) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(GetResponseType, v)
	m.Value = d.String("value")
	m.Exists = d.Bool("exists")
	return d.Err()
}

// SetRequest stores a value under a key, optionally expiring it
type SetRequest struct {
	Key   string
	Value string
	// ExpiresSeconds of 0 means no expiration
	ExpiresSeconds uint32
}

func (m *SetRequest) Schema() *schema.Type { return SetRequestType }

func (m *SetRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	b.String("value", m.Value)
	b.Uint32("expiresSeconds", m.ExpiresSeconds)
	return b.Value()
}

func (m *SetRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(SetRequestType, v)
	m.Key = d.String("key")
	m.Value = d.String("value")
	m.ExpiresSeconds = d.Uint32("expiresSeconds")
	return d.Err()
}

// SetResponse echoes the stored value
type SetResponse struct {
	Value string
}

func (m *SetResponse) Schema() *schema.Type { return SetResponseType }

func (m *SetResponse) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("value", m.Value)
	return b.Value()
}

func (m *SetResponse) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(SetResponseType, v)
	m.Value = d.String("value")
	return d.Err()
}

// DelRequest removes a key
type DelRequest struct {
	Key string
}

func (m *DelRequest) Schema() *schema.Type { return DelRequestType }

func (m *DelRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	return b.Value()
}

func (m *DelRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(DelRequestType, v)
	m.Key = d.String("key")
	return d.Err()
}

// DelResponse echoes the removed key
type DelResponse struct {
	Key string
}

func (m *DelResponse) Schema() *schema.Type { return DelResponseType }

func (m *DelResponse) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	return b.Value()
}

func (m *DelResponse) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(DelResponseType, v)
	m.Key = d.String("key")
	return d.Err()
}

// AddRequest atomically adds a delta (possibly negative) to the integer
// stored under a key
type AddRequest struct {
	Key   string
	Value int32
}

func (m *AddRequest) Schema() *schema.Type { return AddRequestType }

func (m *AddRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	b.Int32("value", m.Value)
	return b.Value()
}

func (m *AddRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(AddRequestType, v)
	m.Key = d.String("key")
	m.Value = d.Int32("value")
	return d.Err()
}

// AddResponse carries the value after the atomic add
type AddResponse struct {
	Value int32
}

func (m *AddResponse) Schema() *schema.Type { return AddResponseType }

func (m *AddResponse) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Int32("value", m.Value)
	return b.Value()
}

func (m *AddResponse) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(AddResponseType, v)
	m.Value = d.Int32("value")
	return d.Err()
}

// ListClearRequest empties the list stored under a key
type ListClearRequest struct {
	Key string
}

func (m *ListClearRequest) Schema() *schema.Type { return ListClearRequestType }

func (m *ListClearRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	return b.Value()
}

func (m *ListClearRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(ListClearRequestType, v)
	m.Key = d.String("key")
	return d.Err()
}

// ListPushRequest appends a value to the list stored under a key
type ListPushRequest struct {
	Key   string
	Value string
}

func (m *ListPushRequest) Schema() *schema.Type { return ListPushRequestType }

func (m *ListPushRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	b.String("value", m.Value)
	return b.Value()
}

func (m *ListPushRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(ListPushRequestType, v)
	m.Key = d.String("key")
	m.Value = d.String("value")
	return d.Err()
}

// ListDelItemRequest removes the first occurrence of a value from the
// list stored under a key
type ListDelItemRequest struct {
	Key   string
	Value string
}

func (m *ListDelItemRequest) Schema() *schema.Type { return ListDelItemRequestType }

func (m *ListDelItemRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	b.String("value", m.Value)
	return b.Value()
}

func (m *ListDelItemRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(ListDelItemRequestType, v)
	m.Key = d.String("key")
	m.Value = d.String("value")
	return d.Err()
}

// ListRangeRequest reads list items between start and stop inclusive
type ListRangeRequest struct {
	Key   string
	Start int32
	Stop  int32
}

func (m *ListRangeRequest) Schema() *schema.Type { return ListRangeRequestType }

func (m *ListRangeRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	b.Int32("start", m.Start)
	b.Int32("stop", m.Stop)
	return b.Value()
}

func (m *ListRangeRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(ListRangeRequestType, v)
	m.Key = d.String("key")
	m.Start = d.Int32("start")
	m.Stop = d.Int32("stop")
	return d.Err()
}

// ListRangeResponse carries the items of a range read in list order
type ListRangeResponse struct {
	Values []string
}

func (m *ListRangeResponse) Schema() *schema.Type { return ListRangeResponseType }

func (m *ListRangeResponse) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Strings("values", m.Values)
	return b.Value()
}

func (m *ListRangeResponse) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(ListRangeResponseType, v)
	m.Values = d.Strings("values")
	return d.Err()
}

// SetAddRequest adds a value to the set stored under a key
type SetAddRequest struct {
	Key   string
	Value string
}

func (m *SetAddRequest) Schema() *schema.Type { return SetAddRequestType }

func (m *SetAddRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	b.String("value", m.Value)
	return b.Value()
}

func (m *SetAddRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(SetAddRequestType, v)
	m.Key = d.String("key")
	m.Value = d.String("value")
	return d.Err()
}

// SetRemoveRequest removes a value from the set stored under a key
type SetRemoveRequest struct {
	Key   string
	Value string
}

func (m *SetRemoveRequest) Schema() *schema.Type { return SetRemoveRequestType }

func (m *SetRemoveRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	b.String("value", m.Value)
	return b.Value()
}

func (m *SetRemoveRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(SetRemoveRequestType, v)
	m.Key = d.String("key")
	m.Value = d.String("value")
	return d.Err()
}

// SetQueryRequest lists the members of the set stored under a key
type SetQueryRequest struct {
	Key string
}

func (m *SetQueryRequest) Schema() *schema.Type { return SetQueryRequestType }

func (m *SetQueryRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("key", m.Key)
	return b.Value()
}

func (m *SetQueryRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(SetQueryRequestType, v)
	m.Key = d.String("key")
	return d.Err()
}

// SetQueryResponse carries set members. Member order is not
// significant.
type SetQueryResponse struct {
	Values []string
}

func (m *SetQueryResponse) Schema() *schema.Type { return SetQueryResponseType }

func (m *SetQueryResponse) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Strings("values", m.Values)
	return b.Value()
}

func (m *SetQueryResponse) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(SetQueryResponseType, v)
	m.Values = d.Strings("values")
	return d.Err()
}

// SetUnionRequest computes the union of the sets stored under keys
type SetUnionRequest struct {
	Keys []string
}

func (m *SetUnionRequest) Schema() *schema.Type { return SetUnionRequestType }

func (m *SetUnionRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Strings("keys", m.Keys)
	return b.Value()
}

func (m *SetUnionRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(SetUnionRequestType, v)
	m.Keys = d.Strings("keys")
	return d.Err()
}

// SetIntersectionRequest computes the intersection of the sets stored
// under keys
type SetIntersectionRequest struct {
	Keys []string
}

func (m *SetIntersectionRequest) Schema() *schema.Type { return SetIntersectionRequestType }

func (m *SetIntersectionRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Strings("keys", m.Keys)
	return b.Value()
}

func (m *SetIntersectionRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(SetIntersectionRequestType, v)
	m.Keys = d.Strings("keys")
	return d.Err()
}

// SampleSetRequest returns a representative SetRequest for codec
// validation tooling
func SampleSetRequest() *SetRequest {
	return &SetRequest{
		Key:            "counter:175",
		Value:          "42",
		ExpiresSeconds: 300,
	}
}

// SampleListRangeResponse returns a representative ListRangeResponse
// for codec validation tooling
func SampleListRangeResponse() *ListRangeResponse {
	return &ListRangeResponse{
		Values: []string{"a", "b", "c"},
	}
}
