// Package catalog populates an operation registry with the complete,
// fixed operation set of the capability schema. Every component in the
// fleet compiles against the same catalog version; there is no dynamic
// registration.
package catalog

import (
	"github.com/wippyai/actor-codec/blobstore"
	"github.com/wippyai/actor-codec/core"
	"github.com/wippyai/actor-codec/eventstreams"
	"github.com/wippyai/actor-codec/extras"
	"github.com/wippyai/actor-codec/httpcodec"
	"github.com/wippyai/actor-codec/keyvalue"
	"github.com/wippyai/actor-codec/logging"
	"github.com/wippyai/actor-codec/messaging"
	"github.com/wippyai/actor-codec/registry"
	"github.com/wippyai/actor-codec/schema"
)

type entry struct {
	name     string
	request  *schema.Type
	response *schema.Type
}

// operations is the authoritative operation table. Adding an operation
// here is a schema version change for the whole fleet.
var operations = []entry{
	// host/actor core
	{core.OpPerformLiveUpdate, core.LiveUpdateType, schema.EmptyType},
	{core.OpHealthRequest, core.HealthRequestType, schema.EmptyType},
	{core.OpInitialize, core.CapabilityConfigurationType, schema.EmptyType},
	{core.OpBindActor, core.CapabilityConfigurationType, schema.EmptyType},
	{core.OpRemoveActor, core.CapabilityConfigurationType, schema.EmptyType},
	{core.OpGetCapabilityDescriptor, schema.EmptyType, core.CapabilityDescriptorType},

	// messaging
	{messaging.OpPublish, messaging.BrokerMessageType, schema.EmptyType},
	{messaging.OpDeliverMessage, messaging.BrokerMessageType, schema.EmptyType},
	{messaging.OpRequest, messaging.RequestMessageType, messaging.BrokerMessageType},

	// http server and client
	{httpcodec.OpHandleRequest, httpcodec.RequestType, httpcodec.ResponseType},
	{httpcodec.OpPerformRequest, httpcodec.RequestType, httpcodec.ResponseType},

	// key-value
	{keyvalue.OpGet, keyvalue.GetRequestType, keyvalue.GetResponseType},
	{keyvalue.OpSet, keyvalue.SetRequestType, keyvalue.SetResponseType},
	{keyvalue.OpDel, keyvalue.DelRequestType, keyvalue.DelResponseType},
	{keyvalue.OpAdd, keyvalue.AddRequestType, keyvalue.AddResponseType},
	{keyvalue.OpKeyExists, keyvalue.GetRequestType, keyvalue.GetResponseType},
	{keyvalue.OpListClear, keyvalue.ListClearRequestType, schema.EmptyType},
	{keyvalue.OpListPush, keyvalue.ListPushRequestType, schema.EmptyType},
	{keyvalue.OpListDelItem, keyvalue.ListDelItemRequestType, schema.EmptyType},
	{keyvalue.OpListRange, keyvalue.ListRangeRequestType, keyvalue.ListRangeResponseType},
	{keyvalue.OpSetAdd, keyvalue.SetAddRequestType, schema.EmptyType},
	{keyvalue.OpSetRemove, keyvalue.SetRemoveRequestType, schema.EmptyType},
	{keyvalue.OpSetQuery, keyvalue.SetQueryRequestType, keyvalue.SetQueryResponseType},
	{keyvalue.OpSetUnion, keyvalue.SetUnionRequestType, keyvalue.SetQueryResponseType},
	{keyvalue.OpSetIntersection, keyvalue.SetIntersectionRequestType, keyvalue.SetQueryResponseType},

	// blob store
	{blobstore.OpCreateContainer, blobstore.ContainerType, blobstore.ContainerType},
	{blobstore.OpRemoveContainer, blobstore.ContainerType, schema.EmptyType},
	{blobstore.OpRemoveObject, blobstore.BlobType, schema.EmptyType},
	{blobstore.OpListObjects, blobstore.ContainerType, blobstore.BlobListType},
	{blobstore.OpUploadChunk, blobstore.FileChunkType, schema.EmptyType},
	{blobstore.OpStartDownload, blobstore.StreamRequestType, schema.EmptyType},
	{blobstore.OpStartUpload, blobstore.FileChunkType, schema.EmptyType},
	{blobstore.OpReceiveChunk, blobstore.FileChunkType, schema.EmptyType},
	{blobstore.OpGetObjectInfo, blobstore.BlobType, blobstore.BlobType},

	// extras
	{extras.OpRequestGuid, extras.GeneratorRequestType, extras.GeneratorResultType},
	{extras.OpRequestSequence, extras.GeneratorRequestType, extras.GeneratorResultType},
	{extras.OpRequestRandom, extras.GeneratorRequestType, extras.GeneratorResultType},

	// event streams
	{eventstreams.OpDeliverEvent, eventstreams.EventType, schema.EmptyType},
	{eventstreams.OpWriteEvent, eventstreams.EventType, eventstreams.WriteResponseType},
	{eventstreams.OpQueryStream, eventstreams.StreamQueryType, eventstreams.StreamResultsType},

	// logging
	{logging.OpWriteLog, logging.WriteLogRequestType, schema.EmptyType},
}

// New builds a registry holding the complete catalog. Run it once
// during single-threaded startup, before any encode or decode call. A
// failure is a build-time catalog inconsistency and should abort
// initialization.
func New() (*registry.Registry, error) {
	reg := registry.New()
	for _, op := range operations {
		if err := reg.Register(op.name, op.request, op.response); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
