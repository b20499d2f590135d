// Package core defines the wire types exchanged between the host
// runtime and any actor or capability provider, independent of a
// specific capability domain, plus the collaborator-facing dispatch
// interfaces.
package core

import (
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

// Operation names for host/actor core communication
const (
	// OpPerformLiveUpdate replaces a running actor module
	OpPerformLiveUpdate = "Core.PerformLiveUpdate"
	// OpHealthRequest probes an actor; an empty result means healthy
	OpHealthRequest = "Core.HealthRequest"
	// OpInitialize passes initial configuration to a provider
	OpInitialize = "Core.Initialize"
	// OpBindActor binds an actor's configuration to a provider
	OpBindActor = "Core.BindActor"
	// OpRemoveActor removes an actor's configuration from a provider
	OpRemoveActor = "Core.RemoveActor"
	// OpGetCapabilityDescriptor asks a provider to describe itself; every
	// provider must answer it
	OpGetCapabilityDescriptor = "Core.GetCapabilityDescriptor"
)

// SystemActor is the originator of messages dispatched by the host
// runtime itself
const SystemActor = "system"

// Keys used for providing actor claim data to a capability provider
// during binding
const (
	ConfigClaimsIssuer       = "__issuer"
	ConfigClaimsCapabilities = "__capabilities"
	ConfigClaimsName         = "__name"
	ConfigClaimsExpires      = "__expires"
	ConfigClaimsTags         = "__tags"
)

// Schemas for the core message set
var (
	LiveUpdateType = schema.NewType("LiveUpdate",
		schema.Required("newModule", schema.FieldBinary),
	)
	HealthRequestType = schema.NewType("HealthRequest",
		schema.Required("placeholder", schema.FieldBool),
	)
	CapabilityConfigurationType = schema.NewType("CapabilityConfiguration",
		schema.Required("module", schema.FieldString),
		schema.Optional("values", schema.FieldStringMap),
	)
	CapabilityDescriptorType = schema.NewType("CapabilityDescriptor",
		schema.Required("id", schema.FieldString),
		schema.Required("name", schema.FieldString),
		schema.Required("version", schema.FieldString),
		schema.Required("revision", schema.FieldUint32),
		schema.Optional("long_description", schema.FieldString),
		schema.Optional("supported_operations", schema.FieldValue),
	)
	OperationDescriptorType = schema.NewType("OperationDescriptor",
		schema.Required("name", schema.FieldString),
		schema.Required("direction", schema.FieldString),
		schema.Optional("doctext", schema.FieldString),
	)
)

// LiveUpdate carries the raw bytes of a replacement actor module. The
// host sends it from the system origin; if the bytes are valid they
// replace the running actor.
type LiveUpdate struct {
	NewModule []byte
}

func (m *LiveUpdate) Schema() *schema.Type { return LiveUpdateType }

func (m *LiveUpdate) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Bytes("newModule", m.NewModule)
	return b.Value()
}

func (m *LiveUpdate) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(LiveUpdateType, v)
	m.NewModule = d.Bytes("newModule")
	return d.Err()
}

// HealthRequest probes an actor module. A guest that returns the empty
// result is considered healthy; more fields may appear here in the
// future for finer-grained detection.
type HealthRequest struct {
	// Placeholder is not currently used for health checks
	Placeholder bool
}

func (m *HealthRequest) Schema() *schema.Type { return HealthRequestType }

func (m *HealthRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Bool("placeholder", m.Placeholder)
	return b.Value()
}

func (m *HealthRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(HealthRequestType, v)
	m.Placeholder = d.Bool("placeholder")
	return d.Err()
}

// CapabilityConfiguration carries per-actor configuration values to a
// provider. Module is the public key of the actor; providers treat it
// as an opaque configuration key.
type CapabilityConfiguration struct {
	Module string
	Values map[string]string
}

func (m *CapabilityConfiguration) Schema() *schema.Type { return CapabilityConfigurationType }

func (m *CapabilityConfiguration) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("module", m.Module)
	b.StringMap("values", m.Values)
	return b.Value()
}

func (m *CapabilityConfiguration) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(CapabilityConfigurationType, v)
	m.Module = d.String("module")
	m.Values = d.StringMap("values")
	return d.Err()
}

// OperationDirection indicates which way an operation flows
type OperationDirection string

const (
	DirectionToActor    OperationDirection = "to_actor"
	DirectionToProvider OperationDirection = "to_provider"
	DirectionBoth       OperationDirection = "both"
)

// OperationDescriptor describes a single operation supported by a
// capability provider. Name must be unique per capability ID.
type OperationDescriptor struct {
	Name      string
	Direction OperationDirection
	DocText   string
}

func (m *OperationDescriptor) Schema() *schema.Type { return OperationDescriptorType }

func (m *OperationDescriptor) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("name", m.Name)
	b.String("direction", string(m.Direction))
	b.String("doctext", m.DocText)
	return b.Value()
}

func (m *OperationDescriptor) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(OperationDescriptorType, v)
	m.Name = d.String("name")
	m.Direction = OperationDirection(d.String("direction"))
	m.DocText = d.String("doctext")
	return d.Err()
}

// CapabilityDescriptor is the metadata a provider returns from
// OpGetCapabilityDescriptor: identity, version, and the operations it
// supports.
type CapabilityDescriptor struct {
	// The capability ID, e.g. `messaging` or `thirdparty:someprovider`
	ID string
	// Human-friendly name shown in short messages and log entries
	Name string
	// Semver string of the provider module
	Version string
	// Monotonically increasing revision number
	Revision uint32
	// Longer, documentation-friendly description
	LongDescription string
	// Every operation supported by the provider
	SupportedOperations []OperationDescriptor
}

func (m *CapabilityDescriptor) Schema() *schema.Type { return CapabilityDescriptorType }

func (m *CapabilityDescriptor) ToValue() msgpack.Value {
	ops := make([]msgpack.Value, len(m.SupportedOperations))
	for i := range m.SupportedOperations {
		ops[i] = m.SupportedOperations[i].ToValue()
	}
	b := schema.NewBuilder()
	b.String("id", m.ID)
	b.String("name", m.Name)
	b.String("version", m.Version)
	b.Uint32("revision", m.Revision)
	b.String("long_description", m.LongDescription)
	b.Array("supported_operations", ops)
	return b.Value()
}

func (m *CapabilityDescriptor) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(CapabilityDescriptorType, v)
	m.ID = d.String("id")
	m.Name = d.String("name")
	m.Version = d.String("version")
	m.Revision = d.Uint32("revision")
	m.LongDescription = d.String("long_description")
	elems := d.Array("supported_operations")
	if err := d.Err(); err != nil {
		return err
	}
	m.SupportedOperations = make([]OperationDescriptor, len(elems))
	for i, elem := range elems {
		if err := m.SupportedOperations[i].FromValue(elem); err != nil {
			return err
		}
	}
	return nil
}
