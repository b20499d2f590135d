package core

import "fmt"

// Dispatcher sends an encoded operation payload to a named actor and
// returns the encoded reply. The host runtime supplies the
// implementation; this package only fixes the boundary shape.
type Dispatcher interface {
	Dispatch(actor, operation string, payload []byte) ([]byte, error)
}

// NullDispatcher rejects every dispatch. Providers initialize with it
// and swap in the real dispatcher once the host runtime configures one.
type NullDispatcher struct{}

// Dispatch always fails
func (NullDispatcher) Dispatch(actor, operation string, payload []byte) ([]byte, error) {
	return nil, fmt.Errorf("no dispatcher configured for %s on actor %s", operation, actor)
}

// DescriptorBuilder provides a fluent syntax for assembling a
// capability descriptor.
type DescriptorBuilder struct {
	descriptor CapabilityDescriptor
}

// NewDescriptor starts a descriptor builder
func NewDescriptor() *DescriptorBuilder {
	return &DescriptorBuilder{}
}

// ID sets the capability ID of the provider
func (b *DescriptorBuilder) ID(id string) *DescriptorBuilder {
	b.descriptor.ID = id
	return b
}

// Name sets the human-friendly provider name
func (b *DescriptorBuilder) Name(name string) *DescriptorBuilder {
	b.descriptor.Name = name
	return b
}

// Version sets the version string (semver by convention)
func (b *DescriptorBuilder) Version(version string) *DescriptorBuilder {
	b.descriptor.Version = version
	return b
}

// Revision sets the numeric revision, used when comparing provider
// versions
func (b *DescriptorBuilder) Revision(rev uint32) *DescriptorBuilder {
	b.descriptor.Revision = rev
	return b
}

// LongDescription sets the documentation-friendly description
func (b *DescriptorBuilder) LongDescription(desc string) *DescriptorBuilder {
	b.descriptor.LongDescription = desc
	return b
}

// WithOperation appends an operation descriptor
func (b *DescriptorBuilder) WithOperation(name string, direction OperationDirection, doctext string) *DescriptorBuilder {
	b.descriptor.SupportedOperations = append(b.descriptor.SupportedOperations, OperationDescriptor{
		Name:      name,
		Direction: direction,
		DocText:   doctext,
	})
	return b
}

// Build returns the assembled descriptor
func (b *DescriptorBuilder) Build() CapabilityDescriptor {
	return b.descriptor
}
