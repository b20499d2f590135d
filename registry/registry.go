package registry

import (
	"go.uber.org/zap"

	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/schema"
)

// Operation pairs a globally unique name with its request and response
// schema types. The pairing is immutable once registered.
type Operation struct {
	Name     string
	Request  *schema.Type
	Response *schema.Type
}

// Registry is the operation lookup table. Populate it fully before any
// concurrent Resolve call; there is no internal locking because writes
// never occur after startup.
type Registry struct {
	ops   map[string]Operation
	order []string
}

// New returns an empty Registry
func New() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds an operation. Registering an already-present name fails
// with duplicate_operation.
func (r *Registry) Register(name string, request, response *schema.Type) error {
	if _, exists := r.ops[name]; exists {
		return errors.DuplicateOperation(name)
	}
	r.ops[name] = Operation{Name: name, Request: request, Response: response}
	r.order = append(r.order, name)
	Logger().Debug("registered operation",
		zap.String("operation", name),
		zap.String("request", request.Name()),
		zap.String("response", response.Name()))
	return nil
}

// Resolve looks up an operation by name. A miss is unknown_operation,
// which callers must treat as a non-retryable routing error.
func (r *Registry) Resolve(name string) (Operation, error) {
	op, ok := r.ops[name]
	if !ok {
		return Operation{}, errors.UnknownOperation(name)
	}
	return op, nil
}

// Len returns the number of registered operations
func (r *Registry) Len() int {
	return len(r.ops)
}

// Operations lists every registered operation in registration order,
// for introspection and documentation tooling.
func (r *Registry) Operations() []Operation {
	out := make([]Operation, len(r.order))
	for i, name := range r.order {
		out[i] = r.ops[name]
	}
	return out
}
