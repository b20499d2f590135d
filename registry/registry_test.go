package registry

import (
	"testing"

	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/schema"
)

var (
	reqType  = schema.NewType("ProbeRequest", schema.Required("key", schema.FieldString))
	respType = schema.NewType("ProbeResponse", schema.Required("value", schema.FieldString))
)

func TestRegistry_RegisterResolve(t *testing.T) {
	r := New()
	if err := r.Register("Probe.Get", reqType, respType); err != nil {
		t.Fatalf("Register: %v", err)
	}

	op, err := r.Resolve("Probe.Get")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if op.Name != "Probe.Get" {
		t.Errorf("Name = %q, want Probe.Get", op.Name)
	}
	if op.Request != reqType || op.Response != respType {
		t.Error("schema pair does not match registration")
	}

	// resolving twice yields the identical descriptor
	again, err := r.Resolve("Probe.Get")
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if again != op {
		t.Error("Resolve is not stable")
	}
}

func TestRegistry_Duplicate(t *testing.T) {
	r := New()
	if err := r.Register("Probe.Get", reqType, respType); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := r.Register("Probe.Get", reqType, respType)
	if !errors.IsDuplicateOperation(err) {
		t.Errorf("second Register = %v, want duplicate_operation", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistry_Unknown(t *testing.T) {
	r := New()
	_, err := r.Resolve("Probe.Nope")
	if !errors.IsUnknownOperation(err) {
		t.Errorf("Resolve = %v, want unknown_operation", err)
	}
}

func TestRegistry_OperationsOrder(t *testing.T) {
	r := New()
	names := []string{"C.Op", "A.Op", "B.Op"}
	for _, n := range names {
		if err := r.Register(n, reqType, respType); err != nil {
			t.Fatalf("Register(%s): %v", n, err)
		}
	}

	ops := r.Operations()
	if len(ops) != len(names) {
		t.Fatalf("Operations() = %d entries, want %d", len(ops), len(names))
	}
	for i, n := range names {
		if ops[i].Name != n {
			t.Errorf("Operations()[%d] = %q, want %q (registration order)", i, ops[i].Name, n)
		}
	}
}
