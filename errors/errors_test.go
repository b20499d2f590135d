package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseBind,
				Kind:     KindSchemaMismatch,
				Path:     []string{"Request", "header"},
				GoType:   "map[string]string",
				WireType: "array",
				Detail:   "cannot convert",
			},
			contains: []string{"[bind]", "schema_mismatch", "Request.header", "map[string]string", "array", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindMalformedInput,
			},
			contains: []string{"[decode]", "malformed_input"},
		},
		{
			name: "error with offset",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindMalformedInput,
				Offset: 17,
				Detail: "truncated input",
			},
			contains: []string{"[decode]", "malformed_input", "offset 17", "truncated input"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRegister,
				Kind:   KindDuplicateOperation,
				Detail: "catalog inconsistency",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[register]", "duplicate_operation", "catalog inconsistency", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindMalformedInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseBind,
		Kind:  KindSchemaMismatch,
		Path:  []string{"foo"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseBind, Kind: KindSchemaMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindSchemaMismatch}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseBind, Kind: KindRangeError}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseBind, Kind: KindSchemaMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseBind, KindSchemaMismatch).
		Path("Response", "statusCode").
		GoType("uint32").
		WireType("str").
		Offset(9).
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "uint", "string").
		Build()

	if err.Phase != PhaseBind {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseBind)
	}
	if err.Kind != KindSchemaMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindSchemaMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "Response" || err.Path[1] != "statusCode" {
		t.Errorf("Path = %v, want [Response statusCode]", err.Path)
	}
	if err.GoType != "uint32" {
		t.Errorf("GoType = %v, want 'uint32'", err.GoType)
	}
	if err.WireType != "str" {
		t.Errorf("WireType = %v, want 'str'", err.WireType)
	}
	if err.Offset != 9 {
		t.Errorf("Offset = %v, want 9", err.Offset)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected uint, got string" {
		t.Errorf("Detail = %v, want 'expected uint, got string'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(4, 10, 6)
		if err.Kind != KindMalformedInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformedInput)
		}
		if err.Offset != 4 {
			t.Errorf("Offset = %v, want 4", err.Offset)
		}
		if !containsSubstring(err.Detail, "10") || !containsSubstring(err.Detail, "6") {
			t.Errorf("Detail = %v, should contain need and have", err.Detail)
		}
	})

	t.Run("UnknownTag", func(t *testing.T) {
		err := UnknownTag(0, 0xc1)
		if err.Kind != KindMalformedInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformedInput)
		}
		if !containsSubstring(err.Detail, "0xc1") {
			t.Errorf("Detail = %v, should contain the tag byte", err.Detail)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		err := InvalidUTF8(2, []byte{0xff, 0xfe})
		if err.Kind != KindMalformedInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformedInput)
		}
	})

	t.Run("FieldMissing", func(t *testing.T) {
		err := FieldMissing("GetRequest", "key")
		if err.Kind != KindSchemaMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSchemaMismatch)
		}
		if !containsSubstring(err.Detail, "key") {
			t.Errorf("Detail = %v, should contain field name", err.Detail)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch([]string{"field"}, "int", "str")
		if err.Kind != KindSchemaMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSchemaMismatch)
		}
		if err.GoType != "int" || err.WireType != "str" {
			t.Errorf("GoType=%v WireType=%v", err.GoType, err.WireType)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		err := OutOfRange([]string{"val"}, 300, "uint8")
		if err.Kind != KindRangeError {
			t.Errorf("Kind = %v, want %v", err.Kind, KindRangeError)
		}
		if err.Value != 300 {
			t.Errorf("Value = %v, want 300", err.Value)
		}
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		err := UnknownOperation("KeyValue.Frobnicate")
		if err.Kind != KindUnknownOperation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnknownOperation)
		}
		if err.Value != "KeyValue.Frobnicate" {
			t.Errorf("Value = %v, want operation name", err.Value)
		}
	})

	t.Run("DuplicateOperation", func(t *testing.T) {
		err := DuplicateOperation("KeyValue.Get")
		if err.Kind != KindDuplicateOperation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDuplicateOperation)
		}
	})
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"malformed direct", Truncated(0, 2, 1), IsMalformed, true},
		{"malformed wrapped", fmt.Errorf("decode: %w", UnknownTag(3, 0xd4)), IsMalformed, true},
		{"mismatch direct", FieldMissing("T", "f"), IsSchemaMismatch, true},
		{"mismatch is not malformed", FieldMissing("T", "f"), IsMalformed, false},
		{"range direct", OutOfRange(nil, 70000, "uint16"), IsRange, true},
		{"unknown op", UnknownOperation("x"), IsUnknownOperation, true},
		{"duplicate op", DuplicateOperation("x"), IsDuplicateOperation, true},
		{"plain error", errors.New("nope"), IsMalformed, false},
		{"nil error", nil, IsSchemaMismatch, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return len(substr) == 0
}
