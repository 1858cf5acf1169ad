package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "unknown wire value",
			err:      UnknownWireValue("example.Status", 42),
			contains: []string{"[decode]", "unknown_wire_value", "example.Status", "42"},
		},
		{
			name:     "duplicate wire value",
			err:      DuplicateWireValue("example.Status", 1),
			contains: []string{"[compile]", "configuration", "wire-value 1"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEncode,
				Kind:  KindUnmappedValue,
			},
			contains: []string{"[encode]", "unmapped_value"},
		},
		{
			name:     "error with cause",
			err:      InvalidData(PhaseDecode, "example.Status", errors.New("unexpected EOF")),
			contains: []string{"[decode]", "invalid_data", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, want it to contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := UnknownWireValue("example.Status", 3)

	if !errors.Is(err, ErrUnknownWireValue) {
		t.Error("expected match on kind")
	}
	if errors.Is(err, ErrUnmappedValue) {
		t.Error("unexpected match on different kind")
	}
	if !errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindUnknownWireValue}) {
		t.Error("expected match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindUnknownWireValue}) {
		t.Error("unexpected match on different phase")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("truncated varint")
	err := InvalidData(PhaseDecode, "example.Status", cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause in chain")
	}
	var target *Error
	if !errors.As(err, &target) || target.Kind != KindInvalidData {
		t.Errorf("errors.As = %v", target)
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseEncode, KindTypeMismatch).
		Enum("example.Status").
		Value("string").
		Detail("expected %s", "example.Status").
		Build()

	if err.Phase != PhaseEncode || err.Kind != KindTypeMismatch {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "expected example.Status" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Value != "string" {
		t.Errorf("Value = %v", err.Value)
	}
}
