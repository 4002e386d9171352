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
			name: "full error",
			err: &Error{
				Phase:   PhaseCall,
				Kind:    KindResourceExhausted,
				Routine: "dgemm",
				Param:   "a",
				Detail:  "pin failed",
			},
			contains: []string{"[call]", "resource_exhausted", "dgemm(a)", "pin failed"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLoad,
				Kind:  KindInitialization,
			},
			contains: []string{"[load]", "initialization"},
		},
		{
			name: "param without routine",
			err: &Error{
				Phase: PhaseGenerate,
				Kind:  KindInvalidDescriptor,
				Param: "x",
			},
			contains: []string{"invalid_descriptor at x"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInitialization,
				Detail: "open library",
				Cause:  errors.New("no such file"),
			},
			contains: []string{"[load]", "open library", "caused by", "no such file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ResourceExhausted("daxpy", "y", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := Unsupported("dgemm")

	if !errors.Is(err, ErrUnsupported) {
		t.Error("expected match with ErrUnsupported")
	}
	if errors.Is(err, ErrNotImplemented) {
		t.Error("unexpected match with ErrNotImplemented")
	}
	if !errors.Is(err, &Error{Phase: PhaseCall, Kind: KindUnsupported}) {
		t.Error("expected match with same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindUnsupported}) {
		t.Error("unexpected match with different phase")
	}
	if errors.Is(err, errors.New("other")) {
		t.Error("unexpected match with foreign error")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseCall, KindInvalidArgument).
		Routine("ddot").
		Param("x").
		Detail("expected %s, got %s", "jdoubleArray", "jint").
		Cause(errors.New("boom")).
		Build()

	if err.Routine != "ddot" || err.Param != "x" {
		t.Errorf("routine/param = %q/%q", err.Routine, err.Param)
	}
	if err.Detail != "expected jdoubleArray, got jint" {
		t.Errorf("detail = %q", err.Detail)
	}
	if err.Cause == nil {
		t.Error("cause not set")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err   *Error
		phase Phase
		kind  Kind
	}{
		{NotImplemented("dgees"), PhaseCall, KindNotImplemented},
		{Initialization("open", nil), PhaseLoad, KindInitialization},
		{InvalidDescriptor("r", "p", "dup"), PhaseGenerate, KindInvalidDescriptor},
		{InvalidArgument("r", "p", "bad"), PhaseCall, KindInvalidArgument},
		{NativeFault("r", errors.New("trap")), PhaseCall, KindNativeFault},
		{NotFound(PhaseCall, "routine", "nope"), PhaseCall, KindNotFound},
		{NotInitialized(PhaseCall, "context"), PhaseCall, KindNotInitialized},
		{Wrap(PhaseUnload, KindNativeFault, errors.New("x"), "close"), PhaseUnload, KindNativeFault},
	}
	for _, tt := range tests {
		if tt.err.Phase != tt.phase || tt.err.Kind != tt.kind {
			t.Errorf("%v: got phase %s kind %s", tt.err, tt.err.Phase, tt.err.Kind)
		}
	}
}
