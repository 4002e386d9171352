package ir

import (
	"testing"

	"github.com/wippyai/jnibridge/abi"
)

func TestUnit_Mangle(t *testing.T) {
	u := &Unit{Class: "dev/ludovic/netlib/blas/JNIBLAS"}

	tests := []struct {
		method string
		want   string
	}{
		{"dasumK", "Java_dev_ludovic_netlib_blas_JNIBLAS_dasumK"},
		{"has_dasum", "Java_dev_ludovic_netlib_blas_JNIBLAS_has_1dasum"},
	}
	for _, tt := range tests {
		if got := u.Mangle(tt.method); got != tt.want {
			t.Errorf("Mangle(%q) = %q, want %q", tt.method, got, tt.want)
		}
	}
}

func TestWrapperField_Var(t *testing.T) {
	want := []string{
		"booleanW_val_fieldID",
		"intW_val_fieldID",
		"floatW_val_fieldID",
		"doubleW_val_fieldID",
		"StringW_val_fieldID",
	}
	if len(WrapperFields) != len(want) {
		t.Fatalf("got %d wrapper fields", len(WrapperFields))
	}
	for i, f := range WrapperFields {
		if f.Var() != want[i] {
			t.Errorf("field %d: Var() = %q, want %q", i, f.Var(), want[i])
		}
	}
}

func TestAction_EffectiveMode(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		failed bool
		want   abi.ReleaseMode
	}{
		{"commit ok", Action{Mode: abi.Commit, AbortOnFail: true}, false, abi.Commit},
		{"commit failed", Action{Mode: abi.Commit, AbortOnFail: true}, true, abi.Abort},
		{"abort ok", Action{Mode: abi.Abort}, false, abi.Abort},
		{"critical commit ignores failure", Action{Mode: abi.Commit}, true, abi.Commit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.action.EffectiveMode(tt.failed); got != tt.want {
				t.Errorf("EffectiveMode(%v) = %v, want %v", tt.failed, got, tt.want)
			}
		})
	}
}

func TestProgram_ExternalsAndOrder(t *testing.T) {
	p := &Program{
		Params: []Param{
			{Name: "x", External: []Fragment{{Name: "x", Class: ArgArray, Kind: abi.Double}, {Name: "offsetx", Kind: abi.Int}}},
			{Name: "n", External: []Fragment{{Name: "n", Kind: abi.Int}}},
		},
		Body: []Stmt{
			{Op: OpAcquire, Param: 1},
			{Op: OpAcquire, Param: 0},
			{Op: OpCall, Param: -1},
		},
	}

	if p.Arity() != 3 {
		t.Errorf("Arity() = %d, want 3", p.Arity())
	}
	ext := p.Externals()
	if ext[0].JNIType() != "jdoubleArray" || ext[1].JNIType() != "jint" || ext[2].Name != "n" {
		t.Errorf("unexpected externals: %+v", ext)
	}
	order := p.Order()
	if len(order) != 2 || order[0] != 1 || order[1] != 0 {
		t.Errorf("Order() = %v", order)
	}
}

func TestSignal_Text(t *testing.T) {
	if SignalResourceExhausted.Class() != "java/lang/OutOfMemoryError" {
		t.Error("wrong class for resource exhausted")
	}
	if SignalNotImplemented.Message() != "not implemented" {
		t.Error("wrong message for not implemented")
	}
	if SignalNone.Class() != "" {
		t.Error("none should have no class")
	}
}
