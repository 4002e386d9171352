package descriptor

import (
	"errors"
	"testing"

	"github.com/wippyai/jnibridge/abi"
	berrors "github.com/wippyai/jnibridge/errors"
	"github.com/wippyai/jnibridge/ir"
)

func TestParam_External(t *testing.T) {
	tests := []struct {
		name  string
		param Param
		want  []string
	}{
		{"int", Int("n"), []string{"jint n"}},
		{"long", Long("l"), []string{"jlong l"}},
		{"boolean", Boolean("b"), []string{"jboolean b"}},
		{"intW", IntW("info"), []string{"jobject info"}},
		{"string", String("trans"), []string{"jstring trans"}},
		{"stringW", StringW("s"), []string{"jobject s"}},
		{"double array", DoubleArray("x", In), []string{"jdoubleArray x", "jint offsetx"}},
		{"boolean array", BooleanArray("select"), []string{"jbooleanArray select", "jint offsetselect"}},
		{"opaque", Object("selctg"), []string{"jobject selctg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.param.External()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d fragments, want %d", len(got), len(tt.want))
			}
			for i, f := range got {
				if s := f.JNIType() + " " + f.Name; s != tt.want[i] {
					t.Errorf("fragment %d = %q, want %q", i, s, tt.want[i])
				}
			}
		})
	}
}

func TestParam_NativeTypeAndArg(t *testing.T) {
	tests := []struct {
		param  Param
		native string
		arg    ir.ExprKind
	}{
		{Boolean("b"), "int *", ir.AddressOf},
		{Double("alpha"), "double *", ir.AddressOf},
		{FloatW("s"), "float *", ir.AddressOf},
		{String("uplo"), "const char *", ir.ValueOf},
		{StringW("w"), "char *", ir.ValueOf},
		{IntArray("ipiv", InOut), "int *", ir.OffsetOf},
		{BooleanArray("sel"), "int *", ir.OffsetOf},
		{Object("cb"), "void *", ir.Null},
	}

	for _, tt := range tests {
		t.Run(tt.param.String(), func(t *testing.T) {
			if got := tt.param.NativeType(); got != tt.native {
				t.Errorf("NativeType() = %q, want %q", got, tt.native)
			}
			if got := tt.param.NativeArg().Kind; got != tt.arg {
				t.Errorf("NativeArg().Kind = %v, want %v", got, tt.arg)
			}
		})
	}
}

func TestParam_ArrayContract(t *testing.T) {
	tests := []struct {
		name        string
		param       Param
		strategy    abi.Strategy
		mode        abi.ReleaseMode
		abortOnFail bool
	}{
		{"in", DoubleArray("x", In), abi.Critical, abi.Abort, false},
		{"inout", DoubleArray("y", InOut), abi.ZeroCopy, abi.Commit, true},
		{"out", IntArray("ipiv", Out), abi.ZeroCopy, abi.Commit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.param.Strategy() != tt.strategy {
				t.Errorf("Strategy() = %v, want %v", tt.param.Strategy(), tt.strategy)
			}
			ep := tt.param.Epilog()
			if len(ep) != 1 || ep[0].Op != ir.UnpinArray {
				t.Fatalf("unexpected epilog %+v", ep)
			}
			if ep[0].Mode != tt.mode || ep[0].AbortOnFail != tt.abortOnFail {
				t.Errorf("mode = %v abortOnFail = %v", ep[0].Mode, ep[0].AbortOnFail)
			}
			if ep[0].EffectiveMode(true) != abi.Abort {
				t.Error("failed invocation must discard")
			}
		})
	}
}

func TestParam_BooleanArrayReleasesPinnedBuffer(t *testing.T) {
	p := BooleanArray("select")
	pro := p.Prolog()
	if len(pro) != 2 || pro[0].Op != ir.PinArray || pro[1].Op != ir.CopyToNative {
		t.Fatalf("unexpected prolog %+v", pro)
	}
	ep := p.Epilog()
	if len(ep) != 2 || ep[0].Op != ir.FreeNative || ep[1].Op != ir.UnpinArray {
		t.Fatalf("unexpected epilog %+v", ep)
	}
	if ep[1].Local != "__jselect" {
		t.Errorf("unpin releases %q, want the pinned managed buffer", ep[1].Local)
	}
	if ep[1].Mode != abi.Abort {
		t.Errorf("boolean arrays must always discard, got %v", ep[1].Mode)
	}
}

func TestParam_WrapperWriteBackGuarded(t *testing.T) {
	for _, p := range []Param{BooleanW("b"), IntW("i"), FloatW("f"), DoubleW("d"), StringW("s")} {
		for _, a := range p.Epilog() {
			if (a.Op == ir.SetField || a.Op == ir.SetObjectField) && !a.OnlyIfOK {
				t.Errorf("%s: write-back not guarded by failure flag", p.Name())
			}
		}
	}
}

func TestParam_StringWrapperWritesBeforeRelease(t *testing.T) {
	ep := StringW("s").Epilog()
	if len(ep) != 2 || ep[0].Op != ir.SetObjectField || ep[1].Op != ir.ReleaseStringUTF {
		t.Fatalf("unexpected epilog %+v", ep)
	}
	if ep[1].Source != "__js" {
		t.Errorf("chars released against %q, want the string read from the wrapper", ep[1].Source)
	}
}

func TestParam_Stage(t *testing.T) {
	if Int("n").Stage() != 0 || IntW("info").Stage() != 0 || String("s").Stage() != 0 {
		t.Error("scalar-like parameters should be stage 0")
	}
	if DoubleArray("a", InOut).Stage() != 1 {
		t.Error("arrays should be stage 1")
	}
}

func TestRoutine_Validate(t *testing.T) {
	tests := []struct {
		name    string
		routine Routine
		wantErr bool
	}{
		{"valid", BoundR(abi.Double, "dasum", Int("n"), DoubleArray("x", In), Int("incx")), false},
		{"no params", Bound("noop"), false},
		{"duplicate", Bound("bad", Int("n"), Int("n")), true},
		{"offset collision", Bound("bad", DoubleArray("x", In), Int("offsetx")), true},
		{"opaque in bound", Bound("dgees", Object("select")), true},
		{"opaque in stub", Stub("dgees", Object("select")), false},
		{"empty name", Bound(""), true},
		{"bad param name", Bound("r", Int("1n")), true},
		{"zero param", Bound("r", Param{}), true},
		{"bad return", BoundR(abi.Kind(99), "r"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.routine.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, berrors.ErrInvalidDescriptor) {
					t.Errorf("expected invalid descriptor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRoutine_Symbol(t *testing.T) {
	if Bound("dgemm").Symbol() != "dgemm_" {
		t.Error("symbol should carry trailing underscore")
	}
}

func TestLibrary_Identity(t *testing.T) {
	lib := Library{Package: "lapack", DefaultLib: "liblapack.so.3"}

	if lib.ClassName() != "JNILAPACK" {
		t.Errorf("ClassName() = %q", lib.ClassName())
	}
	if lib.Class() != "dev/ludovic/netlib/lapack/JNILAPACK" {
		t.Errorf("Class() = %q", lib.Class())
	}
	if lib.Header() != "dev_ludovic_netlib_lapack_JNILAPACK.h" {
		t.Errorf("Header() = %q", lib.Header())
	}
	if lib.LibPathKey() != "dev.ludovic.netlib.lapack.nativeLibPath" {
		t.Errorf("LibPathKey() = %q", lib.LibPathKey())
	}
	if lib.LibNameKey() != "dev.ludovic.netlib.lapack.nativeLib" {
		t.Errorf("LibNameKey() = %q", lib.LibNameKey())
	}
}

func TestLibrary_Validate(t *testing.T) {
	lib := Library{
		Package:    "blas",
		DefaultLib: "libblas.so.3",
		Routines:   []Routine{Bound("a"), Bound("a")},
	}
	if err := lib.Validate(); err == nil {
		t.Error("expected duplicate routine error")
	}

	lib.Routines = lib.Routines[:1]
	if err := lib.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, ok := lib.Routine("a"); !ok {
		t.Error("Routine(a) not found")
	}

	lib.DefaultLib = ""
	if err := lib.Validate(); err == nil {
		t.Error("expected missing default library error")
	}
}
