package bridge

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wippyai/jnibridge/abi"
	d "github.com/wippyai/jnibridge/descriptor"
	berrors "github.com/wippyai/jnibridge/errors"
	"github.com/wippyai/jnibridge/ir"
)

func ops(p *ir.Program) []ir.Op {
	out := make([]ir.Op, len(p.Body))
	for i, s := range p.Body {
		out[i] = s.Op
	}
	return out
}

func paramsOf(p *ir.Program, op ir.Op) []string {
	var out []string
	for _, s := range p.Body {
		if s.Op == op {
			out = append(out, p.Params[s.Param].Name)
		}
	}
	return out
}

func equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuild_BoundShape(t *testing.T) {
	p, err := Build(d.Bound("daxpy",
		d.Int("n"),
		d.Double("alpha"),
		d.DoubleArray("x", d.In),
		d.Int("incx"),
		d.DoubleArray("y", d.InOut),
		d.Int("incy")))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []ir.Op{
		ir.OpSymbol, ir.OpProbe,
		ir.OpCheckSymbol, ir.OpFlag,
		ir.OpDeclare, ir.OpDeclare, ir.OpDeclare, ir.OpDeclare, ir.OpDeclare, ir.OpDeclare,
		ir.OpAcquire, ir.OpAcquire, ir.OpAcquire, ir.OpAcquire, ir.OpAcquire, ir.OpAcquire,
		ir.OpCall, ir.OpLabel,
		ir.OpRelease, ir.OpRelease,
		ir.OpSignal, ir.OpReturn,
	}
	if got := ops(p); !equal(got, want) {
		t.Fatalf("body ops = %v\nwant %v", got, want)
	}

	if p.Symbol != "daxpy_" || p.Return != abi.Void || p.Stub {
		t.Errorf("unexpected header %+v", p)
	}
}

func TestBuild_AcquisitionOrderIsStageStable(t *testing.T) {
	p, err := Build(d.Bound("dger",
		d.DoubleArray("a", d.InOut),
		d.Int("m"),
		d.DoubleArray("x", d.In),
		d.IntW("info"),
		d.String("uplo")))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	acq := paramsOf(p, ir.OpAcquire)
	if want := []string{"m", "info", "uplo", "a", "x"}; !equal(acq, want) {
		t.Errorf("acquire order = %v, want %v", acq, want)
	}
	decl := paramsOf(p, ir.OpDeclare)
	if !equal(decl, acq) {
		t.Errorf("declare order %v differs from acquire order %v", decl, acq)
	}
}

func TestBuild_ReleaseIsReverseOfAcquire(t *testing.T) {
	p, err := Build(d.Bound("mixed",
		d.DoubleArray("a", d.InOut),
		d.IntW("info"),
		d.String("uplo"),
		d.BooleanArray("sel"),
		d.StringW("s"),
		d.DoubleW("w")))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	acq := paramsOf(p, ir.OpAcquire)
	rel := paramsOf(p, ir.OpRelease)
	if len(acq) != len(rel) {
		t.Fatalf("acquire %v vs release %v", acq, rel)
	}
	for i := range acq {
		if acq[i] != rel[len(rel)-1-i] {
			t.Fatalf("release order %v is not the reverse of %v", rel, acq)
		}
	}
}

func TestBuild_ScalarsHaveNoRelease(t *testing.T) {
	p, err := Build(d.BoundR(abi.Double, "ddot", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx")))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if rel := paramsOf(p, ir.OpRelease); !equal(rel, []string{"x"}) {
		t.Errorf("release = %v, want [x]", rel)
	}
	if p.Return != abi.Double {
		t.Errorf("return = %v", p.Return)
	}
}

func TestBuild_ZeroParams(t *testing.T) {
	p, err := Build(d.BoundR(abi.Double, "dlamch0"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := []ir.Op{
		ir.OpSymbol, ir.OpProbe, ir.OpCheckSymbol, ir.OpFlag,
		ir.OpCall, ir.OpLabel, ir.OpSignal, ir.OpReturn,
	}
	if got := ops(p); !equal(got, want) {
		t.Errorf("body ops = %v, want %v", got, want)
	}
}

func TestBuild_Stub(t *testing.T) {
	p, err := Build(d.Stub("dgees", d.String("jobvs"), d.Object("select"), d.IntW("sdim")))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := []ir.Op{ir.OpSymbol, ir.OpProbe, ir.OpSignal, ir.OpReturn}
	if got := ops(p); !equal(got, want) {
		t.Fatalf("body ops = %v, want %v", got, want)
	}
	if p.Body[2].Signal != ir.SignalNotImplemented || p.Body[2].When != ir.Always {
		t.Errorf("unexpected signal %+v", p.Body[2])
	}
	if !p.Stub {
		t.Error("program should be marked stub")
	}
}

func TestBuild_CheckSymbolPrecedesAcquisition(t *testing.T) {
	p, err := Build(d.Bound("dscal", d.Int("n"), d.Double("a"), d.DoubleArray("x", d.InOut), d.Int("incx")))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	check, firstAcq := -1, -1
	for i, s := range p.Body {
		if s.Op == ir.OpCheckSymbol && check < 0 {
			check = i
		}
		if s.Op == ir.OpAcquire && firstAcq < 0 {
			firstAcq = i
		}
	}
	if check < 0 || firstAcq < 0 || check > firstAcq {
		t.Errorf("check-symbol at %d, first acquire at %d", check, firstAcq)
	}
	if p.Body[check].Signal != ir.SignalUnsupported {
		t.Errorf("check-symbol signal = %v", p.Body[check].Signal)
	}
}

func TestBuild_InvalidDescriptor(t *testing.T) {
	_, err := Build(d.Bound("bad", d.Object("cb")))
	if !errors.Is(err, berrors.ErrInvalidDescriptor) {
		t.Fatalf("expected invalid descriptor, got %v", err)
	}
}

func TestBuildLibrary(t *testing.T) {
	lib := d.Library{
		Package:    "blas",
		DefaultLib: "libblas.so.3",
		Routines: []d.Routine{
			d.BoundR(abi.Double, "dasum", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx")),
			d.Stub("dstub", d.Object("cb")),
			d.Bound("dscal", d.Int("n"), d.Double("a"), d.DoubleArray("x", d.InOut), d.Int("incx")),
		},
	}

	u, err := BuildLibrary(lib)
	if err != nil {
		t.Fatalf("BuildLibrary failed: %v", err)
	}

	if u.Class != "dev/ludovic/netlib/blas/JNIBLAS" {
		t.Errorf("Class = %q", u.Class)
	}
	if u.LibPathKey != "dev.ludovic.netlib.blas.nativeLibPath" || u.LibNameKey != "dev.ludovic.netlib.blas.nativeLib" {
		t.Errorf("keys = %q %q", u.LibPathKey, u.LibNameKey)
	}
	if u.DefaultLib != "libblas.so.3" {
		t.Errorf("DefaultLib = %q", u.DefaultLib)
	}
	if len(u.Fields) != 5 {
		t.Errorf("got %d wrapper fields", len(u.Fields))
	}
	if len(u.Programs) != 3 {
		t.Fatalf("got %d programs", len(u.Programs))
	}
	var symbols []string
	for _, p := range u.Programs {
		if !p.Stub {
			symbols = append(symbols, p.Symbol)
		}
	}
	if !equal(symbols, []string{"dasum_", "dscal_"}) {
		t.Errorf("bound symbols = %v", symbols)
	}
	if _, ok := u.Program("dstub"); !ok {
		t.Error("stub program missing")
	}
}

func TestBuildLibrary_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		routines []d.Routine
		routine  string
	}{
		{"duplicate param", []d.Routine{d.Bound("a", d.Int("n"), d.Int("n"))}, "a"},
		{"second routine", []d.Routine{d.Bound("ok", d.Int("n")), d.Bound("bad", d.Int("m"), d.Int("m"))}, "bad"},
		{"duplicate routine", []d.Routine{d.Bound("twice", d.Int("n")), d.Bound("twice", d.Int("n"))}, "twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLibrary(d.Library{Package: "blas", DefaultLib: "x", Routines: tt.routines})
			if !errors.Is(err, berrors.ErrInvalidDescriptor) {
				t.Fatalf("expected invalid descriptor, got %v", err)
			}
			var be *berrors.Error
			if !errors.As(err, &be) || be.Routine != tt.routine {
				t.Errorf("error %v does not name routine %q", err, tt.routine)
			}
		})
	}
}

func TestBuildLibrary_MatchesBuild(t *testing.T) {
	routines := []d.Routine{
		d.BoundR(abi.Double, "dnrm2", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx")),
		d.Bound("dgesv", d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"),
			d.IntArray("ipiv", d.Out), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
		d.Stub("dcallback", d.Object("cb")),
	}
	u, err := BuildLibrary(d.Library{Package: "lapack", DefaultLib: "liblapack.so.3", Routines: routines})
	if err != nil {
		t.Fatalf("BuildLibrary failed: %v", err)
	}
	for i, r := range routines {
		want, err := Build(r)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", r.Name, err)
		}
		if !reflect.DeepEqual(u.Programs[i], want) {
			t.Errorf("program %s differs from Build", r.Name)
		}
	}
}
