package wasmlib

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/bridge"
	d "github.com/wippyai/jnibridge/descriptor"
	"github.com/wippyai/jnibridge/managed"
	"github.com/wippyai/jnibridge/native"
	"github.com/wippyai/jnibridge/runtime"
)

func load(t *testing.T, heap bool, cfg Config) *Library {
	t.Helper()
	funcs := []testFunc{incFunc, dsum2Func, trapFunc}
	if heap {
		funcs = append(funcs, mallocFunc, freeFunc)
	}
	lib, err := Load(context.Background(), "libtest.wasm", buildModule(heap, funcs...), cfg)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func lookup(t *testing.T, lib *Library, symbol string, ret abi.Kind, arity int) native.Symbol {
	t.Helper()
	sym, ok := lib.Lookup(native.Signature{Symbol: symbol, Return: ret, Arity: arity})
	if !ok {
		t.Fatalf("%s not found", symbol)
	}
	return sym
}

func TestLibrary_Call(t *testing.T) {
	for _, heap := range []bool{false, true} {
		lib := load(t, heap, Config{})
		if got := lib.malloc != nil; got != heap {
			t.Fatalf("guest malloc = %v, want %v", got, heap)
		}
		ctx := context.Background()

		cell := native.Alloc(8)
		cell.Ptr().SetInt32(0, 41)
		if _, err := lookup(t, lib, "inc_", abi.Void, 1).Call(ctx, []native.Ptr{cell.Ptr()}); err != nil {
			t.Fatalf("inc_ failed: %v", err)
		}
		if got := cell.Ptr().Int32(0); got != 42 {
			t.Errorf("heap=%v: cell = %d, want 42", heap, got)
		}

		x := native.Alloc(24)
		for i, v := range []float64{9, 1.5, 2.25} {
			x.Ptr().SetFloat64(i, v)
		}
		ret, err := lookup(t, lib, "dsum2_", abi.Double, 1).Call(ctx, []native.Ptr{x.Ptr().Add(8)})
		if err != nil {
			t.Fatalf("dsum2_ failed: %v", err)
		}
		if ret.Float64() != 3.75 {
			t.Errorf("heap=%v: dsum2_ = %v, want 3.75", heap, ret.Float64())
		}
	}
}

func TestLibrary_Lookup(t *testing.T) {
	lib := load(t, false, Config{})

	tests := []struct {
		name string
		sig  native.Signature
		want bool
	}{
		{"match", native.Signature{Symbol: "dsum2_", Return: abi.Double, Arity: 1}, true},
		{"wrong return", native.Signature{Symbol: "dsum2_", Return: abi.Float, Arity: 1}, false},
		{"void vs value", native.Signature{Symbol: "dsum2_", Return: abi.Void, Arity: 1}, false},
		{"wrong arity", native.Signature{Symbol: "inc_", Return: abi.Void, Arity: 2}, false},
		{"missing", native.Signature{Symbol: "daxpy_", Return: abi.Void, Arity: 6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := lib.Lookup(tt.sig); ok != tt.want {
				t.Errorf("Lookup() = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestLibrary_Trap(t *testing.T) {
	lib := load(t, false, Config{})
	if _, err := lookup(t, lib, "trap_", abi.Void, 0).Call(context.Background(), nil); err == nil {
		t.Error("expected trap error")
	}
}

func TestLibrary_MemoryLimit(t *testing.T) {
	lib := load(t, false, Config{MemoryLimitPages: 1})
	x := native.Alloc(16)
	if _, err := lookup(t, lib, "dsum2_", abi.Double, 1).Call(context.Background(), []native.Ptr{x.Ptr()}); err == nil {
		t.Error("expected guest memory error")
	}
}

func TestLibrary_Close(t *testing.T) {
	lib := load(t, false, Config{})
	sym := lookup(t, lib, "inc_", abi.Void, 1)

	if err := lib.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := sym.Call(context.Background(), []native.Ptr{native.Alloc(4).Ptr()}); err == nil {
		t.Error("Call after Close succeeded")
	}
	if _, ok := lib.Lookup(native.Signature{Symbol: "inc_", Arity: 1}); ok {
		t.Error("Lookup after Close succeeded")
	}
	if err := lib.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

func TestOpener(t *testing.T) {
	fsys := fstest.MapFS{"opt/lib/libtest.wasm": {Data: buildModule(false, incFunc)}}
	o := Opener{FS: fsys}

	lib, err := o.Open(context.Background(), "/opt/lib/libtest.wasm")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	_ = lib.Close()

	if _, err := o.Open(context.Background(), "missing.wasm"); err == nil {
		t.Error("expected error for missing module")
	}
	bad := Opener{FS: fstest.MapFS{"bad.wasm": {Data: []byte("not wasm")}}}
	if _, err := bad.Open(context.Background(), "bad.wasm"); err == nil {
		t.Error("expected compile error")
	}
}

func TestBridge_EndToEnd(t *testing.T) {
	unit, err := bridge.BuildLibrary(d.Library{
		Package:    "test",
		DefaultLib: "libtest.wasm",
		Routines: []d.Routine{
			d.Bound("inc", d.IntW("n")),
			d.BoundR(abi.Double, "dsum2", d.DoubleArray("x", d.In)),
		},
	})
	if err != nil {
		t.Fatalf("BuildLibrary failed: %v", err)
	}

	vm := managed.NewVM()
	fsys := fstest.MapFS{"libtest.wasm": {Data: buildModule(true, incFunc, dsum2Func, mallocFunc, freeFunc)}}
	c, err := runtime.Load(context.Background(), vm, unit,
		runtime.WithOpener(Opener{FS: fsys}),
		runtime.WithProperties(runtime.MapProperties{}))
	if err != nil {
		t.Fatalf("runtime.Load failed: %v", err)
	}
	defer func() { _ = c.Unload(context.Background()) }()

	n := vm.NewWrapper(abi.Int32(7))
	if _, err := c.Call(context.Background(), vm, "inc", n); err != nil {
		t.Fatalf("inc failed: %v", err)
	}
	if got := n.Scalar("val").Int32(); got != 8 {
		t.Errorf("n.val = %d, want 8", got)
	}

	ret, err := c.Call(context.Background(), vm, "dsum2", managed.NewDoubleArray(9, 1.5, 2.25), 1)
	if err != nil {
		t.Fatalf("dsum2 failed: %v", err)
	}
	if ret.Float64() != 3.75 {
		t.Errorf("dsum2 = %v, want 3.75", ret.Float64())
	}
	if vm.Outstanding() != 0 {
		t.Errorf("outstanding acquisitions: %d", vm.Outstanding())
	}
}
