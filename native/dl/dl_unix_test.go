//go:build darwin || freebsd || linux

package dl

import (
	"context"
	"runtime"
	"testing"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/native"
)

func libc(t *testing.T) native.Library {
	t.Helper()
	name := map[string]string{
		"linux":   "libc.so.6",
		"darwin":  "/usr/lib/libSystem.B.dylib",
		"freebsd": "libc.so.7",
	}[runtime.GOOS]
	lib, err := Opener{}.Open(context.Background(), name)
	if err != nil {
		t.Skipf("libc not available: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func TestLibrary_Call(t *testing.T) {
	lib := libc(t)

	sym, ok := lib.Lookup(native.Signature{Symbol: "strlen", Return: abi.Long, Arity: 1})
	if !ok {
		t.Fatal("strlen not found")
	}
	s := native.CBytes([]byte("dgemm"))
	ret, err := sym.Call(context.Background(), []native.Ptr{s.Ptr()})
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if ret.Int64() != 5 {
		t.Errorf("strlen = %d, want 5", ret.Int64())
	}

	if _, err := sym.Call(context.Background(), nil); err == nil {
		t.Error("expected arity error")
	}
}

func TestLibrary_Lookup(t *testing.T) {
	lib := libc(t)

	if _, ok := lib.Lookup(native.Signature{Symbol: "no_such_routine_", Arity: 1}); ok {
		t.Error("missing symbol resolved")
	}

	if err := lib.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, ok := lib.Lookup(native.Signature{Symbol: "strlen", Return: abi.Long, Arity: 1}); ok {
		t.Error("closed library resolved a symbol")
	}
	if err := lib.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

func requireFFI(t *testing.T) {
	t.Helper()
	if _, err := loadFFI(); err != nil {
		t.Skipf("libffi not available: %v", err)
	}
}

func TestLibrary_WideCall(t *testing.T) {
	lib := libc(t)
	requireFFI(t)

	// Surplus pointer arguments are ignored by the callee.
	const arity = 22
	sym, ok := lib.Lookup(native.Signature{Symbol: "strlen", Return: abi.Long, Arity: arity})
	if !ok {
		t.Fatal("strlen not bound beyond MaxArity")
	}
	if _, direct := sym.(*symbol); direct {
		t.Fatal("wide symbol bound for a direct call")
	}

	s := native.CBytes([]byte("dggevx"))
	args := make([]native.Ptr, arity)
	args[0] = s.Ptr()
	for i := 1; i < arity; i++ {
		args[i] = native.Alloc(8).Ptr()
	}
	ret, err := sym.Call(context.Background(), args)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if ret.Int64() != 6 {
		t.Errorf("strlen = %d, want 6", ret.Int64())
	}
	if _, err := sym.Call(context.Background(), args[:arity-1]); err == nil {
		t.Error("expected arity error")
	}
}

func TestFFI_ReturnKinds(t *testing.T) {
	requireFFI(t)
	lib, _ := loadFFI()

	tests := []struct {
		kind abi.Kind
		want uintptr
	}{
		{abi.Void, lib.typeVoid},
		{abi.Boolean, lib.typeSint32},
		{abi.Int, lib.typeSint32},
		{abi.Long, lib.typeSint64},
		{abi.Float, lib.typeFloat},
		{abi.Double, lib.typeDouble},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := lib.returnType(tt.kind); got != tt.want || got == 0 {
				t.Errorf("returnType(%v) = %#x, want %#x", tt.kind, got, tt.want)
			}
		})
	}
}

func TestOpener_Missing(t *testing.T) {
	if _, err := (Opener{}).Open(context.Background(), "libdoesnotexist.so.9"); err == nil {
		t.Error("expected dlopen error")
	}
}
