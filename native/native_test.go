package native

import (
	"context"
	"testing"

	"github.com/wippyai/jnibridge/abi"
)

func TestBlock_Alignment(t *testing.T) {
	for _, size := range []int{1, 7, 8, 24, 100} {
		b := Alloc(size)
		if b.Len() != size {
			t.Errorf("Len() = %d, want %d", b.Len(), size)
		}
		if uintptr(b.Ptr().Addr())%8 != 0 {
			t.Errorf("block of %d bytes not 8-byte aligned", size)
		}
	}
	if Alloc(0).Bytes() != nil {
		t.Error("empty block should have no bytes")
	}
	if Alloc(0).Ptr().Addr() != nil {
		t.Error("empty block should have no address")
	}
}

func TestPtr_Accessors(t *testing.T) {
	b := Alloc(32)
	p := b.Ptr()

	p.SetInt32(1, -5)
	if p.Int32(1) != -5 || p.Add(4).Int32(0) != -5 {
		t.Error("int32 access failed")
	}
	p.SetFloat64(2, 2.5)
	if p.Float64(2) != 2.5 || p.Add(16).Float64(0) != 2.5 {
		t.Error("float64 access failed")
	}
	p.SetFloat32(0, 1.25)
	if p.Float32(0) != 1.25 {
		t.Error("float32 access failed")
	}
	p.SetInt64(3, 1<<40)
	if p.Int64(3) != 1<<40 {
		t.Error("int64 access failed")
	}
	if p.Add(8).Remaining() != 24 {
		t.Errorf("Remaining() = %d", p.Add(8).Remaining())
	}
}

func TestPtr_Nil(t *testing.T) {
	var p Ptr
	if !p.IsNil() {
		t.Error("zero Ptr should be nil")
	}
	if p.Add(4).IsNil() != true {
		t.Error("Add on nil must stay nil")
	}
	if p.Bytes(1) != nil || p.Remaining() != 0 {
		t.Error("nil Ptr has no bytes")
	}
}

func TestPtr_Addr(t *testing.T) {
	b := Alloc(12)
	base := uintptr(b.Addr())
	tests := []struct {
		name string
		off  int
		want uintptr
	}{
		{"start", 0, base},
		{"inside", 5, base + 5},
		{"last byte", 11, base + 11},
		{"one past end", 12, base + 12},
		{"beyond end", 13, 0},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uintptr(b.Ptr().Add(tt.off).Addr()); got != tt.want {
				t.Errorf("Addr() = %#x, want %#x", got, tt.want)
			}
		})
	}
	if (Ptr{}).Addr() != nil {
		t.Error("nil Ptr should have no address")
	}
}

func TestCBytes(t *testing.T) {
	b := CBytes([]byte("N"))
	if b.Len() != 2 {
		t.Fatalf("Len() = %d", b.Len())
	}
	if b.Ptr().CString() != "N" {
		t.Errorf("CString() = %q", b.Ptr().CString())
	}
	unterminated := Alloc(3)
	copy(unterminated.Bytes(), "abc")
	if unterminated.Ptr().CString() != "abc" {
		t.Errorf("CString() = %q", unterminated.Ptr().CString())
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry().Register("ddot_", func(ctx context.Context, args []Ptr) (abi.Scalar, error) {
		return abi.Float64(float64(len(args))), nil
	})

	sym, ok := r.Lookup(Signature{Symbol: "ddot_", Return: abi.Double, Arity: 5})
	if !ok {
		t.Fatal("Lookup failed")
	}
	ret, err := sym.Call(context.Background(), make([]Ptr, 5))
	if err != nil || ret.Float64() != 5 {
		t.Fatalf("Call = %v, %v", ret, err)
	}

	if _, ok := r.Lookup(Signature{Symbol: "missing_"}); ok {
		t.Error("missing symbol resolved")
	}

	r.Unregister("ddot_")
	if _, ok := r.Lookup(Signature{Symbol: "ddot_"}); ok {
		t.Error("unregistered symbol resolved")
	}

	r.Register("ddot_", nil)
	_ = r.Close()
	if !r.Closed() {
		t.Error("Closed() = false after Close")
	}
	if _, ok := r.Lookup(Signature{Symbol: "ddot_"}); ok {
		t.Error("closed registry resolved a symbol")
	}
}

func TestStatic(t *testing.T) {
	r := NewRegistry()
	s := Static{"libblas.so.3": r}

	lib, err := s.Open(context.Background(), "libblas.so.3")
	if err != nil || lib != Library(r) {
		t.Fatalf("Open = %v, %v", lib, err)
	}
	if _, err := s.Open(context.Background(), "nope"); err == nil {
		t.Error("expected error for unknown library")
	}
}
