//go:build darwin || freebsd || linux

package dl

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/native"
)

// libffi is loaded at run time so the package keeps building without cgo.
var ffiPaths = map[string][]string{
	"linux": {
		"libffi.so.8",
		"libffi.so.7",
		"libffi.so.6",
		"libffi.so",
		"/usr/lib/x86_64-linux-gnu/libffi.so.8",
		"/usr/lib/aarch64-linux-gnu/libffi.so.8",
		"/usr/lib64/libffi.so.8",
		"/usr/lib/libffi.so.8",
		"/lib/libffi.so.8",
		"/lib64/libffi.so.8",
	},
	"darwin": {
		"libffi.8.dylib",
		"libffi.dylib",
		"/usr/lib/libffi.dylib",
		"/opt/homebrew/opt/libffi/lib/libffi.dylib",
		"/usr/local/opt/libffi/lib/libffi.dylib",
	},
	"freebsd": {
		"libffi.so.8",
		"libffi.so.7",
		"libffi.so",
		"/usr/local/lib/libffi.so.8",
		"/usr/local/lib/libffi.so",
	},
}

// FFI_DEFAULT_ABI per architecture.
var ffiABI = map[string]int32{
	"amd64": 2, // FFI_UNIX64
	"arm64": 1, // FFI_SYSV
}

// ffi_cif is 32 bytes on the supported targets; leave room for
// target-specific trailing fields.
const cifWords = 16

type ffiLib struct {
	abi    int32
	handle uintptr

	prepCIF func(cif unsafe.Pointer, abi int32, nargs uint32, rtype uintptr, atypes unsafe.Pointer) int32
	call    func(cif unsafe.Pointer, fn uintptr, rvalue, avalue unsafe.Pointer)

	typeVoid, typeSint32, typeSint64, typeFloat, typeDouble, typePointer uintptr
}

var (
	ffi     *ffiLib
	ffiErr  error
	ffiOnce sync.Once
)

// loadFFI opens libffi once per process.
func loadFFI() (*ffiLib, error) {
	ffiOnce.Do(func() {
		ffi, ffiErr = openFFI()
		if ffiErr != nil {
			Logger().Debug("libffi unavailable", zap.Error(ffiErr))
			return
		}
		Logger().Debug("libffi loaded")
	})
	return ffi, ffiErr
}

func openFFI() (lib *ffiLib, err error) {
	abiID, ok := ffiABI[runtime.GOARCH]
	if !ok {
		return nil, fmt.Errorf("libffi: unsupported architecture %s", runtime.GOARCH)
	}
	var handle uintptr
	for _, name := range ffiPaths[runtime.GOOS] {
		if h, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_LOCAL); err == nil {
			handle = h
			break
		}
	}
	if handle == 0 {
		return nil, fmt.Errorf("libffi: no library found for %s", runtime.GOOS)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("libffi: %v", r)
		}
		if err != nil {
			_ = purego.Dlclose(handle)
			lib = nil
		}
	}()

	lib = &ffiLib{abi: abiID, handle: handle}
	sym := func(name string) uintptr {
		if err != nil {
			return 0
		}
		var addr uintptr
		addr, err = purego.Dlsym(handle, name)
		if err == nil && addr == 0 {
			err = fmt.Errorf("libffi: %s is NULL", name)
		}
		return addr
	}
	prep, call := sym("ffi_prep_cif"), sym("ffi_call")
	lib.typeVoid = sym("ffi_type_void")
	lib.typeSint32 = sym("ffi_type_sint32")
	lib.typeSint64 = sym("ffi_type_sint64")
	lib.typeFloat = sym("ffi_type_float")
	lib.typeDouble = sym("ffi_type_double")
	lib.typePointer = sym("ffi_type_pointer")
	if err != nil {
		return nil, err
	}
	purego.RegisterFunc(&lib.prepCIF, prep)
	purego.RegisterFunc(&lib.call, call)
	return lib, nil
}

func (f *ffiLib) returnType(k abi.Kind) uintptr {
	switch k {
	case abi.Boolean, abi.Int:
		return f.typeSint32
	case abi.Long:
		return f.typeSint64
	case abi.Float:
		return f.typeFloat
	case abi.Double:
		return f.typeDouble
	}
	return f.typeVoid
}

// ffiSymbol calls a routine through ffi_call. It carries any arity.
type ffiSymbol struct {
	sig  native.Signature
	addr uintptr
	lib  *ffiLib
}

// bindFFI binds the routine at addr through libffi.
func bindFFI(addr uintptr, sig native.Signature) (*ffiSymbol, error) {
	lib, err := loadFFI()
	if err != nil {
		return nil, err
	}
	return &ffiSymbol{sig: sig, addr: addr, lib: lib}, nil
}

func (s *ffiSymbol) Call(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
	if len(args) != s.sig.Arity {
		return abi.Scalar{}, fmt.Errorf("%s takes %d arguments, got %d", s.sig.Symbol, s.sig.Arity, len(args))
	}
	n := len(args)

	pinner := new(runtime.Pinner)
	defer pinner.Unpin()

	// Every argument is a pointer: avalue[i] points at slot i, which holds
	// the argument itself.
	cif := make([]uint64, cifWords)
	atypes := make([]uintptr, n+1)
	slots := make([]unsafe.Pointer, n+1)
	avalue := make([]unsafe.Pointer, n+1)
	ret := make([]uint64, 2)
	for i, a := range args {
		atypes[i] = s.lib.typePointer
		slots[i] = pin(pinner, a)
		avalue[i] = unsafe.Pointer(&slots[i])
	}
	pinner.Pin(&cif[0])
	pinner.Pin(&atypes[0])
	pinner.Pin(&slots[0])
	pinner.Pin(&avalue[0])
	pinner.Pin(&ret[0])

	if st := s.lib.prepCIF(unsafe.Pointer(&cif[0]), s.lib.abi, uint32(n), s.lib.returnType(s.sig.Return), unsafe.Pointer(&atypes[0])); st != 0 {
		return abi.Scalar{}, fmt.Errorf("ffi_prep_cif %s: status %d", s.sig.Symbol, st)
	}
	s.lib.call(unsafe.Pointer(&cif[0]), s.addr, unsafe.Pointer(&ret[0]), unsafe.Pointer(&avalue[0]))

	// Integral results narrower than ffi_arg are widened into it.
	switch s.sig.Return {
	case abi.Boolean:
		return abi.Bool(int32(uint32(ret[0])) != 0), nil
	case abi.Int:
		return abi.Int32(int32(uint32(ret[0]))), nil
	case abi.Long:
		return abi.Int64(int64(ret[0])), nil
	case abi.Float:
		return abi.Float32(math.Float32frombits(uint32(ret[0]))), nil
	case abi.Double:
		return abi.Float64(math.Float64frombits(ret[0])), nil
	}
	return abi.Scalar{}, nil
}
