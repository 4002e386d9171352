//go:build darwin || freebsd || linux

package dl

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/native"
)

// Open implements native.Opener.
func (o Opener) Open(_ context.Context, name string) (native.Library, error) {
	mode := o.Mode
	if mode == 0 {
		mode = purego.RTLD_LAZY | purego.RTLD_GLOBAL
	}
	h, err := purego.Dlopen(name, mode)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", name, err)
	}
	Logger().Debug("library opened", zap.String("library", name))
	return &Library{name: name, handle: h}, nil
}

// Library is an open shared object.
type Library struct {
	mu     sync.Mutex
	name   string
	handle uintptr
}

// Lookup implements native.Library.
func (l *Library) Lookup(sig native.Signature) (native.Symbol, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == 0 {
		return nil, false
	}
	addr, err := purego.Dlsym(l.handle, sig.Symbol)
	if err != nil || addr == 0 {
		return nil, false
	}
	if sig.Arity > MaxArity {
		sym, err := bindFFI(addr, sig)
		if err != nil {
			Logger().Warn("symbol has too many parameters for a direct call and libffi is unavailable",
				zap.String("symbol", sig.Symbol),
				zap.Int("arity", sig.Arity),
				zap.Error(err))
			return nil, false
		}
		return sym, true
	}

	fn, err := bind(addr, sig)
	if err != nil {
		Logger().Warn("cannot bind symbol", zap.String("symbol", sig.Symbol), zap.Error(err))
		return nil, false
	}
	return &symbol{sig: sig, fn: fn}, true
}

// Close implements native.Library.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("dlclose %s: %w", l.name, err)
	}
	return nil
}

var pointerType = reflect.TypeOf(unsafe.Pointer(nil))

func funcType(sig native.Signature) reflect.Type {
	in := make([]reflect.Type, sig.Arity)
	for i := range in {
		in[i] = pointerType
	}
	var out []reflect.Type
	switch sig.Return {
	case abi.Boolean, abi.Int:
		out = []reflect.Type{reflect.TypeOf(int32(0))}
	case abi.Long:
		out = []reflect.Type{reflect.TypeOf(int64(0))}
	case abi.Float:
		out = []reflect.Type{reflect.TypeOf(float32(0))}
	case abi.Double:
		out = []reflect.Type{reflect.TypeOf(float64(0))}
	}
	return reflect.FuncOf(in, out, false)
}

func bind(addr uintptr, sig native.Signature) (fn reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("register %s: %v", sig.Symbol, r)
		}
	}()
	fptr := reflect.New(funcType(sig))
	purego.RegisterFunc(fptr.Interface(), addr)
	return fptr.Elem(), nil
}

type symbol struct {
	sig native.Signature
	fn  reflect.Value
}

func (s *symbol) Call(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
	if len(args) != s.sig.Arity {
		return abi.Scalar{}, fmt.Errorf("%s takes %d arguments, got %d", s.sig.Symbol, s.sig.Arity, len(args))
	}

	pinner := new(runtime.Pinner)
	defer pinner.Unpin()

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(pin(pinner, a))
	}

	out := s.fn.Call(in)
	if len(out) == 0 {
		return abi.Scalar{}, nil
	}
	switch r := out[0]; s.sig.Return {
	case abi.Boolean:
		return abi.Bool(r.Int() != 0), nil
	case abi.Int:
		return abi.Int32(int32(r.Int())), nil
	case abi.Long:
		return abi.Int64(r.Int()), nil
	case abi.Float:
		return abi.Float32(float32(r.Float())), nil
	default:
		return abi.Float64(r.Float()), nil
	}
}

// pin keeps the block behind p in place for the call and returns the
// address to pass.
func pin(pinner *runtime.Pinner, p native.Ptr) unsafe.Pointer {
	if base := p.Block.Addr(); base != nil {
		pinner.Pin(base)
	}
	return p.Addr()
}
