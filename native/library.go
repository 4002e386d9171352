package native

import (
	"context"
	"fmt"

	"github.com/wippyai/jnibridge/abi"
)

// Signature describes a native routine. Every parameter is passed by
// reference, so only the arity and the return kind matter.
type Signature struct {
	Symbol string
	Return abi.Kind
	Arity  int
}

// Symbol is a resolved native routine.
type Symbol interface {
	Call(ctx context.Context, args []Ptr) (abi.Scalar, error)
}

// Func adapts a Go function to Symbol.
type Func func(ctx context.Context, args []Ptr) (abi.Scalar, error)

func (f Func) Call(ctx context.Context, args []Ptr) (abi.Scalar, error) {
	return f(ctx, args)
}

// Library resolves symbols from one loaded native library.
type Library interface {
	// Lookup resolves a symbol. A missing symbol is not an error.
	Lookup(sig Signature) (Symbol, bool)
	Close() error
}

// Opener loads a library by path or loader name.
type Opener interface {
	Open(ctx context.Context, name string) (Library, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, name string) (Library, error)

func (f OpenerFunc) Open(ctx context.Context, name string) (Library, error) {
	return f(ctx, name)
}

// Static is an Opener over preloaded libraries keyed by name.
type Static map[string]Library

func (s Static) Open(_ context.Context, name string) (Library, error) {
	lib, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("library %q not found", name)
	}
	return lib, nil
}
