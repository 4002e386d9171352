package wasmlib

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/native"
)

const pageSize = 65536

// Library is an instantiated module. Calls are serialized because they
// share guest memory.
type Library struct {
	mu      sync.Mutex
	name    string
	runtime wazero.Runtime
	module  api.Module
	memory  api.Memory
	malloc  api.Function
	free    api.Function
	scratch uint32 // byte offset of the scratch region
	closed  bool
}

func (l *Library) init() error {
	l.memory = l.module.ExportedMemory("memory")
	if l.memory == nil {
		return fmt.Errorf("%s: no exported memory", l.name)
	}
	m, f := l.module.ExportedFunction("malloc"), l.module.ExportedFunction("free")
	if m != nil && f != nil {
		l.malloc, l.free = m, f
	}
	l.scratch = l.memory.Size()
	return nil
}

// Lookup implements native.Library. The export must take Arity i32
// addresses and return the wasm type of the routine's return kind.
func (l *Library) Lookup(sig native.Signature) (native.Symbol, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, false
	}
	fn := l.module.ExportedFunction(sig.Symbol)
	if fn == nil || !matches(fn.Definition(), sig) {
		return nil, false
	}
	return &symbol{lib: l, sig: sig, fn: fn}, true
}

// Close implements native.Library.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.runtime.Close(context.Background())
}

func matches(def api.FunctionDefinition, sig native.Signature) bool {
	params := def.ParamTypes()
	if len(params) != sig.Arity {
		return false
	}
	for _, p := range params {
		if p != api.ValueTypeI32 {
			return false
		}
	}
	results := def.ResultTypes()
	if sig.Return == abi.Void {
		return len(results) == 0
	}
	return len(results) == 1 && results[0] == valueType(sig.Return)
}

func valueType(k abi.Kind) api.ValueType {
	switch k {
	case abi.Long:
		return api.ValueTypeI64
	case abi.Float:
		return api.ValueTypeF32
	case abi.Double:
		return api.ValueTypeF64
	}
	return api.ValueTypeI32
}

type symbol struct {
	lib *Library
	sig native.Signature
	fn  api.Function
}

// placement is a host block copied into guest memory.
type placement struct {
	block *native.Block
	addr  uint32
}

func (s *symbol) Call(ctx context.Context, args []native.Ptr) (abi.Scalar, error) {
	if len(args) != s.sig.Arity {
		return abi.Scalar{}, fmt.Errorf("%s takes %d arguments, got %d", s.sig.Symbol, s.sig.Arity, len(args))
	}

	l := s.lib
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return abi.Scalar{}, fmt.Errorf("%s: library closed", l.name)
	}

	placed, err := l.place(ctx, args)
	if err != nil {
		return abi.Scalar{}, err
	}
	defer l.release(ctx, placed)

	params := make([]uint64, len(args))
	for i, a := range args {
		if a.IsNil() {
			continue
		}
		for _, p := range placed {
			if p.block == a.Block {
				params[i] = api.EncodeU32(p.addr + uint32(a.Off))
				break
			}
		}
	}

	results, err := s.fn.Call(ctx, params...)
	if err != nil {
		return abi.Scalar{}, fmt.Errorf("%s: %w", s.sig.Symbol, err)
	}
	for _, p := range placed {
		buf, ok := l.memory.Read(p.addr, uint32(p.block.Len()))
		if !ok {
			return abi.Scalar{}, fmt.Errorf("%s: guest block at %#x out of range", s.sig.Symbol, p.addr)
		}
		copy(p.block.Bytes(), buf)
	}
	return decode(s.sig.Return, results), nil
}

// place copies every distinct argument block into guest memory.
func (l *Library) place(ctx context.Context, args []native.Ptr) ([]placement, error) {
	var placed []placement
	seen := make(map[*native.Block]bool, len(args))
	next := l.scratch
	for _, a := range args {
		if a.IsNil() || seen[a.Block] {
			continue
		}
		seen[a.Block] = true
		size := uint32(a.Block.Len())

		var addr uint32
		if l.malloc != nil {
			res, err := l.malloc.Call(ctx, uint64(max(size, 1)))
			if err != nil || res[0] == 0 {
				l.release(ctx, placed)
				return nil, fmt.Errorf("%s: guest malloc(%d) failed", l.name, size)
			}
			addr = api.DecodeU32(res[0])
		} else {
			addr = next
			next += (size + 7) &^ 7
			if err := l.reserve(next); err != nil {
				return nil, err
			}
		}
		if !l.memory.Write(addr, a.Block.Bytes()) {
			l.release(ctx, append(placed, placement{block: a.Block, addr: addr}))
			return nil, fmt.Errorf("%s: guest block at %#x out of range", l.name, addr)
		}
		placed = append(placed, placement{block: a.Block, addr: addr})
	}
	return placed, nil
}

// reserve grows guest memory to cover end bytes.
func (l *Library) reserve(end uint32) error {
	have := l.memory.Size()
	if end <= have {
		return nil
	}
	pages := (end - have + pageSize - 1) / pageSize
	if _, ok := l.memory.Grow(pages); !ok {
		return fmt.Errorf("%s: cannot grow guest memory by %d pages", l.name, pages)
	}
	return nil
}

func (l *Library) release(ctx context.Context, placed []placement) {
	if l.free == nil {
		return
	}
	for _, p := range placed {
		_, _ = l.free.Call(ctx, api.EncodeU32(p.addr))
	}
}

func decode(k abi.Kind, results []uint64) abi.Scalar {
	if len(results) == 0 {
		return abi.Scalar{}
	}
	r := results[0]
	switch k {
	case abi.Boolean:
		return abi.Bool(api.DecodeU32(r) != 0)
	case abi.Int:
		return abi.Int32(api.DecodeI32(r))
	case abi.Long:
		return abi.Int64(int64(r))
	case abi.Float:
		return abi.Float32(api.DecodeF32(r))
	case abi.Double:
		return abi.Float64(api.DecodeF64(r))
	}
	return abi.Scalar{}
}
