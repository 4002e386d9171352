package runtime

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/errors"
	"github.com/wippyai/jnibridge/ir"
	"github.com/wippyai/jnibridge/native"
)

// Context is the per-library state a loaded bridge calls through: wrapper
// field IDs, the native library handle and its resolved symbols. It is
// written by Load and Unload only; calls read it concurrently.
type Context struct {
	mu      sync.RWMutex
	unit    *ir.Unit
	lib     native.Library
	libName string
	fields  map[string]fieldID
	symbols map[string]native.Symbol
	logger  *zap.Logger
}

type fieldID struct {
	class any
	id    any
}

type loadOptions struct {
	opener native.Opener
	props  Properties
	logger *zap.Logger
}

// Option configures Load.
type Option func(*loadOptions)

// WithOpener sets how the native library is opened.
func WithOpener(o native.Opener) Option {
	return func(lo *loadOptions) { lo.opener = o }
}

// WithProperties sets where the library path and name are looked up.
// The default is the Env itself when it implements Properties, otherwise
// the process environment.
func WithProperties(p Properties) Option {
	return func(lo *loadOptions) { lo.props = p }
}

// WithLogger overrides the package logger for this context.
func WithLogger(l *zap.Logger) Option {
	return func(lo *loadOptions) { lo.logger = l }
}

// Load resolves the unit's wrapper fields, opens its native library and
// binds every non-stub routine. A missing symbol is not an error; calls to
// that routine report it as unsupported.
func Load(ctx context.Context, env Env, unit *ir.Unit, opts ...Option) (*Context, error) {
	lo := loadOptions{logger: Logger()}
	for _, opt := range opts {
		opt(&lo)
	}
	if lo.props == nil {
		if p, ok := env.(Properties); ok {
			lo.props = p
		} else {
			lo.props = EnvProperties{}
		}
	}
	if lo.opener == nil {
		return nil, errors.Initialization("no library opener configured", nil)
	}

	c := &Context{
		unit:    unit,
		fields:  make(map[string]fieldID, len(unit.Fields)),
		symbols: make(map[string]native.Symbol, len(unit.Programs)),
		logger:  lo.logger.With(zap.String("class", unit.Class)),
	}

	for _, f := range unit.Fields {
		cls := env.FindClass(f.Class)
		if cls == nil {
			return nil, errors.Initialization(fmt.Sprintf("class %s not found", f.Class), nil)
		}
		id := env.GetFieldID(cls, f.Field, f.Signature)
		if id == nil {
			return nil, errors.Initialization(fmt.Sprintf("field %s.%s %s not found", f.Class, f.Field, f.Signature), nil)
		}
		c.fields[f.Wrapper] = fieldID{class: cls, id: id}
	}

	c.libName = libraryName(unit, lo.props)
	lib, err := lo.opener.Open(ctx, c.libName)
	if err != nil {
		return nil, errors.Initialization(fmt.Sprintf("open %s", c.libName), err)
	}
	c.lib = lib

	missing := 0
	for _, p := range unit.Programs {
		if p.Stub {
			continue
		}
		sym, ok := lib.Lookup(native.Signature{Symbol: p.Symbol, Return: p.Return, Arity: len(p.Params)})
		if !ok {
			missing++
			c.logger.Debug("symbol not available", zap.String("symbol", p.Symbol))
			continue
		}
		c.symbols[p.Name] = sym
	}

	c.logger.Info("bridge loaded",
		zap.String("library", c.libName),
		zap.Int("bound", len(c.symbols)),
		zap.Int("missing", missing))
	return c, nil
}

// libraryName picks the library to open: an explicit path, then a loader
// name, then the compiled default.
func libraryName(u *ir.Unit, props Properties) string {
	if v, ok := props.Property(u.LibPathKey); ok {
		return v
	}
	if v, ok := props.Property(u.LibNameKey); ok {
		return v
	}
	return u.DefaultLib
}

// Library returns the name the native library was opened with.
func (c *Context) Library() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.libName
}

// Has reports whether the routine has a native implementation. Stubs and
// unknown routines report false.
func (c *Context) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.symbols[name]
	return ok
}

// Call invokes a routine with its external arguments, in declaration
// order. Arrays contribute the array followed by its int offset. Wrapper
// and array arguments are updated in place. Void routines return the zero
// Scalar.
func (c *Context) Call(ctx context.Context, env Env, name string, args ...any) (abi.Scalar, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.unit == nil {
		return abi.Scalar{}, errors.NotInitialized(errors.PhaseCall, "bridge context")
	}
	p, ok := c.unit.Program(name)
	if !ok {
		return abi.Scalar{}, errors.NotFound(errors.PhaseCall, "routine", name)
	}

	in := &invocation{
		ctx:     ctx,
		env:     env,
		heap:    heapOf(env),
		program: p,
		fields:  c.fields,
		symbol:  c.symbols[name],
		logger:  c.logger,
	}
	if err := in.bind(args); err != nil {
		return abi.Scalar{}, err
	}
	ret, err := in.run()
	if err != nil {
		c.logger.Debug("call failed", zap.String("routine", name), zap.Error(err))
		return abi.Scalar{}, err
	}
	return ret, nil
}

// Unload closes the native library. The context is unusable afterwards.
func (c *Context) Unload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unit == nil {
		return nil
	}
	var err error
	if c.lib != nil {
		if cerr := c.lib.Close(); cerr != nil {
			err = errors.Wrap(errors.PhaseUnload, errors.KindNativeFault, cerr, "close "+c.libName)
		}
	}
	c.logger.Info("bridge unloaded", zap.String("library", c.libName))
	c.unit = nil
	c.lib = nil
	c.symbols = nil
	c.fields = nil
	return err
}
