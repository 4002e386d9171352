package runtime

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/errors"
	"github.com/wippyai/jnibridge/ir"
	"github.com/wippyai/jnibridge/native"
)

// invocation is the state of one bridge call. Acquired parameters are
// pushed on a cleanup stack before their prolog runs, so a parameter that
// fails halfway is still released. Releases pop the stack in LIFO order.
type invocation struct {
	ctx     context.Context
	env     Env
	heap    native.Heap
	program *ir.Program
	fields  map[string]fieldID
	symbol  native.Symbol
	logger  *zap.Logger

	args    map[string]any
	slots   map[string]*slot
	stack   []int
	failed  bool
	culprit string
	err     error
}

// slot backs one declared local.
type slot struct {
	role ir.LocalRole
	mem  *native.Block
	ref  any
}

func (in *invocation) routine() string { return in.program.Name }

// bind checks the external arguments against the program signature.
func (in *invocation) bind(args []any) error {
	p := in.program
	if len(args) != p.Arity() {
		return errors.InvalidArgument(p.Name, "", fmt.Sprintf("want %d arguments, got %d", p.Arity(), len(args)))
	}
	in.args = make(map[string]any, len(args))
	i := 0
	for _, param := range p.Params {
		for _, f := range param.External {
			v, err := in.check(param, f, args[i])
			if err != nil {
				return err
			}
			in.args[f.Name] = v
			i++
		}
	}
	return nil
}

func (in *invocation) check(param ir.Param, f ir.Fragment, v any) (any, error) {
	switch f.Class {
	case ir.ArgScalar:
		s, err := abi.FromGo(f.Kind, v)
		if err != nil {
			return nil, errors.InvalidArgument(in.routine(), f.Name, err.Error())
		}
		return s, nil
	case ir.ArgString:
		if v != nil && !in.env.IsString(v) {
			return nil, errors.InvalidArgument(in.routine(), f.Name, fmt.Sprintf("want string, got %T", v))
		}
	case ir.ArgArray:
		if v != nil && !in.env.IsArrayOf(v, f.Kind) {
			return nil, errors.InvalidArgument(in.routine(), f.Name, fmt.Sprintf("want %s[], got %T", f.Kind, v))
		}
	case ir.ArgObject:
		w := wrapperOf(param)
		if w == "" {
			return v, nil
		}
		if v == nil {
			return nil, errors.InvalidArgument(in.routine(), f.Name, "null "+w)
		}
		if !in.env.IsInstanceOf(v, in.fields[w].class) {
			return nil, errors.InvalidArgument(in.routine(), f.Name, fmt.Sprintf("want %s, got %T", w, v))
		}
	}
	return v, nil
}

// wrapperOf returns the wrapper class a parameter reads, if any.
func wrapperOf(p ir.Param) string {
	for _, a := range p.Prolog {
		if a.Wrapper != "" {
			return a.Wrapper
		}
	}
	return ""
}

// run executes the program body.
func (in *invocation) run() (abi.Scalar, error) {
	p := in.program
	defer in.unwind()

	var ret abi.Scalar
	for _, s := range p.Body {
		switch s.Op {
		case ir.OpSymbol, ir.OpProbe, ir.OpLabel:
		case ir.OpCheckSymbol:
			if in.symbol == nil {
				return abi.Scalar{}, signalError(s.Signal, p.Name, "", nil)
			}
		case ir.OpFlag:
			ret = abi.Zero(p.Return)
		case ir.OpDeclare:
			in.declare(p.Params[s.Param])
		case ir.OpAcquire:
			if !in.failed {
				in.acquire(s.Param)
			}
		case ir.OpCall:
			if !in.failed {
				ret = in.call()
			}
		case ir.OpRelease:
			if n := len(in.stack); n > 0 && in.stack[n-1] == s.Param {
				in.stack = in.stack[:n-1]
				in.release(p.Params[s.Param])
			}
		case ir.OpSignal:
			if s.When == ir.Always {
				return abi.Scalar{}, signalError(s.Signal, p.Name, "", nil)
			}
			if in.failed && in.err == nil {
				in.err = signalError(s.Signal, p.Name, in.culprit, nil)
			}
		case ir.OpReturn:
			if in.err != nil {
				return abi.Scalar{}, in.err
			}
			return ret, nil
		}
	}
	return ret, in.err
}

// unwind releases whatever is still on the cleanup stack.
func (in *invocation) unwind() {
	if len(in.stack) > 0 {
		in.failed = true
	}
	for len(in.stack) > 0 {
		n := len(in.stack) - 1
		i := in.stack[n]
		in.stack = in.stack[:n]
		in.release(in.program.Params[i])
	}
}

func (in *invocation) declare(p ir.Param) {
	if in.slots == nil {
		in.slots = make(map[string]*slot)
	}
	for _, l := range p.Locals {
		s := &slot{role: l.Role}
		if l.Role == ir.NativeCell {
			s.mem = native.Alloc(8)
		}
		in.slots[l.Name] = s
	}
}

func (in *invocation) fail(param, why string) {
	in.failed = true
	if in.culprit == "" {
		in.culprit = param
	}
	in.logger.Debug("acquisition failed",
		zap.String("routine", in.routine()),
		zap.String("param", param),
		zap.String("step", why))
}

func (in *invocation) acquire(i int) {
	p := in.program.Params[i]
	if len(p.Epilog) > 0 {
		in.stack = append(in.stack, i)
	}
	for _, a := range p.Prolog {
		if !in.step(a) {
			in.fail(p.Name, a.Op.String())
			return
		}
	}
}

// step runs one prolog action and reports whether it produced its result.
func (in *invocation) step(a ir.Action) bool {
	env := in.env
	switch a.Op {
	case ir.CopyIn:
		s, _ := in.args[a.Param].(abi.Scalar)
		storeCell(in.slots[a.Local].mem.Ptr(), a.Kind, s)
	case ir.GetField:
		s := env.GetField(in.args[a.Param], in.fields[a.Wrapper].id, a.Kind)
		storeCell(in.slots[a.Local].mem.Ptr(), a.Kind, s)
	case ir.GetObjectField:
		in.slots[a.Handle].ref = env.GetObjectField(in.args[a.Param], in.fields[a.Wrapper].id)
	case ir.GetStringUTF:
		src := in.ref(a.Source)
		if src == nil {
			return false
		}
		b := env.GetStringUTFChars(src)
		if b == nil {
			return false
		}
		in.slots[a.Local].mem = b
	case ir.PinArray:
		arr := in.args[a.Param]
		if arr == nil {
			return false
		}
		b := env.GetPrimitiveArrayCritical(arr)
		if b == nil {
			return false
		}
		in.slots[a.Local].mem = b
	case ir.CopyToNative:
		n := env.GetArrayLength(in.args[a.Param])
		if n <= 0 {
			return false
		}
		b := in.heap.Malloc(n * a.Kind.Size())
		if b == nil {
			return false
		}
		src := in.slots[a.Handle].mem.Ptr().Bytes(n)
		dst := b.Ptr()
		for j, v := range src {
			dst.SetInt32(j, int32(v))
		}
		in.slots[a.Local].mem = b
	}
	return true
}

func (in *invocation) release(p ir.Param) {
	env := in.env
	for _, a := range p.Epilog {
		if a.OnlyIfOK && in.failed {
			continue
		}
		s := in.slots[a.Local]
		switch a.Op {
		case ir.FreeNative:
			if s.mem != nil {
				in.heap.Free(s.mem)
				s.mem = nil
			}
		case ir.UnpinArray:
			if s.mem != nil {
				env.ReleasePrimitiveArrayCritical(in.args[a.Param], s.mem, a.EffectiveMode(in.failed))
				s.mem = nil
			}
		case ir.ReleaseStringUTF:
			if s.mem != nil {
				env.ReleaseStringUTFChars(in.ref(a.Source), s.mem)
				s.mem = nil
			}
		case ir.SetField:
			v := loadCell(s.mem.Ptr(), a.Kind)
			env.SetField(in.args[a.Param], in.fields[a.Wrapper].id, v)
		case ir.SetObjectField:
			if s.mem != nil {
				env.SetObjectField(in.args[a.Param], in.fields[a.Wrapper].id, env.NewStringUTF(s.mem.Ptr()))
			}
		}
	}
}

// ref resolves a managed reference held in a local or passed as an argument.
func (in *invocation) ref(name string) any {
	if s, ok := in.slots[name]; ok && s.role == ir.ManagedRef {
		return s.ref
	}
	return in.args[name]
}

func (in *invocation) call() abi.Scalar {
	p := in.program
	args := make([]native.Ptr, len(p.Params))
	for i, param := range p.Params {
		ptr, err := in.arg(param)
		if err != nil {
			in.failed = true
			in.err = err
			return abi.Zero(p.Return)
		}
		args[i] = ptr
	}

	ret, err := in.invoke(args)
	if err != nil {
		in.failed = true
		in.err = errors.NativeFault(p.Name, err)
		return abi.Zero(p.Return)
	}
	switch {
	case p.Return == abi.Void:
		return abi.Scalar{}
	case p.Return == abi.Boolean && ret.Kind == abi.Int:
		return abi.Bool(ret.Int32() != 0)
	case ret.Kind != p.Return:
		in.failed = true
		in.err = errors.NativeFault(p.Name, fmt.Errorf("returned %s, want %s", ret.Kind, p.Return))
		return abi.Zero(p.Return)
	}
	return ret
}

func (in *invocation) invoke(args []native.Ptr) (ret abi.Scalar, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", in.program.Symbol, r)
		}
	}()
	return in.symbol.Call(in.ctx, args)
}

// arg forms the native argument of a parameter.
func (in *invocation) arg(p ir.Param) (native.Ptr, error) {
	x := p.Arg
	switch x.Kind {
	case ir.AddressOf, ir.ValueOf:
		return in.slots[x.Local].mem.Ptr(), nil
	case ir.OffsetOf:
		mem := in.slots[x.Local].mem
		off := in.args[x.Offset].(abi.Scalar).Int32()
		bytes := int(off) * x.Elem.Size()
		if off < 0 || bytes > mem.Len() {
			return native.Ptr{}, errors.InvalidArgument(in.routine(), x.Offset,
				fmt.Sprintf("offset %d outside array of %d elements", off, mem.Len()/x.Elem.Size()))
		}
		return mem.Ptr().Add(bytes), nil
	}
	return native.Ptr{}, nil
}

func storeCell(p native.Ptr, k abi.Kind, s abi.Scalar) {
	switch k {
	case abi.Boolean:
		var v int32
		if s.Bool() {
			v = 1
		}
		p.SetInt32(0, v)
	case abi.Int:
		p.SetInt32(0, s.Int32())
	case abi.Long:
		p.SetInt64(0, s.Int64())
	case abi.Float:
		p.SetFloat32(0, s.Float32())
	case abi.Double:
		p.SetFloat64(0, s.Float64())
	}
}

func loadCell(p native.Ptr, k abi.Kind) abi.Scalar {
	switch k {
	case abi.Boolean:
		return abi.Bool(p.Int32(0) != 0)
	case abi.Int:
		return abi.Int32(p.Int32(0))
	case abi.Long:
		return abi.Int64(p.Int64(0))
	case abi.Float:
		return abi.Float32(p.Float32(0))
	case abi.Double:
		return abi.Float64(p.Float64(0))
	}
	return abi.Scalar{}
}

func signalError(sig ir.Signal, routine, param string, cause error) error {
	switch sig {
	case ir.SignalUnsupported:
		return errors.Unsupported(routine)
	case ir.SignalNotImplemented:
		return errors.NotImplemented(routine)
	case ir.SignalResourceExhausted:
		return errors.ResourceExhausted(routine, param, cause)
	}
	return nil
}
