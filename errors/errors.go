package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseGenerate Phase = "generate" // descriptor validation and emission
	PhaseLoad     Phase = "load"     // field resolution, library open, symbol binding
	PhaseCall     Phase = "call"     // bridge invocation
	PhaseUnload   Phase = "unload"   // library release
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupported       Kind = "unsupported"
	KindNotImplemented    Kind = "not_implemented"
	KindResourceExhausted Kind = "resource_exhausted"
	KindInitialization    Kind = "initialization"
	KindInvalidDescriptor Kind = "invalid_descriptor"
	KindInvalidArgument   Kind = "invalid_argument"
	KindNativeFault       Kind = "native_fault"
	KindNotFound          Kind = "not_found"
	KindNotInitialized    Kind = "not_initialized"
)

// Sentinels for errors.Is. Matching ignores Phase.
var (
	ErrUnsupported       = &Error{Kind: KindUnsupported}
	ErrNotImplemented    = &Error{Kind: KindNotImplemented}
	ErrResourceExhausted = &Error{Kind: KindResourceExhausted}
	ErrInitialization    = &Error{Kind: KindInitialization}
	ErrInvalidDescriptor = &Error{Kind: KindInvalidDescriptor}
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
	ErrNativeFault       = &Error{Kind: KindNativeFault}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrNotInitialized    = &Error{Kind: KindNotInitialized}
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Routine string
	Param   string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Routine != "" {
		b.WriteString(" in ")
		b.WriteString(e.Routine)
		if e.Param != "" {
			b.WriteByte('(')
			b.WriteString(e.Param)
			b.WriteByte(')')
		}
	} else if e.Param != "" {
		b.WriteString(" at ")
		b.WriteString(e.Param)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// An empty Phase on the target matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Routine sets the routine name
func (b *Builder) Routine(name string) *Builder {
	b.err.Routine = name
	return b
}

// Param sets the parameter name
func (b *Builder) Param(name string) *Builder {
	b.err.Param = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Unsupported reports a bound routine whose native symbol was not resolved.
func Unsupported(routine string) *Error {
	return &Error{
		Phase:   PhaseCall,
		Kind:    KindUnsupported,
		Routine: routine,
		Detail:  "symbol isn't available in native library",
	}
}

// NotImplemented reports a call to a stub routine.
func NotImplemented(routine string) *Error {
	return &Error{
		Phase:   PhaseCall,
		Kind:    KindNotImplemented,
		Routine: routine,
		Detail:  "not implemented",
	}
}

// ResourceExhausted reports a failed acquisition step.
func ResourceExhausted(routine, param string, cause error) *Error {
	return &Error{
		Phase:   PhaseCall,
		Kind:    KindResourceExhausted,
		Routine: routine,
		Param:   param,
		Detail:  "failed to copy from heap to native memory",
		Cause:   cause,
	}
}

// Initialization reports a fatal failure while loading a bridge library.
func Initialization(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInitialization,
		Detail: detail,
		Cause:  cause,
	}
}

// InvalidDescriptor reports a descriptor rejected at generation time.
func InvalidDescriptor(routine, param, detail string) *Error {
	return &Error{
		Phase:   PhaseGenerate,
		Kind:    KindInvalidDescriptor,
		Routine: routine,
		Param:   param,
		Detail:  detail,
	}
}

// InvalidArgument reports an external argument that does not match the bridge signature.
func InvalidArgument(routine, param, detail string) *Error {
	return &Error{
		Phase:   PhaseCall,
		Kind:    KindInvalidArgument,
		Routine: routine,
		Param:   param,
		Detail:  detail,
	}
}

// NativeFault wraps an error raised by the native symbol itself.
func NativeFault(routine string, cause error) *Error {
	return &Error{
		Phase:   PhaseCall,
		Kind:    KindNativeFault,
		Routine: routine,
		Detail:  "native call failed",
		Cause:   cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// NotInitialized reports use of a context that was never loaded or already unloaded.
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
