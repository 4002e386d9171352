package ir

import "github.com/wippyai/jnibridge/abi"

// Op is a body statement opcode.
type Op uint8

const (
	OpSymbol      Op = iota // native function pointer declaration
	OpProbe                 // capability probe entry point
	OpCheckSymbol           // signal unsupported and return when the pointer is unbound
	OpFlag                  // failure flag declaration
	OpDeclare               // parameter locals
	OpAcquire               // parameter prolog
	OpCall                  // native call, capturing the return value
	OpLabel                 // cleanup entry point
	OpRelease               // parameter epilog
	OpSignal                // raise a managed exception
	OpReturn
)

var opNames = [...]string{
	OpSymbol:      "symbol",
	OpProbe:       "probe",
	OpCheckSymbol: "check-symbol",
	OpFlag:        "flag",
	OpDeclare:     "declare",
	OpAcquire:     "acquire",
	OpCall:        "call",
	OpLabel:       "label",
	OpRelease:     "release",
	OpSignal:      "signal",
	OpReturn:      "return",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "op?"
}

// Signal is a managed exception raised by a bridge.
type Signal uint8

const (
	SignalNone Signal = iota
	SignalUnsupported
	SignalNotImplemented
	SignalResourceExhausted
)

// Class returns the managed exception class.
func (s Signal) Class() string {
	switch s {
	case SignalUnsupported, SignalNotImplemented:
		return "java/lang/UnsupportedOperationException"
	case SignalResourceExhausted:
		return "java/lang/OutOfMemoryError"
	default:
		return ""
	}
}

// Message returns the exception message.
func (s Signal) Message() string {
	switch s {
	case SignalUnsupported:
		return "symbol isn't available in native library"
	case SignalNotImplemented:
		return "not implemented"
	case SignalResourceExhausted:
		return "Failed to copy from heap to native memory"
	default:
		return ""
	}
}

// Cond guards a Signal statement.
type Cond uint8

const (
	Always Cond = iota
	IfFailed
)

// Stmt is one statement of a bridge body.
// Param indexes Program.Params for declare, acquire and release; it is -1 otherwise.
type Stmt struct {
	Op     Op
	Param  int
	Signal Signal
	When   Cond
}

// Program is the lowered form of one routine.
type Program struct {
	Name   string
	Symbol string
	Return abi.Kind
	Stub   bool
	Params []Param
	Body   []Stmt
}

// Param is a lowered parameter: the contributions of one descriptor.
type Param struct {
	Name       string
	External   []Fragment
	NativeType string
	Arg        Expr
	Locals     []Local
	Prolog     []Action
	Epilog     []Action
	Stage      int
}

// Arity returns the number of external arguments the bridge takes.
func (p *Program) Arity() int {
	n := 0
	for i := range p.Params {
		n += len(p.Params[i].External)
	}
	return n
}

// Externals returns the flattened external signature.
func (p *Program) Externals() []Fragment {
	out := make([]Fragment, 0, p.Arity())
	for i := range p.Params {
		out = append(out, p.Params[i].External...)
	}
	return out
}

// Order returns parameter indices in acquisition order.
func (p *Program) Order() []int {
	var out []int
	for _, s := range p.Body {
		if s.Op == OpAcquire {
			out = append(out, s.Param)
		}
	}
	return out
}
