package ir

import "github.com/wippyai/jnibridge/abi"

// ArgClass classifies an external argument.
type ArgClass uint8

const (
	ArgScalar ArgClass = iota // primitive passed by value
	ArgString                 // jstring
	ArgObject                 // jobject (wrapper box or opaque)
	ArgArray                  // primitive array reference
)

// Fragment is one external argument contributed by a parameter.
type Fragment struct {
	Name  string
	Class ArgClass
	Kind  abi.Kind
}

// JNIType returns the JNI type name of the argument.
func (f Fragment) JNIType() string {
	switch f.Class {
	case ArgString:
		return "jstring"
	case ArgObject:
		return "jobject"
	case ArgArray:
		return f.Kind.JNIArrayType()
	default:
		return f.Kind.JNIType()
	}
}

// LocalRole tells a backend what a local holds.
type LocalRole uint8

const (
	// NativeCell is an aligned scalar cell passed by address.
	NativeCell LocalRole = iota
	// NativeBuffer is a pointer into native or pinned memory.
	NativeBuffer
	// ManagedRef is a managed reference kept across the call.
	ManagedRef
)

// Local is a storage slot declared by a parameter.
type Local struct {
	Name    string
	Type    string
	Init    string
	Aligned bool
	Role    LocalRole
	Kind    abi.Kind
}

// ExprKind selects how a native argument is formed.
type ExprKind uint8

const (
	AddressOf ExprKind = iota // &local
	ValueOf                   // local
	OffsetOf                  // local + offset argument
	Null                      // unmarshaled, never passed
)

// Expr is the native-call argument of a parameter.
type Expr struct {
	Kind   ExprKind
	Local  string
	Offset string
	Elem   abi.Kind
}

// ActionOp is a prolog or epilog step.
type ActionOp uint8

const (
	CopyIn           ActionOp = iota // Local = Param
	GetField                         // Local = Param.val
	GetObjectField                   // Handle = Param.val
	GetStringUTF                     // Local = chars(Source), fallible
	PinArray                         // Local = pin(Param), fallible
	CopyToNative                     // Local = int copy of Handle, fallible
	FreeNative                       // free(Local)
	UnpinArray                       // release(Param, Local, mode)
	ReleaseStringUTF                 // release chars(Source, Local)
	SetField                         // Param.val = Local
	SetObjectField                   // Param.val = new string(Local)
)

var actionNames = [...]string{
	CopyIn:           "copy-in",
	GetField:         "get-field",
	GetObjectField:   "get-object-field",
	GetStringUTF:     "get-string-utf",
	PinArray:         "pin-array",
	CopyToNative:     "copy-to-native",
	FreeNative:       "free-native",
	UnpinArray:       "unpin-array",
	ReleaseStringUTF: "release-string-utf",
	SetField:         "set-field",
	SetObjectField:   "set-object-field",
}

func (a ActionOp) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "action?"
}

// Action is one step of a parameter's prolog or epilog.
//
// Local is the slot written (acquisitions) or read (releases). Handle names
// a second slot: the pinned managed buffer for boolean copies, or the
// string reference held by a string wrapper. Source names the managed
// reference a string conversion reads from or releases to; it is either
// the parameter itself or Handle.
type Action struct {
	Op      ActionOp
	Param   string
	Kind    abi.Kind
	Local   string
	Handle  string
	Source  string
	Wrapper string
	Mode    abi.ReleaseMode

	// Fallible marks acquisitions that set the failure flag and jump to
	// cleanup when they produce nothing.
	Fallible bool
	// AbortOnFail downgrades Mode to abort when the failure flag is set.
	AbortOnFail bool
	// OnlyIfOK suppresses the step when the failure flag is set.
	OnlyIfOK bool
}

// EffectiveMode returns the release mode actually applied.
func (a Action) EffectiveMode(failed bool) abi.ReleaseMode {
	if failed && a.AbortOnFail {
		return abi.Abort
	}
	return a.Mode
}
