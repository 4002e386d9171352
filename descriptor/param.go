package descriptor

import (
	"fmt"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/ir"
)

// Kind is the marshaling strategy of a parameter.
type Kind uint8

const (
	KindScalar        Kind = iota // by-value primitive, passed by address of a local copy
	KindScalarWrapper             // mutable box with a numeric val field
	KindString                    // immutable text
	KindStringWrapper             // mutable box with a String val field
	KindArray                     // primitive array plus element offset
	KindOpaque                    // unmarshaled object, stub routines only
)

var kindNames = [...]string{
	KindScalar:        "scalar",
	KindScalarWrapper: "scalar-wrapper",
	KindString:        "string",
	KindStringWrapper: "string-wrapper",
	KindArray:         "array",
	KindOpaque:        "opaque",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Access is the declared direction of an array parameter.
type Access uint8

const (
	In Access = iota
	InOut
	Out
)

func (a Access) String() string {
	switch a {
	case In:
		return "in"
	case InOut:
		return "inout"
	case Out:
		return "out"
	default:
		return "access?"
	}
}

// Param describes how one parameter crosses the bridge.
// Values are immutable once constructed.
type Param struct {
	kind     Kind
	name     string
	value    abi.Kind
	access   Access
	strategy abi.Strategy
	mode     abi.ReleaseMode
}

func scalar(k abi.Kind, name string) Param {
	return Param{kind: KindScalar, name: name, value: k}
}

func wrapper(k abi.Kind, name string) Param {
	return Param{kind: KindScalarWrapper, name: name, value: k, access: InOut}
}

// array derives the pinning contract from access: read-only arrays use a
// critical pin that always discards, writable arrays a zero-copy pin that
// commits unless the invocation failed.
func array(k abi.Kind, name string, access Access) Param {
	p := Param{kind: KindArray, name: name, value: k, access: access}
	if access == In {
		p.strategy = abi.Critical
		p.mode = abi.Abort
	} else {
		p.strategy = abi.ZeroCopy
		p.mode = abi.Commit
	}
	return p
}

func Boolean(name string) Param { return scalar(abi.Boolean, name) }
func Int(name string) Param     { return scalar(abi.Int, name) }
func Long(name string) Param    { return scalar(abi.Long, name) }
func Float(name string) Param   { return scalar(abi.Float, name) }
func Double(name string) Param  { return scalar(abi.Double, name) }

func BooleanW(name string) Param { return wrapper(abi.Boolean, name) }
func IntW(name string) Param     { return wrapper(abi.Int, name) }
func FloatW(name string) Param   { return wrapper(abi.Float, name) }
func DoubleW(name string) Param  { return wrapper(abi.Double, name) }

func String(name string) Param {
	return Param{kind: KindString, name: name}
}

func StringW(name string) Param {
	return Param{kind: KindStringWrapper, name: name, access: InOut}
}

// Object is a parameter the bridge does not marshal, such as a callback.
func Object(name string) Param {
	return Param{kind: KindOpaque, name: name}
}

func IntArray(name string, access Access) Param    { return array(abi.Int, name, access) }
func FloatArray(name string, access Access) Param  { return array(abi.Float, name, access) }
func DoubleArray(name string, access Access) Param { return array(abi.Double, name, access) }

// BooleanArray is read-only: elements are copied into a native int buffer
// under a critical pin that is always released with discard.
func BooleanArray(name string) Param {
	return Param{kind: KindArray, name: name, value: abi.Boolean, access: In, strategy: abi.Critical, mode: abi.Abort}
}

func (p Param) Kind() Kind                   { return p.kind }
func (p Param) Name() string                 { return p.name }
func (p Param) Value() abi.Kind              { return p.value }
func (p Param) Access() Access               { return p.access }
func (p Param) Strategy() abi.Strategy       { return p.strategy }
func (p Param) ReleaseMode() abi.ReleaseMode { return p.mode }

// OffsetName returns the name of the element offset argument of an array.
func (p Param) OffsetName() string {
	return "offset" + p.name
}

func (p Param) native() string { return "__n" + p.name }
func (p Param) handle() string { return "__j" + p.name }

// Stage orders acquisition: scalar-like parameters before arrays.
func (p Param) Stage() int {
	if p.kind == KindArray {
		return 1
	}
	return 0
}

// NativeType returns the C type of the native routine parameter.
func (p Param) NativeType() string {
	switch p.kind {
	case KindScalar, KindScalarWrapper, KindArray:
		return p.value.NativeType() + " *"
	case KindString:
		return "const char *"
	case KindStringWrapper:
		return "char *"
	default:
		return "void *"
	}
}

// External returns the bridge arguments this parameter contributes.
func (p Param) External() []ir.Fragment {
	switch p.kind {
	case KindScalar:
		return []ir.Fragment{{Name: p.name, Class: ir.ArgScalar, Kind: p.value}}
	case KindScalarWrapper:
		return []ir.Fragment{{Name: p.name, Class: ir.ArgObject, Kind: p.value}}
	case KindString:
		return []ir.Fragment{{Name: p.name, Class: ir.ArgString}}
	case KindStringWrapper, KindOpaque:
		return []ir.Fragment{{Name: p.name, Class: ir.ArgObject}}
	case KindArray:
		return []ir.Fragment{
			{Name: p.name, Class: ir.ArgArray, Kind: p.value},
			{Name: p.OffsetName(), Class: ir.ArgScalar, Kind: abi.Int},
		}
	}
	return nil
}

// NativeArg returns the expression passed to the native routine.
func (p Param) NativeArg() ir.Expr {
	switch p.kind {
	case KindScalar, KindScalarWrapper:
		return ir.Expr{Kind: ir.AddressOf, Local: p.native(), Elem: p.value}
	case KindString, KindStringWrapper:
		return ir.Expr{Kind: ir.ValueOf, Local: p.native()}
	case KindArray:
		elem := p.value
		if elem == abi.Boolean {
			elem = abi.Int
		}
		return ir.Expr{Kind: ir.OffsetOf, Local: p.native(), Offset: p.OffsetName(), Elem: elem}
	}
	return ir.Expr{Kind: ir.Null}
}

// Locals returns the storage slots the bridge declares.
func (p Param) Locals() []ir.Local {
	switch p.kind {
	case KindScalar:
		return []ir.Local{{Name: p.native(), Type: p.value.NativeType(), Aligned: true, Role: ir.NativeCell, Kind: p.value}}
	case KindScalarWrapper:
		return []ir.Local{{Name: p.native(), Type: p.value.NativeType(), Init: "0", Role: ir.NativeCell, Kind: p.value}}
	case KindString:
		return []ir.Local{{Name: p.native(), Type: "const char *", Init: "NULL", Role: ir.NativeBuffer}}
	case KindStringWrapper:
		return []ir.Local{
			{Name: p.native(), Type: "char *", Init: "NULL", Role: ir.NativeBuffer},
			{Name: p.handle(), Type: "jstring", Init: "NULL", Role: ir.ManagedRef},
		}
	case KindArray:
		if p.value == abi.Boolean {
			return []ir.Local{
				{Name: p.native(), Type: "int *", Init: "NULL", Role: ir.NativeBuffer, Kind: abi.Int},
				{Name: p.handle(), Type: "jboolean *", Init: "NULL", Role: ir.NativeBuffer, Kind: abi.Boolean},
			}
		}
		return []ir.Local{{Name: p.native(), Type: p.value.NativeType() + " *", Init: "NULL", Role: ir.NativeBuffer, Kind: p.value}}
	}
	return nil
}

// Prolog returns the acquisition steps run before the native call.
func (p Param) Prolog() []ir.Action {
	switch p.kind {
	case KindScalar:
		return []ir.Action{{Op: ir.CopyIn, Param: p.name, Kind: p.value, Local: p.native()}}
	case KindScalarWrapper:
		return []ir.Action{{Op: ir.GetField, Param: p.name, Kind: p.value, Local: p.native(), Wrapper: p.value.String() + "W"}}
	case KindString:
		return []ir.Action{{Op: ir.GetStringUTF, Param: p.name, Local: p.native(), Source: p.name, Fallible: true}}
	case KindStringWrapper:
		return []ir.Action{
			{Op: ir.GetObjectField, Param: p.name, Handle: p.handle(), Wrapper: "StringW"},
			{Op: ir.GetStringUTF, Param: p.name, Local: p.native(), Source: p.handle(), Fallible: true},
		}
	case KindArray:
		if p.value == abi.Boolean {
			return []ir.Action{
				{Op: ir.PinArray, Param: p.name, Kind: abi.Boolean, Local: p.handle(), Fallible: true},
				{Op: ir.CopyToNative, Param: p.name, Kind: abi.Int, Local: p.native(), Handle: p.handle(), Fallible: true},
			}
		}
		return []ir.Action{{Op: ir.PinArray, Param: p.name, Kind: p.value, Local: p.native(), Fallible: true}}
	}
	return nil
}

// Epilog returns the release steps run after the native call or after a
// failed acquisition. Steps are listed in execution order.
func (p Param) Epilog() []ir.Action {
	switch p.kind {
	case KindScalarWrapper:
		return []ir.Action{{Op: ir.SetField, Param: p.name, Kind: p.value, Local: p.native(), Wrapper: p.value.String() + "W", OnlyIfOK: true}}
	case KindString:
		return []ir.Action{{Op: ir.ReleaseStringUTF, Param: p.name, Local: p.native(), Source: p.name}}
	case KindStringWrapper:
		return []ir.Action{
			{Op: ir.SetObjectField, Param: p.name, Local: p.native(), Wrapper: "StringW", OnlyIfOK: true},
			{Op: ir.ReleaseStringUTF, Param: p.name, Local: p.native(), Source: p.handle()},
		}
	case KindArray:
		if p.value == abi.Boolean {
			return []ir.Action{
				{Op: ir.FreeNative, Param: p.name, Kind: abi.Int, Local: p.native()},
				{Op: ir.UnpinArray, Param: p.name, Kind: abi.Boolean, Local: p.handle(), Mode: abi.Abort},
			}
		}
		return []ir.Action{{
			Op:          ir.UnpinArray,
			Param:       p.name,
			Kind:        p.value,
			Local:       p.native(),
			Mode:        p.mode,
			AbortOnFail: p.strategy == abi.ZeroCopy && p.mode == abi.Commit,
		}}
	}
	return nil
}

// Lower returns the parameter's contributions in IR form.
func (p Param) Lower() ir.Param {
	return ir.Param{
		Name:       p.name,
		External:   p.External(),
		NativeType: p.NativeType(),
		Arg:        p.NativeArg(),
		Locals:     p.Locals(),
		Prolog:     p.Prolog(),
		Epilog:     p.Epilog(),
		Stage:      p.Stage(),
	}
}

func (p Param) String() string {
	switch p.kind {
	case KindArray:
		return fmt.Sprintf("%s %s[] (%s, %s)", p.name, p.value, p.access, p.strategy)
	case KindScalar, KindScalarWrapper:
		return fmt.Sprintf("%s %s (%s)", p.name, p.value, p.kind)
	default:
		return fmt.Sprintf("%s (%s)", p.name, p.kind)
	}
}
