package descriptor

import (
	"fmt"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/errors"
)

// Routine describes one native entry point.
type Routine struct {
	Name   string
	Return abi.Kind
	Params []Param
	Stub   bool
}

// Bound declares a void routine bridged to a native symbol.
func Bound(name string, params ...Param) Routine {
	return Routine{Name: name, Return: abi.Void, Params: params}
}

// BoundR declares a value-returning routine bridged to a native symbol.
func BoundR(ret abi.Kind, name string, params ...Param) Routine {
	return Routine{Name: name, Return: ret, Params: params}
}

// Stub declares a void routine that is never bridged.
func Stub(name string, params ...Param) Routine {
	return Routine{Name: name, Return: abi.Void, Params: params, Stub: true}
}

// StubR declares a value-returning routine that is never bridged.
func StubR(ret abi.Kind, name string, params ...Param) Routine {
	return Routine{Name: name, Return: ret, Params: params, Stub: true}
}

// Symbol returns the native symbol name.
func (r Routine) Symbol() string {
	return r.Name + "_"
}

// Validate checks the routine for generation-time errors.
func (r Routine) Validate() error {
	if !isIdent(r.Name) {
		return errors.InvalidDescriptor(r.Name, "", "routine name is not an identifier")
	}
	if !r.Return.Valid() {
		return errors.InvalidDescriptor(r.Name, "", fmt.Sprintf("invalid return kind %s", r.Return))
	}

	names := make(map[string]struct{}, len(r.Params)*2)
	claim := func(param, name string) error {
		if _, dup := names[name]; dup {
			return errors.InvalidDescriptor(r.Name, param, fmt.Sprintf("duplicate argument name %q", name))
		}
		names[name] = struct{}{}
		return nil
	}

	for _, p := range r.Params {
		if err := p.validate(r); err != nil {
			return err
		}
		for _, f := range p.External() {
			if err := claim(p.name, f.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p Param) validate(r Routine) error {
	if !isIdent(p.name) {
		return errors.InvalidDescriptor(r.Name, p.name, "parameter name is not an identifier")
	}
	switch p.kind {
	case KindScalar:
		if p.value == abi.Void || !p.value.Valid() {
			return errors.InvalidDescriptor(r.Name, p.name, "scalar parameter has no value kind")
		}
	case KindScalarWrapper:
		if p.value != abi.Boolean && p.value != abi.Int && p.value != abi.Float && p.value != abi.Double {
			return errors.InvalidDescriptor(r.Name, p.name, fmt.Sprintf("no wrapper class for %s", p.value))
		}
	case KindArray:
		switch p.value {
		case abi.Boolean:
			if p.access != In {
				return errors.InvalidDescriptor(r.Name, p.name, "boolean arrays are read-only")
			}
		case abi.Int, abi.Float, abi.Double:
		default:
			return errors.InvalidDescriptor(r.Name, p.name, fmt.Sprintf("unsupported array element %s", p.value))
		}
	case KindOpaque:
		if !r.Stub {
			return errors.InvalidDescriptor(r.Name, p.name, "opaque parameters are only allowed in stub routines")
		}
	case KindString, KindStringWrapper:
	default:
		return errors.InvalidDescriptor(r.Name, p.name, fmt.Sprintf("unknown descriptor %s", p.kind))
	}
	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
