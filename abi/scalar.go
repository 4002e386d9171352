package abi

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// Scalar is a kind-tagged primitive value. Bits hold the value in the
// same uint64 encoding wazero uses for stack values.
type Scalar struct {
	Kind Kind
	Bits uint64
}

func Bool(v bool) Scalar {
	if v {
		return Scalar{Kind: Boolean, Bits: 1}
	}
	return Scalar{Kind: Boolean}
}

func Int32(v int32) Scalar     { return Scalar{Kind: Int, Bits: api.EncodeI32(v)} }
func Int64(v int64) Scalar     { return Scalar{Kind: Long, Bits: api.EncodeI64(v)} }
func Float32(v float32) Scalar { return Scalar{Kind: Float, Bits: api.EncodeF32(v)} }
func Float64(v float64) Scalar { return Scalar{Kind: Double, Bits: api.EncodeF64(v)} }

// Zero returns the zero value of k.
func Zero(k Kind) Scalar {
	return Scalar{Kind: k}
}

func (s Scalar) Bool() bool       { return uint32(s.Bits) != 0 }
func (s Scalar) Int32() int32     { return api.DecodeI32(s.Bits) }
func (s Scalar) Int64() int64     { return int64(s.Bits) }
func (s Scalar) Float32() float32 { return api.DecodeF32(s.Bits) }
func (s Scalar) Float64() float64 { return api.DecodeF64(s.Bits) }

// Interface returns the value as the matching Go type, or nil for Void.
func (s Scalar) Interface() any {
	switch s.Kind {
	case Boolean:
		return s.Bool()
	case Int:
		return s.Int32()
	case Long:
		return s.Int64()
	case Float:
		return s.Float32()
	case Double:
		return s.Float64()
	default:
		return nil
	}
}

func (s Scalar) String() string {
	if s.Kind == Void {
		return "void"
	}
	return fmt.Sprintf("%s(%v)", s.Kind, s.Interface())
}

// FromGo converts a Go value to a Scalar of kind k.
// Untyped int constants are accepted for every numeric kind.
func FromGo(k Kind, v any) (Scalar, error) {
	switch k {
	case Boolean:
		switch x := v.(type) {
		case bool:
			return Bool(x), nil
		case Scalar:
			if x.Kind == Boolean {
				return x, nil
			}
		}
	case Int:
		switch x := v.(type) {
		case int32:
			return Int32(x), nil
		case int:
			if int(int32(x)) == x {
				return Int32(int32(x)), nil
			}
		case Scalar:
			if x.Kind == Int {
				return x, nil
			}
		}
	case Long:
		switch x := v.(type) {
		case int64:
			return Int64(x), nil
		case int:
			return Int64(int64(x)), nil
		case int32:
			return Int64(int64(x)), nil
		case Scalar:
			if x.Kind == Long {
				return x, nil
			}
		}
	case Float:
		switch x := v.(type) {
		case float32:
			return Float32(x), nil
		case int:
			return Float32(float32(x)), nil
		case Scalar:
			if x.Kind == Float {
				return x, nil
			}
		}
	case Double:
		switch x := v.(type) {
		case float64:
			return Float64(x), nil
		case float32:
			return Float64(float64(x)), nil
		case int:
			return Float64(float64(x)), nil
		case Scalar:
			if x.Kind == Double {
				return x, nil
			}
		}
	}
	return Scalar{}, fmt.Errorf("cannot use %T as %s", v, k)
}
