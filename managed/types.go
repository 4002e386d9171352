package managed

import (
	"fmt"

	"github.com/wippyai/jnibridge/abi"
)

// Class is a managed class with declared instance fields.
type Class struct {
	Name   string
	fields map[string]*Field
}

// Field is a declared instance field. Its pointer identity is the field ID.
type Field struct {
	Class     *Class
	Name      string
	Signature string
}

// Object is an instance of a class.
type Object struct {
	Class  *Class
	values map[*Field]any
}

// Get returns the raw value of a field by name.
func (o *Object) Get(name string) any {
	f, ok := o.Class.fields[name]
	if !ok {
		return nil
	}
	return o.values[f]
}

// Set stores a raw field value by name.
func (o *Object) Set(name string, v any) {
	if f, ok := o.Class.fields[name]; ok {
		o.values[f] = v
	}
}

// Scalar returns a numeric field value.
func (o *Object) Scalar(name string) abi.Scalar {
	s, _ := o.Get(name).(abi.Scalar)
	return s
}

// String is an immutable managed string.
type String struct {
	Value string
}

func (s *String) String() string {
	if s == nil {
		return "<null>"
	}
	return s.Value
}

// Array is a managed primitive array.
type Array struct {
	Elem abi.Kind
	data any
}

// Len returns the number of elements.
func (a *Array) Len() int {
	switch d := a.data.(type) {
	case []bool:
		return len(d)
	case []int32:
		return len(d)
	case []int64:
		return len(d)
	case []float32:
		return len(d)
	case []float64:
		return len(d)
	}
	return 0
}

func (a *Array) Bools() []bool {
	d, _ := a.data.([]bool)
	return d
}

func (a *Array) Ints() []int32 {
	d, _ := a.data.([]int32)
	return d
}

func (a *Array) Longs() []int64 {
	d, _ := a.data.([]int64)
	return d
}

func (a *Array) Floats() []float32 {
	d, _ := a.data.([]float32)
	return d
}

func (a *Array) Doubles() []float64 {
	d, _ := a.data.([]float64)
	return d
}

func (a *Array) String() string {
	return fmt.Sprintf("%s%v", a.Elem, a.data)
}
