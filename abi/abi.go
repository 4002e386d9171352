// Package abi defines the primitive vocabulary shared by the descriptor model,
// the bridge IR and its backends: value kinds with their native and JNI type
// names, tagged scalar values, array release modes and pinning strategies.
package abi

import "fmt"

// Kind is a primitive value kind crossing the bridge.
type Kind uint8

const (
	Void Kind = iota
	Boolean
	Int
	Long
	Float
	Double
)

var kindNames = [...]string{
	Void:    "void",
	Boolean: "boolean",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k <= Double
}

// NativeType returns the C type used on the native side.
// Booleans are passed as int, nonzero meaning true.
func (k Kind) NativeType() string {
	switch k {
	case Boolean, Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return "void"
	}
}

// JNIType returns the JNI scalar type name.
func (k Kind) JNIType() string {
	if k == Void {
		return "void"
	}
	return "j" + k.String()
}

// JNIArrayType returns the JNI array reference type name.
func (k Kind) JNIArrayType() string {
	if k == Void {
		return "jobject"
	}
	return "j" + k.String() + "Array"
}

// Signature returns the JVM field descriptor letter.
func (k Kind) Signature() string {
	switch k {
	case Boolean:
		return "Z"
	case Int:
		return "I"
	case Long:
		return "J"
	case Float:
		return "F"
	case Double:
		return "D"
	default:
		return "V"
	}
}

// Size returns the native storage size in bytes.
func (k Kind) Size() int {
	switch k {
	case Boolean, Int, Float:
		return 4
	case Long, Double:
		return 8
	default:
		return 0
	}
}

// ReleaseMode selects what happens to a pinned buffer on release.
type ReleaseMode int32

const (
	// Commit copies native changes back and frees the pin (JNI mode 0).
	Commit ReleaseMode = 0
	// Abort frees the pin and discards native changes (JNI_ABORT).
	Abort ReleaseMode = 2
)

func (m ReleaseMode) String() string {
	switch m {
	case Commit:
		return "0"
	case Abort:
		return "JNI_ABORT"
	default:
		return fmt.Sprintf("mode(%d)", int32(m))
	}
}

// Strategy is the array pinning strategy declared by a descriptor.
type Strategy uint8

const (
	// ZeroCopy pins the backing store directly and releases with an
	// explicit commit-or-abort mode.
	ZeroCopy Strategy = iota
	// Critical pins for a short non-blocking section and always releases
	// with discard. Boolean arrays are copied into an int buffer.
	Critical
)

func (s Strategy) String() string {
	if s == Critical {
		return "critical"
	}
	return "zero-copy"
}
