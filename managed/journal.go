package managed

import (
	"fmt"

	"github.com/wippyai/jnibridge/abi"
)

// Op is a recorded environment operation.
type Op uint8

const (
	OpFindClass Op = iota
	OpGetFieldID
	OpGetField
	OpSetField
	OpGetObjectField
	OpSetObjectField
	OpGetStringUTFChars
	OpReleaseStringUTFChars
	OpNewStringUTF
	OpGetArrayLength
	OpPinArray
	OpUnpinArray
	OpMalloc
	OpFree
)

var opNames = [...]string{
	OpFindClass:             "FindClass",
	OpGetFieldID:            "GetFieldID",
	OpGetField:              "GetField",
	OpSetField:              "SetField",
	OpGetObjectField:        "GetObjectField",
	OpSetObjectField:        "SetObjectField",
	OpGetStringUTFChars:     "GetStringUTFChars",
	OpReleaseStringUTFChars: "ReleaseStringUTFChars",
	OpNewStringUTF:          "NewStringUTF",
	OpGetArrayLength:        "GetArrayLength",
	OpPinArray:              "GetPrimitiveArrayCritical",
	OpUnpinArray:            "ReleasePrimitiveArrayCritical",
	OpMalloc:                "malloc",
	OpFree:                  "free",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", o)
}

// Acquires reports whether the op takes a resource that must be released.
func (o Op) Acquires() bool {
	return o == OpPinArray || o == OpGetStringUTFChars || o == OpMalloc
}

// Releases reports whether the op gives a resource back.
func (o Op) Releases() bool {
	return o == OpUnpinArray || o == OpReleaseStringUTFChars || o == OpFree
}

func (o Op) allowedInCritical() bool {
	switch o {
	case OpPinArray, OpUnpinArray, OpGetArrayLength, OpMalloc, OpFree:
		return true
	}
	return false
}

// Event is one journaled operation.
type Event struct {
	Op     Op
	Ref    any
	Mode   abi.ReleaseMode
	Failed bool
}

func (e Event) String() string {
	s := e.Op.String()
	if e.Op == OpUnpinArray {
		s += "(" + e.Mode.String() + ")"
	}
	if e.Failed {
		s += " failed"
	}
	return s
}
