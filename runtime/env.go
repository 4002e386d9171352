package runtime

import (
	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/native"
)

// Env is the managed environment a bridge runs against. References are
// opaque values owned by the environment; nil is the null reference.
//
// Acquisitions return nil on failure. An Env that also implements
// native.Heap serves boolean array copies; otherwise the Go heap is used.
type Env interface {
	FindClass(name string) any
	GetFieldID(class any, name, sig string) any
	IsInstanceOf(ref, class any) bool
	IsString(ref any) bool
	IsArrayOf(ref any, elem abi.Kind) bool

	GetField(obj, id any, k abi.Kind) abi.Scalar
	SetField(obj, id any, v abi.Scalar)
	GetObjectField(obj, id any) any
	SetObjectField(obj, id, v any)

	GetStringUTFChars(s any) *native.Block
	ReleaseStringUTFChars(s any, chars *native.Block)
	NewStringUTF(p native.Ptr) any

	GetArrayLength(arr any) int
	GetPrimitiveArrayCritical(arr any) *native.Block
	ReleasePrimitiveArrayCritical(arr any, buf *native.Block, mode abi.ReleaseMode)
}

func heapOf(env Env) native.Heap {
	if h, ok := env.(native.Heap); ok {
		return h
	}
	return native.GoHeap{}
}
