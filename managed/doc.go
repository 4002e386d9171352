// Package managed is an in-memory managed runtime for exercising bridges
// without a JVM.
//
// A VM holds classes, objects, strings and primitive arrays, and offers the
// handful of JNI operations generated bridge code performs: field access,
// string chars, critical array pinning and a native heap. Every operation
// is journaled, acquisitions are tracked in a resource.Table, and faults
// can be injected per operation and target:
//
//	vm := managed.NewVM()
//	x := managed.NewDoubleArray(1, 2, 3)
//	vm.Fail(managed.OpPinArray, x)
//
// Operations other than pinning, unpinning, array length and heap calls
// made while an array is pinned are reported by Violations.
package managed
