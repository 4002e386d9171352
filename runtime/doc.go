// Package runtime executes bridge programs in-process.
//
// A Context is created by Load from an ir.Unit: it resolves the wrapper
// field IDs through an Env, opens the native library named by the unit's
// properties and binds every bound routine's symbol. Calls then run the
// same statement list the C backend renders, against any Env:
//
//	unit, _ := bridge.BuildLibrary(tables.BLAS())
//	c, err := runtime.Load(ctx, vm, unit, runtime.WithOpener(opener))
//	ret, err := c.Call(ctx, vm, "ddot", n, x, 0, 1, y, 0, 1)
//
// Every acquisition made by a call is released on every exit path, in
// reverse order. A failed acquisition skips the native call, discards
// array writes, suppresses wrapper write-back and surfaces
// errors.ErrResourceExhausted.
//
// Load and Unload must not run concurrently with Call.
package runtime
