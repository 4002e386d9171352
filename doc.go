// Package jnibridge generates the JNI glue between JVM numerical code and
// the native netlib libraries (BLAS, LAPACK, ARPACK).
//
// Every native routine is described once by a routine descriptor: its
// name, return kind and an ordered list of parameter descriptors. From a
// descriptor the bridge builder derives a program of acquire, call and
// release steps that borrows managed values into native memory, calls the
// routine and gives everything back in reverse order, committing writes
// only when the whole acquisition succeeded.
//
// # Architecture Overview
//
//	jnibridge/
//	├── abi/           Scalar kinds, release modes and pinning strategies
//	├── descriptor/    Parameter and routine descriptors, library tables
//	├── ir/            Bridge programs and translation units
//	├── bridge/        Emission engine and library emitter
//	├── cjni/          C rendering of units against the JNI API
//	├── tables/        Routine tables for blas, lapack and arpack
//	├── runtime/       Go interpreter for bridge programs
//	├── managed/       In-process managed heap implementing the JNI calls
//	├── native/        Native memory, libraries and symbol registries
//	│   ├── dl/        Shared objects through dlopen
//	│   └── wasmlib/   WebAssembly modules under wazero
//	├── resource/      Handle table tracking outstanding acquisitions
//	├── errors/        Structured error types
//	└── cmd/
//	    ├── bridgegen/ Writes the C bridge of a package
//	    └── bridgeview/ Terminal browser for routine tables
//
// # Quick Start
//
// Generate the C bridge for BLAS:
//
//	lib, _ := tables.Lookup("blas")
//	unit, err := bridge.BuildLibrary(lib)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cjni.Render(os.Stdout, unit)
//
// Or run the same unit in process against a shared library:
//
//	vm := managed.NewVM()
//	c, err := runtime.Load(ctx, vm, unit, runtime.WithOpener(dl.Opener{}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Unload(ctx)
//
//	x := managed.NewDoubleArray(1, -2, 3)
//	sum, err := c.Call(ctx, vm, "dasum", 3, x, 0, 1)
//	fmt.Println(sum.Float64()) // 6
//
// # Library Resolution
//
// The native library is chosen from the properties
// dev.ludovic.netlib.<package>.nativeLibPath, then
// dev.ludovic.netlib.<package>.nativeLib, then the package default such
// as libblas.so.3. Symbols missing from the library do not fail loading;
// calling such a routine reports it as unsupported.
//
// # Thread Safety
//
// A runtime.Context is safe for concurrent calls. Load and Unload take it
// exclusively. Each calling goroutine passes its own environment, such as
// a managed.Thread from VM.Attach, since critical regions belong to one
// thread.
package jnibridge
