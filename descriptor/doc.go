// Package descriptor declares routine signatures for bridge generation.
//
// A Param is a closed sum over marshaling strategies (scalar, scalar
// wrapper, string, string wrapper, array, opaque). Each variant answers the
// same queries: the external arguments it adds to the bridge signature, the
// native argument expression, the locals it declares, and the prolog and
// epilog steps around the native call.
//
//	lib := descriptor.Library{
//		Package:    "blas",
//		DefaultLib: "libblas.so.3",
//		Routines: []descriptor.Routine{
//			descriptor.BoundR(abi.Double, "dasum",
//				descriptor.Int("n"),
//				descriptor.DoubleArray("x", descriptor.In),
//				descriptor.Int("incx")),
//		},
//	}
//
// The pinning strategy of an array is part of its declared contract: In
// arrays use a critical pin released with discard, InOut and Out arrays a
// zero-copy pin released with commit unless the invocation failed.
package descriptor
