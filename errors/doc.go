// Package errors provides structured error types for the bridge generator and
// its runtime.
//
// Errors are categorized by Phase (generate, load, call, unload) and Kind
// (unsupported, not_implemented, resource_exhausted, initialization, ...).
// The Error type records the routine and parameter involved plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCall, errors.KindResourceExhausted).
//		Routine("dgemm").
//		Param("a").
//		Detail("pin failed").
//		Build()
//
// Or the convenience constructors:
//
//	err := errors.Unsupported("dgemm")
//	err := errors.ResourceExhausted("dgemm", "a", cause)
//
// Sentinels such as ErrUnsupported match any error of the same Kind through
// errors.Is, regardless of phase.
package errors
