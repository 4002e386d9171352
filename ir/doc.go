// Package ir is the statement-level representation of a generated bridge.
//
// A Program is the lowered form of one routine: the per-parameter
// contributions (external fragments, locals, native argument, prolog and
// epilog actions) plus a flat body of statements that orders them:
//
//	symbol, probe,
//	check-symbol, flag,
//	declare..., acquire...,   (acquisition order)
//	call, label,
//	release...,               (reverse acquisition order)
//	signal(if failed), return
//
// Stub programs carry only symbol, probe, signal(not implemented) and return.
//
// Backends consume Programs without knowing about descriptors: the cjni
// package prints C, the runtime package interprets them against a managed
// environment and a native library.
package ir
