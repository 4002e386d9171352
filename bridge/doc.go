// Package bridge is the emission engine: it turns routine descriptors into
// ir programs and whole libraries into ir units.
//
// # Ordering
//
// For a bound routine the body is
//
//	check-symbol      signal unsupported and return when the symbol is unbound
//	flag              failure flag, initially false
//	declare...        locals, acquisition order
//	acquire...        prologs, acquisition order; a failed step jumps to label
//	call
//	label
//	release...        epilogs, reverse acquisition order
//	signal            resource exhausted, only if failed
//	return
//
// Acquisition order is a stable sort of the parameters by stage, so every
// scalar, wrapper and string is acquired before any array is pinned, and
// every array is unpinned before any wrapper is written back.
//
// # Libraries
//
// BuildLibrary adds the library scaffolding: wrapper field table, property
// keys, default library name and the list of symbols to bind at load.
package bridge
