// Package native abstracts the native side of a bridge: memory blocks that
// native routines read and write through pointers, and libraries that
// resolve routine symbols.
//
// Three Library implementations exist: Registry (Go functions, for tests
// and embedding), native/dl (shared objects through dlopen) and
// native/wasmlib (WebAssembly modules run by wazero).
package native
