// Package dl opens shared objects as native libraries through dlopen,
// without cgo.
//
// Every routine parameter is passed as a pointer, so a symbol is bound to
// a Go function of Arity unsafe.Pointer arguments returning the routine's
// scalar kind. Symbols with more than MaxArity parameters go through
// ffi_call instead, with libffi itself opened by dlopen on first use. When
// libffi cannot be found such symbols are reported as missing.
package dl

import (
	"sync"

	"go.uber.org/zap"
)

// MaxArity is the largest parameter count a direct foreign call can carry.
const MaxArity = 15

// Opener opens shared objects with dlopen.
type Opener struct {
	// Mode is the dlopen mode. Zero means RTLD_LAZY | RTLD_GLOBAL.
	Mode int
}

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the dl package's logger instance.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the dl package's logger.
func SetLogger(l *zap.Logger) {
	logger = l
}
