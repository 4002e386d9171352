package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/jnibridge/descriptor"
	"github.com/wippyai/jnibridge/ir"
)

// BuildLibrary lowers every routine of a library into a unit. The library
// is validated once as a whole; a failure names the offending routine.
func BuildLibrary(lib descriptor.Library) (*ir.Unit, error) {
	if err := lib.Validate(); err != nil {
		return nil, err
	}

	u := &ir.Unit{
		Package:    lib.Package,
		Class:      lib.Class(),
		Header:     lib.Header(),
		DefaultLib: lib.DefaultLib,
		LibPathKey: lib.LibPathKey(),
		LibNameKey: lib.LibNameKey(),
		Fields:     append([]ir.WrapperField(nil), ir.WrapperFields...),
		Programs:   make([]*ir.Program, 0, len(lib.Routines)),
	}

	stubs := 0
	for _, r := range lib.Routines {
		p := lower(r)
		if p.Stub {
			stubs++
		}
		u.Programs = append(u.Programs, p)
	}

	Logger().Info("built library",
		zap.String("package", lib.Package),
		zap.Int("routines", len(u.Programs)),
		zap.Int("stubs", stubs))
	return u, nil
}
