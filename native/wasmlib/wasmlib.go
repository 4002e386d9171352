// Package wasmlib runs native routines compiled to WebAssembly under
// wazero.
//
// A routine is an exported function taking one i32 guest address per
// parameter. Before a call every argument block is copied into guest
// memory; afterwards it is copied back so the routine's writes reach the
// caller. Guest memory comes from the module's exported malloc and free
// when present, otherwise from a scratch region past the module's
// initial memory.
package wasmlib

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/jnibridge/native"
)

// Config holds runtime settings for opened modules.
type Config struct {
	// MemoryLimitPages caps guest memory in 64KB pages. 0 means the wazero
	// default.
	MemoryLimitPages uint32
}

// Opener loads WebAssembly modules as native libraries.
type Opener struct {
	// FS resolves library names. Nil reads from the host file system.
	FS     fs.FS
	Config Config
}

// Open implements native.Opener.
func (o Opener) Open(ctx context.Context, name string) (native.Library, error) {
	code, err := o.read(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return Load(ctx, name, code, o.Config)
}

func (o Opener) read(name string) ([]byte, error) {
	if o.FS == nil {
		return os.ReadFile(name)
	}
	return fs.ReadFile(o.FS, strings.TrimPrefix(name, "/"))
}

// Load compiles and instantiates a module from its binary.
func Load(ctx context.Context, name string, code []byte, cfg Config) (*Library, error) {
	rc := wazero.NewRuntimeConfig()
	if cfg.MemoryLimitPages > 0 {
		rc = rc.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, rc)

	compiled, err := rt.CompileModule(ctx, code)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	for _, imp := range compiled.ImportedFunctions() {
		if mod, _, _ := imp.Import(); mod == wasi_snapshot_preview1.ModuleName {
			wasi_snapshot_preview1.MustInstantiate(ctx, rt)
			break
		}
	}

	mod, err := rt.InstantiateModule(ctx, compiled,
		wazero.NewModuleConfig().WithName(name).WithStartFunctions("_initialize"))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("instantiate %s: %w", name, err)
	}

	lib := &Library{name: name, runtime: rt, module: mod}
	if err := lib.init(); err != nil {
		_ = rt.Close(ctx)
		return nil, err
	}
	Logger().Debug("module loaded",
		zap.String("library", name),
		zap.Bool("guest_malloc", lib.malloc != nil))
	return lib, nil
}
