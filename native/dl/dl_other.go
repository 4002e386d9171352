//go:build !(darwin || freebsd || linux)

package dl

import (
	"context"
	"fmt"
	"runtime"

	"github.com/wippyai/jnibridge/native"
)

// Open implements native.Opener. Shared objects are not supported on this
// platform.
func (o Opener) Open(_ context.Context, name string) (native.Library, error) {
	return nil, fmt.Errorf("dlopen %s: not supported on %s", name, runtime.GOOS)
}
