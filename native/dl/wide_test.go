//go:build cgo && (darwin || freebsd || linux)

package dl

import (
	"context"
	"testing"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/native"
	"github.com/wippyai/jnibridge/native/dl/internal/wide"
)

func TestFFI_TwentyTwoArguments(t *testing.T) {
	requireFFI(t)

	sym, err := bindFFI(wide.Fill(), native.Signature{Symbol: "fill22", Return: abi.Int, Arity: wide.Arity})
	if err != nil {
		t.Fatalf("bindFFI failed: %v", err)
	}

	blocks := make([]*native.Block, wide.Arity)
	args := make([]native.Ptr, wide.Arity)
	for i := range args {
		blocks[i] = native.Alloc(4)
		args[i] = blocks[i].Ptr()
	}
	ret, err := sym.Call(context.Background(), args)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if ret.Int32() != wide.Arity {
		t.Errorf("return = %d, want %d", ret.Int32(), wide.Arity)
	}
	for i, b := range blocks {
		if got := b.Ptr().Int32(0); got != int32(i+1) {
			t.Errorf("argument %d = %d, want %d", i, got, i+1)
		}
	}
}
