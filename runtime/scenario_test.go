package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/wippyai/jnibridge/abi"
	d "github.com/wippyai/jnibridge/descriptor"
	berrors "github.com/wippyai/jnibridge/errors"
	"github.com/wippyai/jnibridge/managed"
	"github.com/wippyai/jnibridge/native"
)

// scale doubles n elements of x and stores 42 in info.
func scale(calls *int) native.Func {
	return func(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
		*calls++
		n := int(args[0].Int32(0))
		for i := 0; i < n; i++ {
			args[1].SetFloat64(i, 2*args[1].Float64(i))
		}
		args[2].SetInt32(0, 42)
		return abi.Scalar{}, nil
	}
}

var scaleRoutine = d.Bound("dscale",
	d.Int("n"),
	d.DoubleArray("x", d.InOut),
	d.IntW("info"))

func TestScenario_Success(t *testing.T) {
	vm := managed.NewVM()
	calls := 0
	c := load(t, vm, native.NewRegistry().Register("dscale_", scale(&calls)), scaleRoutine)

	x := managed.NewDoubleArray(1, 2, 3)
	info := vm.NewWrapper(abi.Int32(0))
	if _, err := c.Call(context.Background(), vm, "dscale", 3, x, 0, info); err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("native called %d times", calls)
	}
	want := []float64{2, 4, 6}
	for i, v := range x.Doubles() {
		if v != want[i] {
			t.Errorf("x[%d] = %v, want %v", i, v, want[i])
		}
	}
	if got := info.Scalar("val").Int32(); got != 42 {
		t.Errorf("info = %d, want 42", got)
	}
	if vm.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d", vm.Outstanding())
	}
}

func TestScenario_PinFailure(t *testing.T) {
	vm := managed.NewVM()
	calls := 0
	c := load(t, vm, native.NewRegistry().Register("dscale_", scale(&calls)), scaleRoutine)

	x := managed.NewDoubleArray(1, 2, 3)
	info := vm.NewWrapper(abi.Int32(7))
	vm.Fail(managed.OpPinArray, x)

	_, err := c.Call(context.Background(), vm, "dscale", 3, x, 0, info)
	if !errors.Is(err, berrors.ErrResourceExhausted) {
		t.Fatalf("err = %v, want resource exhausted", err)
	}
	if calls != 0 {
		t.Error("native call occurred")
	}
	if got := info.Scalar("val").Int32(); got != 7 {
		t.Errorf("info = %d, want unchanged 7", got)
	}
	if x.Doubles()[0] != 1 {
		t.Errorf("x modified: %v", x)
	}
	if vm.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d", vm.Outstanding())
	}
}

func TestScenario_ConcurrentCalls(t *testing.T) {
	vm := managed.NewVM()
	var calls atomic.Int64
	reg := native.NewRegistry().Register("dscale_", func(ctx context.Context, args []native.Ptr) (abi.Scalar, error) {
		calls.Add(1)
		n := 0
		return scale(&n)(ctx, args)
	})
	c := load(t, vm, reg, scaleRoutine)

	const workers, rounds = 16, 50
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			env := vm.Attach()
			for r := 0; r < rounds; r++ {
				x := managed.NewDoubleArray(float64(w), float64(r))
				info := vm.NewWrapper(abi.Int32(0))
				if _, err := c.Call(context.Background(), env, "dscale", 2, x, 0, info); err != nil {
					errs <- err
					return
				}
				if got := x.Doubles(); got[0] != 2*float64(w) || got[1] != 2*float64(r) {
					errs <- fmt.Errorf("worker %d round %d: x = %v", w, r, got)
					return
				}
				if info.Scalar("val").Int32() != 42 {
					errs <- fmt.Errorf("worker %d round %d: info not written", w, r)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	if got := calls.Load(); got != workers*rounds {
		t.Errorf("native called %d times, want %d", got, workers*rounds)
	}
	if vm.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d", vm.Outstanding())
	}
	if v := vm.Violations(); len(v) != 0 {
		t.Errorf("critical violations across threads: %d, first %v", len(v), v[0])
	}
}
