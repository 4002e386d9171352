package runtime

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/wippyai/jnibridge/abi"
	d "github.com/wippyai/jnibridge/descriptor"
	berrors "github.com/wippyai/jnibridge/errors"
	"github.com/wippyai/jnibridge/managed"
	"github.com/wippyai/jnibridge/native"
)

var bg = context.Background()

func TestCall_EveryVariant(t *testing.T) {
	tests := []struct {
		name  string
		param d.Param
		args  func(vm *managed.VM) []any
		check func(p native.Ptr) error
	}{
		{"boolean", d.Boolean("b"),
			func(*managed.VM) []any { return []any{true} },
			func(p native.Ptr) error { return expect(p.Int32(0), int32(1)) }},
		{"int", d.Int("n"),
			func(*managed.VM) []any { return []any{7} },
			func(p native.Ptr) error { return expect(p.Int32(0), int32(7)) }},
		{"long", d.Long("l"),
			func(*managed.VM) []any { return []any{int64(1 << 40)} },
			func(p native.Ptr) error { return expect(p.Int64(0), int64(1<<40)) }},
		{"float", d.Float("f"),
			func(*managed.VM) []any { return []any{float32(0.5)} },
			func(p native.Ptr) error { return expect(p.Float32(0), float32(0.5)) }},
		{"double", d.Double("alpha"),
			func(*managed.VM) []any { return []any{2.25} },
			func(p native.Ptr) error { return expect(p.Float64(0), 2.25) }},
		{"booleanW", d.BooleanW("flag"),
			func(vm *managed.VM) []any { return []any{vm.NewWrapper(abi.Bool(true))} },
			func(p native.Ptr) error { return expect(p.Int32(0), int32(1)) }},
		{"intW", d.IntW("info"),
			func(vm *managed.VM) []any { return []any{vm.NewWrapper(abi.Int32(-3))} },
			func(p native.Ptr) error { return expect(p.Int32(0), int32(-3)) }},
		{"floatW", d.FloatW("scale"),
			func(vm *managed.VM) []any { return []any{vm.NewWrapper(abi.Float32(4))} },
			func(p native.Ptr) error { return expect(p.Float32(0), float32(4)) }},
		{"doubleW", d.DoubleW("rcond"),
			func(vm *managed.VM) []any { return []any{vm.NewWrapper(abi.Float64(1e-9))} },
			func(p native.Ptr) error { return expect(p.Float64(0), 1e-9) }},
		{"string", d.String("trans"),
			func(vm *managed.VM) []any { return []any{vm.NewString("N")} },
			func(p native.Ptr) error { return expect(p.CString(), "N") }},
		{"stringW", d.StringW("equed"),
			func(vm *managed.VM) []any { return []any{vm.NewStringW(vm.NewString("B"))} },
			func(p native.Ptr) error { return expect(p.CString(), "B") }},
		{"int[] in", d.IntArray("ipiv", d.In),
			func(*managed.VM) []any { return []any{managed.NewIntArray(1, 2, 3), 1} },
			func(p native.Ptr) error { return expect(p.Int32(0), int32(2)) }},
		{"float[] out", d.FloatArray("w", d.Out),
			func(*managed.VM) []any { return []any{managed.NewFloatArray(1, 2, 3), 2} },
			func(p native.Ptr) error { return expect(p.Float32(0), float32(3)) }},
		{"double[] inout", d.DoubleArray("a", d.InOut),
			func(*managed.VM) []any { return []any{managed.NewDoubleArray(5, 6), 0} },
			func(p native.Ptr) error { return expect(p.Float64(1), 6.0) }},
		{"boolean[]", d.BooleanArray("select"),
			func(*managed.VM) []any { return []any{managed.NewBooleanArray(false, true, false), 1} },
			func(p native.Ptr) error {
				if err := expect(p.Int32(0), int32(1)); err != nil {
					return err
				}
				return expect(p.Int32(1), int32(0))
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/success", func(t *testing.T) {
			vm := managed.NewVM()
			var cnt counter
			vm.Subscribe(&cnt)

			var checkErr error
			calls := 0
			reg := native.NewRegistry().Register("probe_", func(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
				calls++
				checkErr = tt.check(args[0])
				return abi.Scalar{}, nil
			})
			c := load(t, vm, reg, d.Bound("probe", tt.param, d.DoubleArray("tail", d.In)))

			args := append(tt.args(vm), managed.NewDoubleArray(0), 0)
			if _, err := c.Call(bg, vm, "probe", args...); err != nil {
				t.Fatalf("Call failed: %v", err)
			}
			if calls != 1 {
				t.Fatalf("native called %d times", calls)
			}
			if checkErr != nil {
				t.Error(checkErr)
			}
			if cnt.acquired != cnt.released || vm.Outstanding() != 0 {
				t.Errorf("acquired %d, released %d, outstanding %d", cnt.acquired, cnt.released, vm.Outstanding())
			}
			if v := vm.Violations(); len(v) != 0 {
				t.Errorf("calls inside critical region: %v", v)
			}
		})

		t.Run(tt.name+"/failure", func(t *testing.T) {
			vm := managed.NewVM()
			var cnt counter
			vm.Subscribe(&cnt)

			calls := 0
			reg := native.NewRegistry().Register("probe_", func(context.Context, []native.Ptr) (abi.Scalar, error) {
				calls++
				return abi.Scalar{}, nil
			})
			c := load(t, vm, reg, d.Bound("probe", tt.param, d.DoubleArray("tail", d.In)))

			tail := managed.NewDoubleArray(0)
			vm.Fail(managed.OpPinArray, tail)
			args := append(tt.args(vm), tail, 0)
			_, err := c.Call(bg, vm, "probe", args...)
			if !errors.Is(err, berrors.ErrResourceExhausted) {
				t.Fatalf("err = %v, want resource exhausted", err)
			}
			if calls != 0 {
				t.Error("native called after failed acquisition")
			}
			if cnt.acquired != cnt.released || vm.Outstanding() != 0 {
				t.Errorf("acquired %d, released %d, outstanding %d", cnt.acquired, cnt.released, vm.Outstanding())
			}
		})
	}
}

func expect[T comparable](got, want T) error {
	if got != want {
		return fmt.Errorf("native received %v, want %v", got, want)
	}
	return nil
}

func TestCall_ZeroCopyDiscardsOnFailure(t *testing.T) {
	vm := managed.NewVM()
	reg := native.NewRegistry().Register("dswap_", func(context.Context, []native.Ptr) (abi.Scalar, error) {
		return abi.Scalar{}, nil
	})
	c := load(t, vm, reg, d.Bound("dswap",
		d.Int("n"),
		d.DoubleArray("x", d.InOut),
		d.Int("incx"),
		d.DoubleArray("y", d.InOut),
		d.Int("incy")))

	x := managed.NewDoubleArray(1, 2)
	y := managed.NewDoubleArray(3, 4)
	vm.Fail(managed.OpPinArray, y)

	_, err := c.Call(bg, vm, "dswap", 2, x, 0, 1, y, 0, 1)
	if !errors.Is(err, berrors.ErrResourceExhausted) {
		t.Fatalf("err = %v", err)
	}

	var unpins []managed.Event
	for _, e := range vm.Journal() {
		if e.Op == managed.OpUnpinArray {
			unpins = append(unpins, e)
		}
	}
	if len(unpins) != 1 || unpins[0].Ref != any(x) || unpins[0].Mode != abi.Abort {
		t.Errorf("unpins = %v, want x released with JNI_ABORT", unpins)
	}
}

func TestCall_NativeWritesRespectMode(t *testing.T) {
	vm := managed.NewVM()
	reg := native.NewRegistry().Register("dcopy_", func(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
		args[1].SetFloat64(0, 99)
		args[2].SetFloat64(0, 99)
		return abi.Scalar{}, nil
	})
	c := load(t, vm, reg, d.Bound("dcopy",
		d.Int("n"),
		d.DoubleArray("x", d.In),
		d.DoubleArray("y", d.Out)))

	x := managed.NewDoubleArray(1)
	y := managed.NewDoubleArray(2)
	if _, err := c.Call(bg, vm, "dcopy", 1, x, 0, y, 0); err != nil {
		t.Fatal(err)
	}
	if x.Doubles()[0] != 1 {
		t.Errorf("read-only array modified: %v", x)
	}
	if y.Doubles()[0] != 99 {
		t.Errorf("output array not committed: %v", y)
	}
}

func TestCall_WrapperUnchangedOnFailure(t *testing.T) {
	vm := managed.NewVM()
	reg := native.NewRegistry().Register("dlacon_", func(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
		args[0].SetInt32(0, 9)
		args[1].Bytes(1)[0] = 'Z'
		args[2].SetFloat64(0, 9)
		return abi.Scalar{}, nil
	})
	c := load(t, vm, reg, d.Bound("dlacon",
		d.IntW("kase"),
		d.StringW("equed"),
		d.DoubleW("est"),
		d.DoubleArray("v", d.InOut)))

	run := func(v *managed.Array) (*managed.Object, *managed.Object, *managed.Object, error) {
		kase := vm.NewWrapper(abi.Int32(1))
		equed := vm.NewStringW(vm.NewString("N"))
		est := vm.NewWrapper(abi.Float64(0.5))
		_, err := c.Call(bg, vm, "dlacon", kase, equed, est, v, 0)
		return kase, equed, est, err
	}

	t.Run("acquisition failure", func(t *testing.T) {
		v := managed.NewDoubleArray(1)
		vm.Fail(managed.OpPinArray, v)
		defer vm.ClearFaults()

		kase, equed, est, err := run(v)
		if !errors.Is(err, berrors.ErrResourceExhausted) {
			t.Fatalf("err = %v", err)
		}
		if kase.Scalar("val").Int32() != 1 || est.Scalar("val").Float64() != 0.5 {
			t.Errorf("scalar wrappers written back: %v %v", kase.Scalar("val"), est.Scalar("val"))
		}
		if s := equed.Get("val").(*managed.String); s.Value != "N" {
			t.Errorf("string wrapper written back: %q", s.Value)
		}
	})

	t.Run("native fault", func(t *testing.T) {
		reg.Register("dlacon_", func(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
			args[0].SetInt32(0, 9)
			return abi.Scalar{}, fmt.Errorf("segfault")
		})
		kase, _, _, err := run(managed.NewDoubleArray(1))
		if !errors.Is(err, berrors.ErrNativeFault) {
			t.Fatalf("err = %v", err)
		}
		if kase.Scalar("val").Int32() != 1 {
			t.Error("wrapper written back after native fault")
		}
		if vm.Outstanding() != 0 {
			t.Errorf("Outstanding() = %d", vm.Outstanding())
		}
	})
}

func TestCall_StringWrapperWriteBack(t *testing.T) {
	vm := managed.NewVM()
	reg := native.NewRegistry().Register("dgesvx_", func(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
		args[0].Bytes(1)[0] = 'B'
		return abi.Scalar{}, nil
	})
	c := load(t, vm, reg, d.Bound("dgesvx", d.StringW("equed")))

	orig := vm.NewString("N")
	equed := vm.NewStringW(orig)
	if _, err := c.Call(bg, vm, "dgesvx", equed); err != nil {
		t.Fatal(err)
	}
	got := equed.Get("val").(*managed.String)
	if got.Value != "B" {
		t.Errorf("StringW.val = %q, want B", got.Value)
	}
	if got == orig || orig.Value != "N" {
		t.Error("write-back must allocate a new string")
	}

	t.Run("null value", func(t *testing.T) {
		_, err := c.Call(bg, vm, "dgesvx", vm.NewStringW(nil))
		if !errors.Is(err, berrors.ErrResourceExhausted) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestCall_ReverseRelease(t *testing.T) {
	vm := managed.NewVM()
	reg := native.NewRegistry().Register("dgels_", func(context.Context, []native.Ptr) (abi.Scalar, error) {
		return abi.Scalar{}, nil
	})
	c := load(t, vm, reg, d.Bound("dgels",
		d.String("trans"),
		d.DoubleArray("a", d.InOut),
		d.Int("lda"),
		d.DoubleArray("b", d.In),
		d.IntW("info")))

	a := managed.NewDoubleArray(1)
	b := managed.NewDoubleArray(2)
	vm.ResetJournal()
	if _, err := c.Call(bg, vm, "dgels", vm.NewString("N"), a, 0, 1, b, 0, vm.NewWrapper(abi.Int32(0))); err != nil {
		t.Fatal(err)
	}

	var acquired, released []string
	for _, e := range vm.Journal() {
		switch e.Op {
		case managed.OpGetStringUTFChars, managed.OpPinArray, managed.OpGetField:
			acquired = append(acquired, e.Op.String()+describe(e.Ref, a, b))
		case managed.OpReleaseStringUTFChars, managed.OpUnpinArray, managed.OpSetField:
			released = append(released, e.Op.String()+describe(e.Ref, a, b))
		}
	}

	if len(acquired) != 4 || len(released) != 4 {
		t.Fatalf("acquired %v, released %v", acquired, released)
	}
	pairs := map[string]string{
		"GetStringUTFChars":           "ReleaseStringUTFChars",
		"GetPrimitiveArrayCritical:a": "ReleasePrimitiveArrayCritical:a",
		"GetPrimitiveArrayCritical:b": "ReleasePrimitiveArrayCritical:b",
		"GetField":                    "SetField",
	}
	for i := range acquired {
		want := pairs[acquired[i]]
		if got := released[len(released)-1-i]; got != want {
			t.Errorf("release %d = %s, want %s (acquired %v, released %v)", len(released)-1-i, got, want, acquired, released)
		}
	}
	if v := vm.Violations(); len(v) != 0 {
		t.Errorf("calls inside critical region: %v", v)
	}
}

func describe(ref any, a, b *managed.Array) string {
	switch ref {
	case any(a):
		return ":a"
	case any(b):
		return ":b"
	}
	return ""
}

func TestCall_Stub(t *testing.T) {
	vm := managed.NewVM()
	called := false
	reg := native.NewRegistry().Register("dgees_", func(context.Context, []native.Ptr) (abi.Scalar, error) {
		called = true
		return abi.Scalar{}, nil
	})
	c := load(t, vm, reg, d.Stub("dgees", d.String("jobvs"), d.Object("select"), d.IntW("sdim")))

	if c.Has("dgees") {
		t.Error("stub reported available")
	}
	vm.ResetJournal()
	_, err := c.Call(bg, vm, "dgees", vm.NewString("V"), struct{}{}, vm.NewWrapper(abi.Int32(0)))
	if !errors.Is(err, berrors.ErrNotImplemented) {
		t.Fatalf("err = %v, want not implemented", err)
	}
	if called {
		t.Error("stub reached native symbol")
	}
	if j := vm.Journal(); len(j) != 0 {
		t.Errorf("stub touched the environment: %v", j)
	}
}

func TestCall_MissingSymbol(t *testing.T) {
	vm := managed.NewVM()
	var cnt counter
	vm.Subscribe(&cnt)
	c := load(t, vm, native.NewRegistry(), d.Bound("dnrm2",
		d.Int("n"),
		d.DoubleArray("x", d.In),
		d.IntW("info")))

	if c.Has("dnrm2") {
		t.Error("missing symbol reported available")
	}
	vm.ResetJournal()
	_, err := c.Call(bg, vm, "dnrm2", 1, managed.NewDoubleArray(1), 0, vm.NewWrapper(abi.Int32(0)))
	if !errors.Is(err, berrors.ErrUnsupported) {
		t.Fatalf("err = %v, want unsupported", err)
	}
	if j := vm.Journal(); len(j) != 0 || cnt.acquired != 0 || cnt.released != 0 {
		t.Errorf("side effects: journal %v, acquired %d, released %d", j, cnt.acquired, cnt.released)
	}
}

func TestCall_Arguments(t *testing.T) {
	vm := managed.NewVM()
	reg := native.NewRegistry().Register("idamax_", func(context.Context, []native.Ptr) (abi.Scalar, error) {
		return abi.Int32(1), nil
	})
	c := load(t, vm, reg, d.BoundR(abi.Int, "idamax",
		d.Int("n"),
		d.DoubleArray("x", d.In),
		d.Int("incx"),
		d.IntW("info")))

	x := managed.NewDoubleArray(1, 2)
	info := vm.NewWrapper(abi.Int32(0))
	tests := []struct {
		name string
		args []any
		want error
	}{
		{"ok", []any{2, x, 0, 1, info}, nil},
		{"too few", []any{2, x, 0, 1}, berrors.ErrInvalidArgument},
		{"scalar type", []any{"2", x, 0, 1, info}, berrors.ErrInvalidArgument},
		{"array elem", []any{2, managed.NewIntArray(1), 0, 1, info}, berrors.ErrInvalidArgument},
		{"wrong wrapper", []any{2, x, 0, 1, vm.NewWrapper(abi.Float64(0))}, berrors.ErrInvalidArgument},
		{"null wrapper", []any{2, x, 0, 1, nil}, berrors.ErrInvalidArgument},
		{"offset past end", []any{2, x, 3, 1, info}, berrors.ErrInvalidArgument},
		{"negative offset", []any{2, x, -1, 1, info}, berrors.ErrInvalidArgument},
		{"null array", []any{2, nil, 0, 1, info}, berrors.ErrResourceExhausted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ret, err := c.Call(bg, vm, "idamax", tt.args...)
			if tt.want == nil {
				if err != nil || ret.Int32() != 1 {
					t.Fatalf("Call = %v, %v", ret, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if vm.Outstanding() != 0 {
				t.Errorf("Outstanding() = %d", vm.Outstanding())
			}
		})
	}

	if _, err := c.Call(bg, vm, "nope"); !errors.Is(err, berrors.ErrNotFound) {
		t.Errorf("unknown routine err = %v", err)
	}
}

func TestCall_Return(t *testing.T) {
	vm := managed.NewVM()
	reg := native.NewRegistry().
		Register("ddot_", func(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
			n := int(args[0].Int32(0))
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += args[1].Float64(i) * args[3].Float64(i)
			}
			return abi.Float64(sum), nil
		}).
		Register("lsame_", func(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
			if args[0].CString() == args[1].CString() {
				return abi.Int32(1), nil
			}
			return abi.Int32(0), nil
		}).
		Register("bad_", func(context.Context, []native.Ptr) (abi.Scalar, error) {
			return abi.Float32(1), nil
		})
	c := load(t, vm, reg,
		d.BoundR(abi.Double, "ddot",
			d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("y", d.In), d.Int("incy")),
		d.BoundR(abi.Boolean, "lsame", d.String("ca"), d.String("cb")),
		d.BoundR(abi.Double, "bad"))

	ret, err := c.Call(bg, vm, "ddot", 3,
		managed.NewDoubleArray(1, 2, 3), 0, 1,
		managed.NewDoubleArray(0, 4, 5, 6), 1, 1)
	if err != nil || ret.Float64() != 32 {
		t.Errorf("ddot = %v, %v", ret, err)
	}

	ret, err = c.Call(bg, vm, "lsame", vm.NewString("U"), vm.NewString("U"))
	if err != nil || ret.Kind != abi.Boolean || !ret.Bool() {
		t.Errorf("lsame = %v, %v", ret, err)
	}

	if _, err := c.Call(bg, vm, "bad"); !errors.Is(err, berrors.ErrNativeFault) {
		t.Errorf("mismatched return err = %v", err)
	}
}

func TestCall_NativePanic(t *testing.T) {
	vm := managed.NewVM()
	reg := native.NewRegistry().Register("dscal_", func(_ context.Context, args []native.Ptr) (abi.Scalar, error) {
		panic("bad access")
	})
	c := load(t, vm, reg, d.Bound("dscal", d.Int("n"), d.DoubleArray("x", d.InOut)))

	x := managed.NewDoubleArray(1)
	_, err := c.Call(bg, vm, "dscal", 1, x, 0)
	if !errors.Is(err, berrors.ErrNativeFault) {
		t.Fatalf("err = %v", err)
	}
	if vm.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d", vm.Outstanding())
	}
}

func TestCall_BooleanArrayHeap(t *testing.T) {
	vm := managed.NewVM()
	reg := native.NewRegistry().Register("dhsein_", func(context.Context, []native.Ptr) (abi.Scalar, error) {
		return abi.Scalar{}, nil
	})
	c := load(t, vm, reg, d.Bound("dhsein", d.BooleanArray("select"), d.IntW("info")))

	sel := managed.NewBooleanArray(true)
	vm.Fail(managed.OpMalloc, nil)
	info := vm.NewWrapper(abi.Int32(5))
	_, err := c.Call(bg, vm, "dhsein", sel, 0, info)
	if !errors.Is(err, berrors.ErrResourceExhausted) {
		t.Fatalf("err = %v", err)
	}
	var be *berrors.Error
	if !errors.As(err, &be) || be.Param != "select" {
		t.Errorf("failing param = %v", err)
	}
	if vm.Outstanding() != 0 || info.Scalar("val").Int32() != 5 {
		t.Errorf("outstanding %d, info %v", vm.Outstanding(), info.Scalar("val"))
	}

	vm.ClearFaults()
	if _, err := c.Call(bg, vm, "dhsein", managed.NewBooleanArray(), 0, info); !errors.Is(err, berrors.ErrResourceExhausted) {
		t.Errorf("empty boolean array err = %v", err)
	}
}
