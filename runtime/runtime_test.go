package runtime

import (
	"context"
	"errors"
	"testing"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/bridge"
	d "github.com/wippyai/jnibridge/descriptor"
	berrors "github.com/wippyai/jnibridge/errors"
	"github.com/wippyai/jnibridge/managed"
	"github.com/wippyai/jnibridge/native"
	"github.com/wippyai/jnibridge/resource"
)

const testLib = "libtest.so.1"

// load builds routines into a library and loads it against vm, resolving
// every symbol from reg.
func load(t *testing.T, vm *managed.VM, reg *native.Registry, routines ...d.Routine) *Context {
	t.Helper()
	unit, err := bridge.BuildLibrary(d.Library{Package: "test", DefaultLib: testLib, Routines: routines})
	if err != nil {
		t.Fatalf("BuildLibrary failed: %v", err)
	}
	c, err := Load(context.Background(), vm, unit,
		WithOpener(native.Static{testLib: reg}),
		WithProperties(MapProperties{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(func() { _ = c.Unload(context.Background()) })
	return c
}

// counter tallies acquisitions and releases.
type counter struct {
	acquired int
	released int
}

func (c *counter) OnResourceEvent(e resource.Event) {
	if e.Type == resource.EventAcquired {
		c.acquired++
	} else {
		c.released++
	}
}

func TestLoad_LibraryResolution(t *testing.T) {
	unit, err := bridge.BuildLibrary(d.Library{Package: "blas", DefaultLib: "libblas.so.3"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		props MapProperties
		want  string
	}{
		{"default", MapProperties{}, "libblas.so.3"},
		{"name", MapProperties{"dev.ludovic.netlib.blas.nativeLib": "libopenblas.so"}, "libopenblas.so"},
		{"path wins", MapProperties{
			"dev.ludovic.netlib.blas.nativeLib":     "libopenblas.so",
			"dev.ludovic.netlib.blas.nativeLibPath": "/opt/lib/libmkl.so",
		}, "/opt/lib/libmkl.so"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opened string
			opener := native.OpenerFunc(func(_ context.Context, name string) (native.Library, error) {
				opened = name
				return native.NewRegistry(), nil
			})
			c, err := Load(context.Background(), managed.NewVM(), unit, WithOpener(opener), WithProperties(tt.props))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if opened != tt.want || c.Library() != tt.want {
				t.Errorf("opened %q, want %q", opened, tt.want)
			}
		})
	}
}

func TestLoad_PropertiesFromEnvironment(t *testing.T) {
	vm := managed.NewVM()
	vm.SetProperty("dev.ludovic.netlib.test.nativeLibPath", "/tmp/libtest.so")
	unit, _ := bridge.BuildLibrary(d.Library{Package: "test", DefaultLib: testLib})

	c, err := Load(context.Background(), vm, unit, WithOpener(native.Static{"/tmp/libtest.so": native.NewRegistry()}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Library() != "/tmp/libtest.so" {
		t.Errorf("Library() = %q", c.Library())
	}
}

func TestLoad_Initialization(t *testing.T) {
	unit, _ := bridge.BuildLibrary(d.Library{Package: "test", DefaultLib: testLib})

	tests := []struct {
		name  string
		setup func(vm *managed.VM)
		open  native.Opener
	}{
		{"missing class", func(vm *managed.VM) { vm.UndefineClass("org/netlib/util/doubleW") }, native.Static{testLib: native.NewRegistry()}},
		{"wrong field type", func(vm *managed.VM) {
			vm.DefineClass("org/netlib/util/intW", managed.FieldDef{Name: "val", Signature: "J"})
		}, native.Static{testLib: native.NewRegistry()}},
		{"library missing", func(*managed.VM) {}, native.Static{}},
		{"no opener", func(*managed.VM) {}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := managed.NewVM()
			tt.setup(vm)
			opts := []Option{WithProperties(MapProperties{})}
			if tt.open != nil {
				opts = append(opts, WithOpener(tt.open))
			}
			_, err := Load(context.Background(), vm, unit, opts...)
			if !errors.Is(err, berrors.ErrInitialization) {
				t.Errorf("err = %v, want initialization error", err)
			}
		})
	}
}

func TestContext_Has(t *testing.T) {
	reg := native.NewRegistry().
		Register("dasum_", func(context.Context, []native.Ptr) (abi.Scalar, error) { return abi.Float64(0), nil }).
		Register("dgees_", func(context.Context, []native.Ptr) (abi.Scalar, error) { return abi.Scalar{}, nil })
	c := load(t, managed.NewVM(), reg,
		d.BoundR(abi.Double, "dasum", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx")),
		d.Bound("dnrm2", d.Int("n")),
		d.Stub("dgees", d.Object("select")))

	tests := []struct {
		name string
		want bool
	}{
		{"dasum", true},
		{"dnrm2", false},
		{"dgees", false},
		{"nope", false},
	}
	for _, tt := range tests {
		if got := c.Has(tt.name); got != tt.want {
			t.Errorf("Has(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestContext_Unload(t *testing.T) {
	reg := native.NewRegistry()
	c := load(t, managed.NewVM(), reg, d.Bound("noop"))

	if err := c.Unload(context.Background()); err != nil {
		t.Fatalf("Unload failed: %v", err)
	}
	if !reg.Closed() {
		t.Error("library not closed")
	}
	if c.Has("noop") {
		t.Error("Has() true after Unload")
	}
	_, err := c.Call(context.Background(), managed.NewVM(), "noop")
	if !errors.Is(err, berrors.ErrNotInitialized) {
		t.Errorf("Call after Unload = %v", err)
	}
	if err := c.Unload(context.Background()); err != nil {
		t.Errorf("second Unload = %v", err)
	}
}

func TestProperties(t *testing.T) {
	env := map[string]string{
		"DEV_LUDOVIC_NETLIB_BLAS_NATIVELIB": "libopenblas.so",
		"DEV_LUDOVIC_NETLIB_BLAS_EMPTY":     "",
	}
	ep := EnvProperties{Lookup: func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}}

	if got := EnvName("dev.ludovic.netlib.blas.nativeLibPath"); got != "DEV_LUDOVIC_NETLIB_BLAS_NATIVELIBPATH" {
		t.Errorf("EnvName() = %q", got)
	}
	if v, ok := ep.Property("dev.ludovic.netlib.blas.nativeLib"); !ok || v != "libopenblas.so" {
		t.Errorf("Property() = %q, %v", v, ok)
	}
	if _, ok := ep.Property("dev.ludovic.netlib.blas.empty"); ok {
		t.Error("empty variable should be unset")
	}

	chain := Chain{nil, MapProperties{"a": "map"}, ep}
	if v, _ := chain.Property("a"); v != "map" {
		t.Errorf("Chain a = %q", v)
	}
	if v, _ := chain.Property("dev.ludovic.netlib.blas.nativeLib"); v != "libopenblas.so" {
		t.Errorf("Chain fallthrough = %q", v)
	}
	if _, ok := chain.Property("missing"); ok {
		t.Error("Chain resolved a missing key")
	}
}
