package tables

import (
	"testing"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/bridge"
	d "github.com/wippyai/jnibridge/descriptor"
)

func TestTables_Valid(t *testing.T) {
	tests := []struct {
		name     string
		lib      string
		routines int
		stubs    int
	}{
		{"blas", "libblas.so.3", 67, 0},
		{"lapack", "liblapack.so.3", 723, 20},
		{"arpack", "libarpack.so.2", 58, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, ok := Lookup(tt.name)
			if !ok {
				t.Fatal("library not found")
			}
			if lib.DefaultLib != tt.lib {
				t.Errorf("DefaultLib = %q, want %q", lib.DefaultLib, tt.lib)
			}
			if err := lib.Validate(); err != nil {
				t.Fatalf("Validate failed: %v", err)
			}

			stubs := 0
			for _, r := range lib.Routines {
				if r.Stub {
					stubs++
				}
			}
			if len(lib.Routines) != tt.routines || stubs != tt.stubs {
				t.Errorf("routines = %d (%d stubs), want %d (%d stubs)", len(lib.Routines), stubs, tt.routines, tt.stubs)
			}

			unit, err := bridge.BuildLibrary(lib)
			if err != nil {
				t.Fatalf("BuildLibrary failed: %v", err)
			}
			bound := 0
			for _, p := range unit.Programs {
				if !p.Stub {
					bound++
				}
			}
			if bound != tt.routines-tt.stubs {
				t.Errorf("bound programs = %d", bound)
			}
		})
	}
}

func TestTables_Entries(t *testing.T) {
	blas := BLAS()
	dasum, ok := blas.Routine("dasum")
	if !ok {
		t.Fatal("dasum missing")
	}
	if dasum.Return != abi.Double || len(dasum.Params) != 3 {
		t.Errorf("dasum = %v", dasum)
	}
	if x := dasum.Params[1]; x.Kind() != d.KindArray || x.Access() != d.In || x.Strategy() != abi.Critical {
		t.Errorf("dasum x = %v", x)
	}

	lapack := LAPACK()
	dgees, ok := lapack.Routine("dgees")
	if !ok || !dgees.Stub {
		t.Errorf("dgees should be a stub")
	}
	dstemr, _ := lapack.Routine("dstemr")
	found := false
	for _, p := range dstemr.Params {
		if p.Name() == "tryrac" && p.Kind() == d.KindScalarWrapper && p.Value() == abi.Boolean {
			found = true
		}
	}
	if !found {
		t.Error("dstemr tryrac should be a boolean wrapper")
	}

	if _, ok := Lookup("cublas"); ok {
		t.Error("unknown package resolved")
	}
	if got := Names(); len(got) != 3 || got[0] != "arpack" || got[2] != "lapack" {
		t.Errorf("Names() = %v", got)
	}
}
