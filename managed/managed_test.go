package managed

import (
	"testing"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/native"
	"github.com/wippyai/jnibridge/resource"
)

func TestVM_WrapperFields(t *testing.T) {
	vm := NewVM()
	tests := []struct {
		class string
		sig   string
		value abi.Scalar
	}{
		{"org/netlib/util/booleanW", "Z", abi.Bool(true)},
		{"org/netlib/util/intW", "I", abi.Int32(7)},
		{"org/netlib/util/floatW", "F", abi.Float32(1.5)},
		{"org/netlib/util/doubleW", "D", abi.Float64(-2)},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			cls := vm.FindClass(tt.class)
			if cls == nil {
				t.Fatal("class not found")
			}
			id := vm.GetFieldID(cls, "val", tt.sig)
			if id == nil {
				t.Fatal("field not found")
			}
			if vm.GetFieldID(cls, "val", "Ljava/lang/Object;") != nil {
				t.Error("field resolved with wrong signature")
			}
			w := vm.NewWrapper(abi.Zero(tt.value.Kind))
			if !vm.IsInstanceOf(w, cls) {
				t.Error("wrapper is not an instance of its class")
			}
			vm.SetField(w, id, tt.value)
			if got := vm.GetField(w, id, tt.value.Kind); got != tt.value {
				t.Errorf("GetField() = %v, want %v", got, tt.value)
			}
		})
	}
}

func TestVM_StringW(t *testing.T) {
	vm := NewVM()
	cls := vm.FindClass("org/netlib/util/StringW")
	id := vm.GetFieldID(cls, "val", "Ljava/lang/String;")
	if id == nil {
		t.Fatal("StringW.val not found")
	}

	w := vm.NewStringW(nil)
	if vm.GetObjectField(w, id) != nil {
		t.Error("empty StringW should hold null")
	}

	w.Set("val", vm.NewString("N"))
	s := vm.GetObjectField(w, id)
	chars := vm.GetStringUTFChars(s)
	if chars.Ptr().CString() != "N" {
		t.Errorf("chars = %q", chars.Ptr().CString())
	}
	if !vm.Held(chars, resource.KindStringChars) {
		t.Error("chars not tracked")
	}

	chars.Bytes()[0] = 'T'
	vm.SetObjectField(w, id, vm.NewStringUTF(chars.Ptr()))
	vm.ReleaseStringUTFChars(s, chars)

	if got := w.Get("val").(*String).Value; got != "T" {
		t.Errorf("StringW.val = %q, want T", got)
	}
	if vm.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d", vm.Outstanding())
	}
}

func TestVM_PinRelease(t *testing.T) {
	tests := []struct {
		name string
		mode abi.ReleaseMode
		want float64
	}{
		{"commit", abi.Commit, 10},
		{"abort", abi.Abort, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := NewVM()
			arr := NewDoubleArray(1, 2)
			buf := vm.GetPrimitiveArrayCritical(arr)
			if buf == nil || buf.Len() != 16 {
				t.Fatalf("pin = %v", buf)
			}
			buf.Ptr().SetFloat64(0, 10)
			vm.ReleasePrimitiveArrayCritical(arr, buf, tt.mode)

			if got := arr.Doubles()[0]; got != tt.want {
				t.Errorf("arr[0] = %v, want %v", got, tt.want)
			}
			if vm.Outstanding() != 0 {
				t.Errorf("Outstanding() = %d", vm.Outstanding())
			}
		})
	}
}

func TestVM_BooleanLayout(t *testing.T) {
	vm := NewVM()
	arr := NewBooleanArray(true, false, true)
	buf := vm.GetPrimitiveArrayCritical(arr)
	if got := buf.Bytes(); len(got) != 3 || got[0] != 1 || got[1] != 0 || got[2] != 1 {
		t.Errorf("pinned bytes = %v", got)
	}
	buf.Bytes()[1] = 1
	vm.ReleasePrimitiveArrayCritical(arr, buf, abi.Commit)
	if !arr.Bools()[1] {
		t.Error("commit did not write back")
	}
}

func TestVM_Faults(t *testing.T) {
	vm := NewVM()
	x := NewDoubleArray(1)
	y := NewDoubleArray(2)
	vm.Fail(OpPinArray, y)

	if vm.GetPrimitiveArrayCritical(x) == nil {
		t.Error("unrelated pin failed")
	}
	if vm.GetPrimitiveArrayCritical(y) != nil {
		t.Error("injected pin fault ignored")
	}

	vm.Fail(OpMalloc, nil)
	if vm.Malloc(8) != nil {
		t.Error("injected malloc fault ignored")
	}

	vm.ClearFaults()
	if vm.GetPrimitiveArrayCritical(y) == nil {
		t.Error("fault survived ClearFaults")
	}

	j := vm.Journal()
	failed := 0
	for _, e := range j {
		if e.Failed {
			failed++
		}
	}
	if failed != 2 {
		t.Errorf("failed events = %d, want 2: %v", failed, j)
	}
}

func TestVM_CriticalViolations(t *testing.T) {
	vm := NewVM()
	arr := NewIntArray(1, 2)
	w := vm.NewWrapper(abi.Int32(0))
	id := vm.GetFieldID(vm.FindClass("org/netlib/util/intW"), "val", "I")
	vm.ResetJournal()

	buf := vm.GetPrimitiveArrayCritical(arr)
	_ = vm.GetArrayLength(arr)
	vm.Free(vm.Malloc(4))
	if len(vm.Violations()) != 0 {
		t.Fatalf("unexpected violations: %v", vm.Violations())
	}

	vm.SetField(w, id, abi.Int32(1))
	vm.ReleasePrimitiveArrayCritical(arr, buf, abi.Abort)
	vm.SetField(w, id, abi.Int32(2))

	v := vm.Violations()
	if len(v) != 1 || v[0].Op != OpSetField {
		t.Errorf("Violations() = %v", v)
	}
}

func TestThread_CriticalRegionsAreLocal(t *testing.T) {
	vm := NewVM()
	a, b := vm.Attach(), vm.Attach()
	arr := NewIntArray(1, 2)
	w := vm.NewWrapper(abi.Int32(0))
	id := vm.GetFieldID(vm.FindClass("org/netlib/util/intW"), "val", "I")
	vm.ResetJournal()

	buf := a.GetPrimitiveArrayCritical(arr)
	b.SetField(w, id, abi.Int32(1))
	_ = b.GetField(w, id, abi.Int)
	vm.SetField(w, id, abi.Int32(2))
	if v := vm.Violations(); len(v) != 0 {
		t.Fatalf("other threads flagged: %v", v)
	}

	a.SetField(w, id, abi.Int32(3))
	a.ReleasePrimitiveArrayCritical(arr, buf, abi.Abort)
	if v := vm.Violations(); len(v) != 1 || v[0].Op != OpSetField {
		t.Errorf("Violations() = %v", v)
	}
	if vm.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d", vm.Outstanding())
	}
}

func TestVM_Observe(t *testing.T) {
	vm := NewVM()
	var events []resource.EventType
	vm.Subscribe(resource.ObserverFunc(func(e resource.Event) {
		events = append(events, e.Type)
	}))

	b := vm.Malloc(16)
	vm.Free(b)
	vm.Free(b)
	vm.Free(nil)

	if len(events) != 2 || events[0] != resource.EventAcquired || events[1] != resource.EventReleased {
		t.Errorf("events = %v", events)
	}
}

func TestVM_Close(t *testing.T) {
	vm := NewVM()
	_ = vm.GetPrimitiveArrayCritical(NewFloatArray(1))
	_ = vm.GetStringUTFChars(vm.NewString("x"))
	if vm.Outstanding() != 2 {
		t.Fatalf("Outstanding() = %d", vm.Outstanding())
	}
	if err := vm.Close(); err != nil {
		t.Fatal(err)
	}
	if vm.Outstanding() != 0 {
		t.Errorf("Outstanding() after Close = %d", vm.Outstanding())
	}
}

func TestVM_UndefineClass(t *testing.T) {
	vm := NewVM()
	vm.UndefineClass("org/netlib/util/StringW")
	if vm.FindClass("org/netlib/util/StringW") != nil {
		t.Error("undefined class still found")
	}
	if vm.NewStringW(nil) != nil {
		t.Error("NewStringW without class should be nil")
	}
}

var (
	_ native.Heap = (*VM)(nil)
	_ native.Heap = (*Thread)(nil)
)
