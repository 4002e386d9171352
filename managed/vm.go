package managed

import (
	"sync"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/ir"
	"github.com/wippyai/jnibridge/native"
	"github.com/wippyai/jnibridge/resource"
)

// VM is an in-memory managed runtime exposing the JNI operations a bridge
// uses. Pinned arrays are copied out, so a release with abort visibly
// discards native writes.
//
// The JNI operations belong to a Thread. The VM embeds its main thread, so
// a VM can be used directly as a JNI environment by a single caller;
// concurrent callers each Attach their own.
type VM struct {
	*Thread

	mu         sync.Mutex
	classes    map[string]*Class
	properties map[string]string
	table      *resource.Table
	live       map[*native.Block]resource.Handle
	journal    []Event
	faults     []fault
	violations []Event
}

// Thread is the JNI environment of one caller. Critical regions are
// tracked per thread.
type Thread struct {
	vm       *VM
	critical int // guarded by vm.mu
}

type fault struct {
	op  Op
	ref any
}

// pin is the value recorded in the acquisition table.
type pin struct {
	ref any
	buf *native.Block
}

// NewVM creates a VM with the org/netlib/util wrapper classes defined.
func NewVM() *VM {
	vm := &VM{
		classes:    make(map[string]*Class),
		properties: make(map[string]string),
		table:      resource.NewTable(),
		live:       make(map[*native.Block]resource.Handle),
	}
	vm.Thread = &Thread{vm: vm}
	for _, f := range ir.WrapperFields {
		vm.DefineClass(f.Class, FieldDef{Name: f.Field, Signature: f.Signature})
	}
	return vm
}

// Attach returns a new thread environment sharing the VM's heap, classes
// and journal.
func (vm *VM) Attach() *Thread {
	return &Thread{vm: vm}
}

// FieldDef declares a field of a class.
type FieldDef struct {
	Name      string
	Signature string
}

// DefineClass registers (or replaces) a class.
func (vm *VM) DefineClass(name string, fields ...FieldDef) *Class {
	c := &Class{Name: name, fields: make(map[string]*Field, len(fields))}
	for _, fd := range fields {
		c.fields[fd.Name] = &Field{Class: c, Name: fd.Name, Signature: fd.Signature}
	}
	vm.mu.Lock()
	vm.classes[name] = c
	vm.mu.Unlock()
	return c
}

// UndefineClass removes a class so lookups fail.
func (vm *VM) UndefineClass(name string) {
	vm.mu.Lock()
	delete(vm.classes, name)
	vm.mu.Unlock()
}

// Class returns a defined class.
func (vm *VM) Class(name string) *Class {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.classes[name]
}

// NewObject allocates an instance with zero-valued fields.
func (vm *VM) NewObject(c *Class) *Object {
	o := &Object{Class: c, values: make(map[*Field]any, len(c.fields))}
	for _, f := range c.fields {
		if k, ok := kindOfSignature(f.Signature); ok {
			o.values[f] = abi.Zero(k)
		}
	}
	return o
}

// NewWrapper creates an org/netlib/util wrapper box holding v.
func (vm *VM) NewWrapper(v abi.Scalar) *Object {
	c := vm.Class("org/netlib/util/" + v.Kind.String() + "W")
	if c == nil {
		return nil
	}
	o := vm.NewObject(c)
	o.Set("val", v)
	return o
}

// NewStringW creates an org/netlib/util/StringW box holding s.
func (vm *VM) NewStringW(s *String) *Object {
	c := vm.Class("org/netlib/util/StringW")
	if c == nil {
		return nil
	}
	o := vm.NewObject(c)
	if s != nil {
		o.Set("val", s)
	}
	return o
}

// NewString creates a managed string.
func (vm *VM) NewString(s string) *String {
	return &String{Value: s}
}

func NewBooleanArray(v ...bool) *Array   { return &Array{Elem: abi.Boolean, data: v} }
func NewIntArray(v ...int32) *Array      { return &Array{Elem: abi.Int, data: v} }
func NewLongArray(v ...int64) *Array     { return &Array{Elem: abi.Long, data: v} }
func NewFloatArray(v ...float32) *Array  { return &Array{Elem: abi.Float, data: v} }
func NewDoubleArray(v ...float64) *Array { return &Array{Elem: abi.Double, data: v} }

// SetProperty sets a system property.
func (vm *VM) SetProperty(key, value string) {
	vm.mu.Lock()
	vm.properties[key] = value
	vm.mu.Unlock()
}

// Property looks up a system property.
func (vm *VM) Property(key string) (string, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	v, ok := vm.properties[key]
	return v, ok
}

// Fail makes every subsequent op on ref fail. A nil ref matches any target.
func (vm *VM) Fail(op Op, ref any) {
	vm.mu.Lock()
	vm.faults = append(vm.faults, fault{op: op, ref: ref})
	vm.mu.Unlock()
}

// ClearFaults removes all injected faults.
func (vm *VM) ClearFaults() {
	vm.mu.Lock()
	vm.faults = nil
	vm.mu.Unlock()
}

// Subscribe observes acquisitions and releases.
func (vm *VM) Subscribe(o resource.Observer) {
	vm.table.Subscribe(o)
}

// Outstanding returns the number of unreleased acquisitions.
func (vm *VM) Outstanding() int {
	return vm.table.Len()
}

// Journal returns a copy of the recorded operations.
func (vm *VM) Journal() []Event {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]Event(nil), vm.journal...)
}

// ResetJournal clears recorded operations.
func (vm *VM) ResetJournal() {
	vm.mu.Lock()
	vm.journal = nil
	vm.violations = nil
	vm.mu.Unlock()
}

// Violations returns operations a thread performed while holding one of
// its own critical pins.
func (vm *VM) Violations() []Event {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]Event(nil), vm.violations...)
}

// Close releases every outstanding acquisition.
func (vm *VM) Close() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.live = make(map[*native.Block]resource.Handle)
	vm.Thread.critical = 0
	return vm.table.Close()
}

// record journals op and reports whether an injected fault applies.
// The caller must hold vm.mu.
func (t *Thread) record(op Op, ref any, mode abi.ReleaseMode) bool {
	vm := t.vm
	failed := false
	for _, f := range vm.faults {
		if f.op == op && (f.ref == nil || f.ref == ref) {
			failed = true
			break
		}
	}
	e := Event{Op: op, Ref: ref, Mode: mode, Failed: failed}
	vm.journal = append(vm.journal, e)
	if t.critical > 0 && !op.allowedInCritical() {
		vm.violations = append(vm.violations, e)
	}
	return failed
}

func kindOfSignature(sig string) (abi.Kind, bool) {
	switch sig {
	case "Z":
		return abi.Boolean, true
	case "I":
		return abi.Int, true
	case "J":
		return abi.Long, true
	case "F":
		return abi.Float, true
	case "D":
		return abi.Double, true
	}
	return abi.Void, false
}
