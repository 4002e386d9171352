package managed

import (
	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/native"
	"github.com/wippyai/jnibridge/resource"
)

// FindClass returns the class or nil.
func (t *Thread) FindClass(name string) any {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	c := vm.classes[name]
	if t.record(OpFindClass, name, 0) || c == nil {
		return nil
	}
	return c
}

// GetFieldID returns the field or nil when absent or of another type.
func (t *Thread) GetFieldID(class any, name, sig string) any {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	c, _ := class.(*Class)
	if t.record(OpGetFieldID, class, 0) || c == nil {
		return nil
	}
	f, ok := c.fields[name]
	if !ok || f.Signature != sig {
		return nil
	}
	return f
}

// IsInstanceOf reports whether ref is a non-null instance of class.
func (t *Thread) IsInstanceOf(ref, class any) bool {
	o, ok := ref.(*Object)
	return ok && o != nil && class != nil && any(o.Class) == class
}

// IsString reports whether ref is a non-null managed string.
func (t *Thread) IsString(ref any) bool {
	s, ok := ref.(*String)
	return ok && s != nil
}

// IsArrayOf reports whether ref is a non-null array of elem.
func (t *Thread) IsArrayOf(ref any, elem abi.Kind) bool {
	a, ok := ref.(*Array)
	return ok && a != nil && a.Elem == elem
}

// GetField reads a primitive field.
func (t *Thread) GetField(obj, id any, k abi.Kind) abi.Scalar {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	t.record(OpGetField, obj, 0)
	o, f := fieldOf(obj, id)
	if o == nil {
		return abi.Zero(k)
	}
	s, ok := o.values[f].(abi.Scalar)
	if !ok || s.Kind != k {
		return abi.Zero(k)
	}
	return s
}

// SetField writes a primitive field.
func (t *Thread) SetField(obj, id any, v abi.Scalar) {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	t.record(OpSetField, obj, 0)
	if o, f := fieldOf(obj, id); o != nil {
		o.values[f] = v
	}
}

// GetObjectField reads a reference field. A null field yields nil.
func (t *Thread) GetObjectField(obj, id any) any {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	t.record(OpGetObjectField, obj, 0)
	o, f := fieldOf(obj, id)
	if o == nil {
		return nil
	}
	v := o.values[f]
	if s, ok := v.(*String); ok && s == nil {
		return nil
	}
	return v
}

// SetObjectField writes a reference field.
func (t *Thread) SetObjectField(obj, id, v any) {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	t.record(OpSetObjectField, obj, 0)
	if o, f := fieldOf(obj, id); o != nil {
		o.values[f] = v
	}
}

// GetStringUTFChars borrows a NUL-terminated copy of s. It returns nil on
// failure.
func (t *Thread) GetStringUTFChars(s any) *native.Block {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	str, _ := s.(*String)
	if t.record(OpGetStringUTFChars, s, 0) || str == nil {
		return nil
	}
	b := native.CBytes([]byte(str.Value))
	vm.track(resource.KindStringChars, b, s)
	return b
}

// ReleaseStringUTFChars returns chars borrowed from s.
func (t *Thread) ReleaseStringUTFChars(s any, chars *native.Block) {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	t.record(OpReleaseStringUTFChars, s, 0)
	vm.untrack(chars)
}

// NewStringUTF creates a string from NUL-terminated bytes at p.
func (t *Thread) NewStringUTF(p native.Ptr) any {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if t.record(OpNewStringUTF, nil, 0) || p.IsNil() {
		return nil
	}
	return &String{Value: p.CString()}
}

// GetArrayLength returns the element count of arr.
func (t *Thread) GetArrayLength(arr any) int {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	t.record(OpGetArrayLength, arr, 0)
	if a, ok := arr.(*Array); ok && a != nil {
		return a.Len()
	}
	return 0
}

// GetPrimitiveArrayCritical pins arr and returns its elements in native
// layout. Booleans occupy one byte each. It returns nil on failure.
func (t *Thread) GetPrimitiveArrayCritical(arr any) *native.Block {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	a, _ := arr.(*Array)
	if t.record(OpPinArray, arr, 0) || a == nil {
		return nil
	}
	b := native.Alloc(a.Len() * elemSize(a.Elem))
	a.store(b.Ptr())
	vm.track(resource.KindPinnedArray, b, arr)
	t.critical++
	return b
}

// ReleasePrimitiveArrayCritical unpins arr. Commit copies buf back into
// the array; Abort discards it.
func (t *Thread) ReleasePrimitiveArrayCritical(arr any, buf *native.Block, mode abi.ReleaseMode) {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	t.record(OpUnpinArray, arr, mode)
	if !vm.untrack(buf) {
		return
	}
	t.critical--
	if a, ok := arr.(*Array); ok && a != nil && mode == abi.Commit {
		a.load(buf.Ptr())
	}
}

// Malloc implements native.Heap.
func (t *Thread) Malloc(size int) *native.Block {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if t.record(OpMalloc, nil, 0) {
		return nil
	}
	b := native.Alloc(size)
	vm.track(resource.KindNativeBuffer, b, nil)
	return b
}

// Free implements native.Heap.
func (t *Thread) Free(b *native.Block) {
	vm := t.vm
	vm.mu.Lock()
	defer vm.mu.Unlock()
	t.record(OpFree, nil, 0)
	vm.untrack(b)
}

// Held reports whether b is a live acquisition of kind.
func (vm *VM) Held(b *native.Block, kind resource.Kind) bool {
	vm.mu.Lock()
	h, ok := vm.live[b]
	vm.mu.Unlock()
	if !ok {
		return false
	}
	_, ok = vm.table.GetTyped(h, kind)
	return ok
}

func (vm *VM) track(kind resource.Kind, b *native.Block, ref any) {
	vm.live[b] = vm.table.Insert(kind, pin{ref: ref, buf: b})
}

func (vm *VM) untrack(b *native.Block) bool {
	if b == nil {
		return false
	}
	h, ok := vm.live[b]
	if !ok {
		return false
	}
	delete(vm.live, b)
	vm.table.Remove(h)
	return true
}

func fieldOf(obj, id any) (*Object, *Field) {
	o, _ := obj.(*Object)
	f, _ := id.(*Field)
	if o == nil || f == nil || o.Class != f.Class {
		return nil, nil
	}
	return o, f
}

func elemSize(k abi.Kind) int {
	if k == abi.Boolean {
		return 1
	}
	return k.Size()
}

func (a *Array) store(p native.Ptr) {
	switch d := a.data.(type) {
	case []bool:
		b := p.Bytes(len(d))
		for i, v := range d {
			if v {
				b[i] = 1
			}
		}
	case []int32:
		for i, v := range d {
			p.SetInt32(i, v)
		}
	case []int64:
		for i, v := range d {
			p.SetInt64(i, v)
		}
	case []float32:
		for i, v := range d {
			p.SetFloat32(i, v)
		}
	case []float64:
		for i, v := range d {
			p.SetFloat64(i, v)
		}
	}
}

func (a *Array) load(p native.Ptr) {
	switch d := a.data.(type) {
	case []bool:
		b := p.Bytes(len(d))
		for i := range d {
			d[i] = b[i] != 0
		}
	case []int32:
		for i := range d {
			d[i] = p.Int32(i)
		}
	case []int64:
		for i := range d {
			d[i] = p.Int64(i)
		}
	case []float32:
		for i := range d {
			d[i] = p.Float32(i)
		}
	case []float64:
		for i := range d {
			d[i] = p.Float64(i)
		}
	}
}
