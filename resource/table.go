package resource

import (
	"sync"
)

// Table tracks live acquisitions and notifies observers on every change.
type Table struct {
	store     *store
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{store: newStore()}
}

// Insert records an acquisition and returns its handle, or 0 after Close.
func (t *Table) Insert(kind Kind, value any) Handle {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return 0
	}
	t.closeMu.RUnlock()

	h, err := t.store.create(kind, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventAcquired,
		Handle: h,
		Kind:   kind,
		Value:  value,
	})

	return h
}

// Get returns the value of a live acquisition.
func (t *Table) Get(h Handle) (any, bool) {
	e, ok := t.store.lookup(h)
	return e.value, ok
}

// GetTyped returns the value only if the acquisition has the expected kind.
func (t *Table) GetTyped(h Handle, kind Kind) (any, bool) {
	e, ok := t.store.lookup(h)
	if !ok || e.kind != kind {
		return nil, false
	}
	return e.value, true
}

// Remove releases an acquisition and returns its value.
func (t *Table) Remove(h Handle) (any, bool) {
	e, ok := t.store.drop(h)
	if !ok {
		return nil, false
	}

	if r, ok := e.value.(Releaser); ok {
		r.Release()
	}

	t.notify(Event{
		Type:   EventReleased,
		Handle: h,
		Kind:   e.kind,
		Value:  e.value,
	})

	return e.value, true
}

// Subscribe adds an observer.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer. Observers that are not comparable,
// such as ObserverFunc values, cannot be removed.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if sameObserver(obs, o) {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func sameObserver(a, b Observer) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// Len returns the number of live acquisitions.
func (t *Table) Len() int {
	return t.store.len()
}

// LenOf returns the number of live acquisitions of one kind.
func (t *Table) LenOf(kind Kind) int {
	n := 0
	t.store.each(func(_ Handle, k Kind, _ any) bool {
		if k == kind {
			n++
		}
		return true
	})
	return n
}

// Clear releases every live acquisition, newest first.
func (t *Table) Clear() {
	// Collect handles first to avoid holding the store lock during Remove
	var handles []Handle
	t.store.each(func(h Handle, _ Kind, _ any) bool {
		handles = append(handles, h)
		return true
	})
	for i := len(handles) - 1; i >= 0; i-- {
		t.Remove(handles[i])
	}
}

// Close releases everything and stops accepting acquisitions.
func (t *Table) Close() error {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	t.Clear()
	t.store.close()
	return nil
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
