package resource

import (
	"sync"
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

func TestTable_Basic(t *testing.T) {
	table := NewTable()

	h := table.Insert(KindPinnedArray, "x")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := table.Get(h)
	if !ok || val != "x" {
		t.Fatalf("Get = %v, %v", val, ok)
	}

	if _, ok := table.GetTyped(h, KindPinnedArray); !ok {
		t.Fatal("GetTyped with correct kind failed")
	}
	if _, ok := table.GetTyped(h, KindStringChars); ok {
		t.Fatal("GetTyped with wrong kind should fail")
	}

	val, ok = table.Remove(h)
	if !ok || val != "x" {
		t.Fatalf("Remove = %v, %v", val, ok)
	}
	if _, ok := table.Remove(h); ok {
		t.Fatal("double Remove should fail")
	}
	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
}

func TestTable_HandleReuse(t *testing.T) {
	table := NewTable()

	h1 := table.Insert(KindPinnedArray, 1)
	table.Remove(h1)
	h2 := table.Insert(KindNativeBuffer, 2)
	if h2 != h1 {
		t.Errorf("expected freed handle %d to be reused, got %d", h1, h2)
	}
	if _, ok := table.Get(0); ok {
		t.Error("handle 0 must be invalid")
	}
	if _, ok := table.Get(99); ok {
		t.Error("out of range handle must be invalid")
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	a := table.Insert(KindStringChars, "a")
	b := table.Insert(KindPinnedArray, "b")
	table.Remove(b)
	table.Remove(a)

	want := []struct {
		typ EventType
		h   Handle
	}{
		{EventAcquired, a},
		{EventAcquired, b},
		{EventReleased, b},
		{EventReleased, a},
	}
	if len(obs.events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(obs.events))
	}
	for i, w := range want {
		if obs.events[i].Type != w.typ || obs.events[i].Handle != w.h {
			t.Errorf("event %d = %+v, want %v #%d", i, obs.events[i], w.typ, w.h)
		}
	}
	if obs.events[1].Kind != KindPinnedArray {
		t.Errorf("event kind = %v", obs.events[1].Kind)
	}

	table.Unsubscribe(obs)
	table.Insert(KindPinnedArray, "c")
	if len(obs.events) != len(want) {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestTable_ObserverFunc(t *testing.T) {
	table := NewTable()
	var n int
	f := ObserverFunc(func(Event) { n++ })
	table.Subscribe(f)
	table.Unsubscribe(f) // not comparable, stays subscribed

	table.Insert(KindNativeBuffer, nil)
	if n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}
}

func TestTable_LenOf(t *testing.T) {
	table := NewTable()
	table.Insert(KindPinnedArray, 1)
	table.Insert(KindPinnedArray, 2)
	table.Insert(KindNativeBuffer, 3)

	if table.LenOf(KindPinnedArray) != 2 || table.LenOf(KindNativeBuffer) != 1 || table.LenOf(KindStringChars) != 0 {
		t.Errorf("unexpected counts")
	}
}

type releaseCounter struct {
	count int
}

func (r *releaseCounter) Release() {
	r.count++
}

func TestTable_ClearReleasesNewestFirst(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	r := &releaseCounter{}

	h1 := table.Insert(KindPinnedArray, r)
	h2 := table.Insert(KindPinnedArray, "b")
	table.Subscribe(obs)
	table.Clear()

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Clear")
	}
	if r.count != 1 {
		t.Errorf("Release called %d times", r.count)
	}
	if len(obs.events) != 2 || obs.events[0].Handle != h2 || obs.events[1].Handle != h1 {
		t.Errorf("unexpected release order %+v", obs.events)
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable()
	r := &releaseCounter{}
	table.Insert(KindNativeBuffer, r)

	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if r.count != 1 {
		t.Errorf("Close should release live values, count = %d", r.count)
	}
	if h := table.Insert(KindNativeBuffer, "c"); h != 0 {
		t.Fatal("Expected Insert to fail after Close")
	}
}

func TestTable_Concurrent(t *testing.T) {
	table := NewTable()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h := table.Insert(KindPinnedArray, j)
				table.Remove(h)
			}
		}()
	}
	wg.Wait()
	if table.Len() != 0 {
		t.Fatalf("Len() = %d after balanced use", table.Len())
	}
}
