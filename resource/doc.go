// Package resource tracks acquisitions a bridge holds on behalf of native
// code: pinned arrays, borrowed string chars and native heap buffers.
//
// Every acquisition gets a Handle; releasing it removes the entry. A
// balanced invocation leaves the table empty:
//
//	table := resource.NewTable()
//
//	h := table.Insert(resource.KindPinnedArray, pin)
//	...
//	table.Remove(h)
//
//	table.Len() // 0
//
// # Observers
//
// Observers see every transition in order, which is how callers verify
// that releases mirror acquisitions:
//
//	table.Subscribe(resource.ObserverFunc(func(e resource.Event) {
//		log.Printf("%s %s #%d", e.Type, e.Kind, e.Handle)
//	}))
//
// Values implementing Releaser are released when they leave the table,
// including through Clear and Close.
package resource
