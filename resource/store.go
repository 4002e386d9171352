package resource

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("acquisition store closed")

// store is a slot allocator with handle reuse.
type store struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value any
	kind  Kind
	valid bool
}

func newStore() *store {
	return &store{
		entries:  make([]entry, 0, 16),
		freeList: make([]Handle, 0, 8),
	}
}

func (s *store) create(kind Kind, value any) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	e := entry{kind: kind, value: value, valid: true}

	if n := len(s.freeList); n > 0 {
		h := s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
		s.entries[h-1] = e
		return h, nil
	}

	s.entries = append(s.entries, e)
	return Handle(len(s.entries)), nil
}

func (s *store) lookup(h Handle) (entry, bool) {
	if h == 0 {
		return entry{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := int(h - 1)
	if idx >= len(s.entries) || !s.entries[idx].valid {
		return entry{}, false
	}
	return s.entries[idx], true
}

func (s *store) drop(h Handle) (entry, bool) {
	if h == 0 {
		return entry{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := int(h - 1)
	if idx >= len(s.entries) || !s.entries[idx].valid {
		return entry{}, false
	}

	e := s.entries[idx]
	s.entries[idx] = entry{}
	s.freeList = append(s.freeList, h)
	return e, true
}

func (s *store) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// each calls fn for every live entry in handle order until fn returns false.
func (s *store) each(fn func(Handle, Kind, any) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, e := range s.entries {
		if e.valid && !fn(Handle(i+1), e.kind, e.value) {
			return
		}
	}
}

func (s *store) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.entries = nil
	s.freeList = nil
}
