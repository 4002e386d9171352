package native

// Heap allocates native memory for copies a routine needs beyond pinned
// arrays. Malloc returns nil when memory is exhausted.
type Heap interface {
	Malloc(size int) *Block
	Free(b *Block)
}

// GoHeap allocates from the Go heap and never fails.
type GoHeap struct{}

func (GoHeap) Malloc(size int) *Block { return Alloc(size) }
func (GoHeap) Free(*Block)            {}
