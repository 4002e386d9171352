package native

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Block is a contiguous region of native memory aligned to 8 bytes.
type Block struct {
	words []uint64
	size  int
}

// Alloc returns a zeroed block of size bytes.
func Alloc(size int) *Block {
	if size < 0 {
		size = 0
	}
	return &Block{words: make([]uint64, (size+7)/8), size: size}
}

// Len returns the block size in bytes.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Bytes returns the block contents. The slice aliases the block.
func (b *Block) Bytes() []byte {
	if b == nil || b.size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.words[0])), b.size)
}

// Addr returns the machine address of the block, or nil when it is empty.
func (b *Block) Addr() unsafe.Pointer {
	if b == nil || b.size == 0 {
		return nil
	}
	return unsafe.Pointer(&b.words[0])
}

// Ptr returns a pointer to the start of the block.
func (b *Block) Ptr() Ptr {
	return Ptr{Block: b}
}

// Ptr is an address inside a block. The zero Ptr is NULL.
type Ptr struct {
	Block *Block
	Off   int
}

// IsNil reports whether p is NULL.
func (p Ptr) IsNil() bool {
	return p.Block == nil
}

// Add returns p advanced by n bytes.
func (p Ptr) Add(n int) Ptr {
	if p.Block == nil {
		return p
	}
	return Ptr{Block: p.Block, Off: p.Off + n}
}

// Bytes returns n bytes starting at p, or nil when out of range.
func (p Ptr) Bytes(n int) []byte {
	b := p.Block.Bytes()
	if p.Off < 0 || n < 0 || p.Off+n > len(b) {
		return nil
	}
	return b[p.Off : p.Off+n]
}

// Remaining returns the number of bytes from p to the end of its block.
func (p Ptr) Remaining() int {
	if p.Block == nil || p.Off > p.Block.size {
		return 0
	}
	return p.Block.size - p.Off
}

// Addr returns the machine address of p for foreign calls. A pointer one
// past the end of its block is valid; keep the block alive through
// Block.Addr rather than through such a pointer.
func (p Ptr) Addr() unsafe.Pointer {
	base := p.Block.Addr()
	if base == nil || p.Off < 0 || p.Off > p.Block.size {
		return nil
	}
	return unsafe.Add(base, p.Off)
}

func (p Ptr) Int32(i int) int32 {
	return int32(binary.NativeEndian.Uint32(p.Bytes(4*i + 4)[4*i:]))
}

func (p Ptr) SetInt32(i int, v int32) {
	binary.NativeEndian.PutUint32(p.Bytes(4*i + 4)[4*i:], uint32(v))
}

func (p Ptr) Int64(i int) int64 {
	return int64(binary.NativeEndian.Uint64(p.Bytes(8*i + 8)[8*i:]))
}

func (p Ptr) SetInt64(i int, v int64) {
	binary.NativeEndian.PutUint64(p.Bytes(8*i + 8)[8*i:], uint64(v))
}

func (p Ptr) Float32(i int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(p.Bytes(4*i + 4)[4*i:]))
}

func (p Ptr) SetFloat32(i int, v float32) {
	binary.NativeEndian.PutUint32(p.Bytes(4*i + 4)[4*i:], math.Float32bits(v))
}

func (p Ptr) Float64(i int) float64 {
	return math.Float64frombits(binary.NativeEndian.Uint64(p.Bytes(8*i + 8)[8*i:]))
}

func (p Ptr) SetFloat64(i int, v float64) {
	binary.NativeEndian.PutUint64(p.Bytes(8*i + 8)[8*i:], math.Float64bits(v))
}

// CString reads a NUL-terminated string starting at p.
func (p Ptr) CString() string {
	b := p.Bytes(p.Remaining())
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// CBytes copies s into a new NUL-terminated block.
func CBytes(s []byte) *Block {
	b := Alloc(len(s) + 1)
	copy(b.Bytes(), s)
	return b
}
