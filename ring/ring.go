// Package ring implements a fixed-size circular buffer with independent
// read and write cursors.
package ring

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/funny-falcon/rawmem/alloc"
	"github.com/funny-falcon/rawmem/bitmap"
)

var (
	ErrFull  = errors.New("ring: buffer is full")
	ErrEmpty = errors.New("ring: buffer is empty")
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer holds up to Cap() values. A slot holds a value iff it was written
// since it was last read.
//
// The cursors are atomics, but Push and Pop assume exclusive access:
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	_        noCopy
	slots    []T
	occupied []uint32
	read     atomic.Uint64
	write    atomic.Uint64
}

func New[T any](n int) *Buffer[T] {
	if n < 1 {
		panic("ring: size must be positive")
	}
	return &Buffer[T]{
		slots:    make([]T, n),
		occupied: make([]uint32, bitmap.Words(n)),
	}
}

func (b *Buffer[T]) Cap() int { return len(b.slots) }

// Len counts occupied slots.
func (b *Buffer[T]) Len() int { return bitmap.Count(b.occupied) }

// Full reports whether the first and the last slot are both occupied.
// Occupied slots always form one arc from the read cursor, so this never
// misses a full buffer, but it also reports full for a wrapped arc that
// covers both ends without covering everything.
func (b *Buffer[T]) Full() bool {
	return bitmap.Has(b.occupied, len(b.slots)-1) && bitmap.Has(b.occupied, 0)
}

func (b *Buffer[T]) Empty() bool {
	return !bitmap.Has(b.occupied, int(b.read.Load()))
}

func (b *Buffer[T]) Push(v T) error {
	if b.Full() {
		return ErrFull
	}
	w := b.advance(&b.write)
	b.slots[w] = v
	bitmap.Set(b.occupied, w)
	return nil
}

func (b *Buffer[T]) Pop() (T, error) {
	if b.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	r := b.advance(&b.read)
	bitmap.Unset(b.occupied, r)
	return alloc.Take(&b.slots[r]), nil
}

// Peek returns the value Pop would return without removing it.
func (b *Buffer[T]) Peek() (T, error) {
	if b.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return b.slots[b.read.Load()], nil
}

// Release drops every held value and rewinds both cursors.
func (b *Buffer[T]) Release() {
	for i := range b.slots {
		if bitmap.Unset(b.occupied, i) {
			alloc.Drop(&b.slots[i])
		}
	}
	b.read.Store(0)
	b.write.Store(0)
}

func (b *Buffer[T]) String() string {
	return fmt.Sprintf("ring.Buffer{len=%d, cap=%d, read=%d, write=%d}",
		b.Len(), b.Cap(), b.read.Load(), b.write.Load())
}

// advance moves the cursor one slot forward and returns its old position.
func (b *Buffer[T]) advance(c *atomic.Uint64) int {
	old := c.Load()
	c.Store((old + 1) % uint64(len(b.slots)))
	return int(old)
}
