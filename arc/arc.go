// Package arc implements a shared handle to one value with an atomic
// reference count. The last handle to be released drops the value.
package arc

import (
	"math"
	"sync/atomic"

	"github.com/funny-falcon/rawmem/alloc"
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type inner[T any] struct {
	count atomic.Uint64
	data  T
}

// Arc is one handle to a shared value. Handles are obtained from New and
// Clone only; copying the struct bypasses the count.
//
// Distinct handles to the same value may be cloned, read and released from
// different goroutines without further locking. A single handle is not
// safe for concurrent use.
type Arc[T any] struct {
	_     noCopy
	inner *inner[T]
}

func New[T any](data T) *Arc[T] {
	in := &inner[T]{data: data}
	in.count.Store(1)
	return &Arc[T]{inner: in}
}

// Clone returns a new handle to the same value.
func (a *Arc[T]) Clone() *Arc[T] {
	in := a.live()
	// Only the counter itself needs to be atomic here: the new handle is
	// derived from a live one, so the value cannot be dropped meanwhile.
	if old := in.count.Add(1) - 1; old > math.MaxInt64 {
		alloc.Fatalf("arc: reference count overflow")
	}
	return &Arc[T]{inner: in}
}

// Get returns the shared value. It must not be modified and must not be
// used after this handle is released.
func (a *Arc[T]) Get() *T {
	return &a.live().data
}

// Count reports how many handles share the value.
func (a *Arc[T]) Count() int {
	return int(a.live().count.Load())
}

// Release detaches the handle. When it was the last one the value is
// dropped. Releasing an already released handle does nothing.
func (a *Arc[T]) Release() {
	in := a.inner
	if in == nil {
		return
	}
	a.inner = nil
	// sync/atomic operations are sequentially consistent: every earlier
	// decrement, and whatever its goroutine did before it, happens before
	// the one that observes zero.
	if in.count.Add(^uint64(0)) != 0 {
		return
	}
	alloc.Drop(&in.data)
}

func (a *Arc[T]) live() *inner[T] {
	if a.inner == nil {
		panic("arc: use of released handle")
	}
	return a.inner
}
