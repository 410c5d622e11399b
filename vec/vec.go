package vec

import (
	"errors"
	"fmt"
	"iter"

	"github.com/funny-falcon/rawmem/alloc"
)

var ErrIndexOutOfRange = errors.New("vec: index out of range")

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Vec is a growable array over a manually managed buffer. Slots [0, Len())
// hold live values; the rest of the buffer is never read.
//
// The zero value is an empty Vec. A Vec is not safe for concurrent use.
type Vec[T any] struct {
	_        noCopy
	buf      raw[T]
	len      int
	draining bool
}

func New[T any]() *Vec[T] {
	return &Vec[T]{buf: newRaw[T]()}
}

func (v *Vec[T]) Len() int { return v.len }
func (v *Vec[T]) Cap() int { return v.buf.cap }

func (v *Vec[T]) mutable() {
	if v.draining {
		panic("vec: modified while a drain is outstanding")
	}
}

func (v *Vec[T]) Push(x T) {
	v.mutable()
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	*v.buf.at(v.len) = x
	v.len++
}

func (v *Vec[T]) Pop() (T, bool) {
	v.mutable()
	if v.len == 0 {
		var zero T
		return zero, false
	}
	v.len--
	return alloc.Take(v.buf.at(v.len)), true
}

// Insert places x at index i, shifting [i, Len()) one slot right.
// i == Len() appends.
func (v *Vec[T]) Insert(x T, i int) error {
	v.mutable()
	if i < 0 || i > v.len {
		return fmt.Errorf("%w: insert at %d with length %d", ErrIndexOutOfRange, i, v.len)
	}
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	s := v.buf.slice(v.len + 1)
	copy(s[i+1:], s[i:v.len])
	s[i] = x
	v.len++
	return nil
}

// Remove takes the value at index i, shifting (i, Len()) one slot left.
func (v *Vec[T]) Remove(i int) (T, bool) {
	v.mutable()
	if v.len == 0 || i < 0 || i >= v.len {
		var zero T
		return zero, false
	}
	s := v.buf.slice(v.len)
	x := s[i]
	copy(s[i:], s[i+1:])
	var zero T
	s[v.len-1] = zero
	v.len--
	return x, true
}

// Slice exposes the live elements. It aliases the buffer and is valid until
// the next call that may grow, shrink or release the Vec.
func (v *Vec[T]) Slice() []T {
	return v.buf.slice(v.len)
}

func (v *Vec[T]) At(i int) T {
	return v.Slice()[i]
}

func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, *v.buf.at(i)) {
				return
			}
		}
	}
}

// Drain empties the Vec and returns its former elements. The Vec rejects
// changes until the drain is released.
func (v *Vec[T]) Drain() *Drain[T] {
	v.mutable()
	d := &Drain[T]{vec: v, it: newRawIter(&v.buf, v.len)}
	v.len = 0
	v.draining = true
	return d
}

// IntoIter moves the buffer and every element into the returned iterator.
// The Vec is left empty and may be reused.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	v.mutable()
	it := &IntoIter[T]{buf: v.buf}
	it.it = newRawIter(&it.buf, v.len)
	v.buf = newRaw[T]()
	v.len = 0
	return it
}

// Release drops every live element and frees the buffer.
func (v *Vec[T]) Release() {
	v.mutable()
	for v.len > 0 {
		v.len--
		alloc.Drop(v.buf.at(v.len))
	}
	v.buf.release()
}
