package vec

import (
	"iter"

	"github.com/funny-falcon/rawmem/alloc"
)

// rawIter walks [start, end) of a buffer, moving values out from either end.
type rawIter[T any] struct {
	buf        *raw[T]
	start, end int
}

func newRawIter[T any](buf *raw[T], n int) rawIter[T] {
	return rawIter[T]{buf: buf, end: n}
}

func (it *rawIter[T]) next() (T, bool) {
	if it.start == it.end {
		var zero T
		return zero, false
	}
	x := alloc.Take(it.buf.at(it.start))
	it.start++
	return x, true
}

func (it *rawIter[T]) nextBack() (T, bool) {
	if it.start == it.end {
		var zero T
		return zero, false
	}
	it.end--
	return alloc.Take(it.buf.at(it.end)), true
}

func (it *rawIter[T]) len() int { return it.end - it.start }

func (it *rawIter[T]) dropRest() {
	for ; it.start < it.end; it.start++ {
		alloc.Drop(it.buf.at(it.start))
	}
}

func seq[T any](next func() (T, bool), release func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer release()
		for {
			x, ok := next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Drain yields the elements a Vec held when Drain was called.
type Drain[T any] struct {
	vec *Vec[T]
	it  rawIter[T]
}

func (d *Drain[T]) Next() (T, bool)     { return d.it.next() }
func (d *Drain[T]) NextBack() (T, bool) { return d.it.nextBack() }
func (d *Drain[T]) Len() int            { return d.it.len() }

// Release drops the elements that were not consumed and hands the Vec
// back to its owner. Calling it again is a no-op.
func (d *Drain[T]) Release() {
	if d.vec == nil {
		return
	}
	d.it.dropRest()
	d.vec.draining = false
	d.vec = nil
}

// All ranges front to back and releases the drain when the loop ends,
// including on break.
func (d *Drain[T]) All() iter.Seq[T] {
	return seq(d.Next, d.Release)
}

func (d *Drain[T]) Backward() iter.Seq[T] {
	return seq(d.NextBack, d.Release)
}

// IntoIter owns the buffer and elements of a former Vec.
type IntoIter[T any] struct {
	buf      raw[T]
	it       rawIter[T]
	released bool
}

func (it *IntoIter[T]) Next() (T, bool)     { return it.it.next() }
func (it *IntoIter[T]) NextBack() (T, bool) { return it.it.nextBack() }
func (it *IntoIter[T]) Len() int            { return it.it.len() }

// Release drops the remaining elements, then frees the buffer.
func (it *IntoIter[T]) Release() {
	if it.released {
		return
	}
	it.released = true
	it.it.dropRest()
	it.buf.release()
}

func (it *IntoIter[T]) All() iter.Seq[T] {
	return seq(it.Next, it.Release)
}

func (it *IntoIter[T]) Backward() iter.Seq[T] {
	return seq(it.NextBack, it.Release)
}
