package vec

import (
	"unsafe"

	"github.com/funny-falcon/rawmem/alloc"
)

// dangling is the address of an empty buffer. It is never dereferenced
// for non-zero-sized elements.
var dangling uintptr

const (
	backendUnknown uint8 = iota
	backendHeap
	backendMapped
	backendZero
)

// raw owns one allocation able to hold cap values of T. It knows nothing
// about which slots are initialized.
type raw[T any] struct {
	ptr     unsafe.Pointer
	cap     int
	mem     []byte // mapping behind ptr, backendMapped only
	backend uint8
}

func newRaw[T any]() raw[T] {
	return raw[T]{ptr: unsafe.Pointer(&dangling)}
}

func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func (r *raw[T]) chooseBackend() {
	switch {
	case elemSize[T]() == 0:
		r.backend = backendZero
	case alloc.Mappable && alloc.PointerFree[T]():
		r.backend = backendMapped
	default:
		r.backend = backendHeap
	}
}

// grow doubles the capacity, or makes it 1 when the buffer is empty.
// Bytes of the previous allocation are carried over.
func (r *raw[T]) grow() {
	if r.backend == backendUnknown {
		r.chooseBackend()
	}
	ncap := 1
	if r.cap != 0 {
		ncap = 2 * r.cap
		if ncap < r.cap {
			alloc.Fatalf("vec: capacity overflow at %d elements", r.cap)
		}
	}
	size := alloc.ArrayBytes(elemSize[T](), ncap)

	switch r.backend {
	case backendZero:
		r.ptr = unsafe.Pointer(&dangling)
	case backendMapped:
		if r.cap == 0 {
			r.mem = alloc.Map(size)
		} else {
			r.mem = alloc.Remap(r.mem, size)
		}
		r.ptr = unsafe.Pointer(&r.mem[0])
	case backendHeap:
		var grown []T
		if r.cap == 0 {
			grown = make([]T, ncap)
		} else {
			old := unsafe.Slice((*T)(r.ptr), r.cap)
			grown = append(old, make([]T, ncap-r.cap)...)
		}
		r.ptr = unsafe.Pointer(unsafe.SliceData(grown))
	}
	r.cap = ncap
}

func (r *raw[T]) at(i int) *T {
	return (*T)(unsafe.Add(r.ptr, uintptr(i)*elemSize[T]()))
}

// slice views the first n slots.
func (r *raw[T]) slice(n int) []T {
	if r.cap == 0 {
		return nil
	}
	return unsafe.Slice((*T)(r.ptr), r.cap)[:n]
}

// release frees the allocation regardless of slot contents and leaves
// an empty buffer behind.
func (r *raw[T]) release() {
	if r.backend == backendMapped && r.mem != nil {
		alloc.Unmap(r.mem)
	}
	backend := r.backend
	*r = newRaw[T]()
	r.backend = backend
}
