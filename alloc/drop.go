package alloc

import (
	"reflect"

	"github.com/modern-go/reflect2"
)

// Releaser is implemented by values that own something beyond their memory.
type Releaser interface {
	Release()
}

// Drop destroys the value at p: Release is called when T or *T is a
// Releaser, then the slot is zeroed.
func Drop[T any](p *T) {
	if r, ok := any(*p).(Releaser); ok {
		if !nilPointer(r) {
			r.Release()
		}
	} else if r, ok := any(p).(Releaser); ok {
		r.Release()
	}
	var zero T
	*p = zero
}

// Take moves the value out of p, leaving the slot zeroed.
func Take[T any](p *T) T {
	v := *p
	var zero T
	*p = zero
	return v
}

func nilPointer(v any) bool {
	return reflect2.TypeOf(v).Kind() == reflect.Ptr && reflect2.IsNil(v)
}
