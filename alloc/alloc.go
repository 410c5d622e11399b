package alloc

import (
	"log"
	"math"
	"math/bits"
	"reflect"

	"github.com/modern-go/reflect2"
)

// Fatalf terminates the process. Allocation failure, size overflow and
// reference count overflow are never reported to the caller.
var Fatalf = log.Fatalf

// ArrayBytes returns n*elemSize, aborting if it does not fit into an int.
func ArrayBytes(elemSize uintptr, n int) int {
	if n < 0 {
		Fatalf("alloc: negative element count %d", n)
	}
	hi, lo := bits.Mul64(uint64(elemSize), uint64(n))
	if hi != 0 || lo > math.MaxInt {
		Fatalf("alloc: %d elements of %d bytes overflow", n, elemSize)
	}
	return int(lo)
}

// PointerFree reports whether values of T hold no Go pointers, so they may
// live in memory the garbage collector does not scan.
func PointerFree[T any]() bool {
	typ := reflect2.TypeOfPtr((*T)(nil)).Elem()
	return pointerFree(typ.Type1())
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}
