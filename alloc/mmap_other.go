//go:build !linux

package alloc

const Mappable = false

func Map(size int) []byte {
	panic("alloc: mmap is not supported on this platform")
}

func Remap(mem []byte, size int) []byte {
	panic("alloc: mremap is not supported on this platform")
}

func Unmap(mem []byte) {
	panic("alloc: munmap is not supported on this platform")
}
