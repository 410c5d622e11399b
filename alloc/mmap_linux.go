//go:build linux

package alloc

import (
	"golang.org/x/sys/unix"
)

// Mappable is true when Map, Remap and Unmap are backed by the kernel.
const Mappable = true

// Map returns a zeroed anonymous private mapping of size bytes.
func Map(size int) []byte {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		Fatalf("alloc: mmap %d bytes: %v", size, err)
	}
	return mem
}

// Remap resizes a mapping returned by Map or Remap. Contents up to the
// smaller of both sizes are preserved; the mapping may move.
func Remap(mem []byte, size int) []byte {
	nmem, err := unix.Mremap(mem, size, unix.MREMAP_MAYMOVE)
	if err != nil {
		Fatalf("alloc: mremap %d -> %d bytes: %v", len(mem), size, err)
	}
	return nmem
}

func Unmap(mem []byte) {
	if err := unix.Munmap(mem); err != nil {
		Fatalf("alloc: munmap %d bytes: %v", len(mem), err)
	}
}
