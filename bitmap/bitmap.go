// Package bitmap manipulates flat bit sets stored in []uint32.
package bitmap

import "math/bits"

// Words returns how many uint32 words hold n bits.
func Words(n int) int {
	return (n + 31) / 32
}

func Set(u []uint32, id int) bool {
	k, b := id/32, uint32(1)<<uint32(id&31)
	v := u[k]
	if v&b == 0 {
		u[k] = v | b
		return true
	}
	return false
}

func Unset(u []uint32, id int) bool {
	k, b := id/32, uint32(1)<<uint32(id&31)
	v := u[k]
	if v&b != 0 {
		u[k] = v ^ b
		return true
	}
	return false
}

func Has(u []uint32, id int) bool {
	k, b := id/32, uint32(1)<<uint32(id&31)
	return u[k]&b != 0
}

func Count(u []uint32) int {
	n := 0
	for _, v := range u {
		n += bits.OnesCount32(v)
	}
	return n
}
