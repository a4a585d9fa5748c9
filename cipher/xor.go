package cipher

import "crypto/subtle"

// xorInto XORs a and b into dst, all the same length. Exactly one block
// (16 bytes) at a time in this package, so the scalar loop is the common
// case, but subtle.XORBytes is used at sizes where it has room to vectorize.
func xorInto(dst, a, b []byte) {
	if len(dst) > 16 {
		subtle.XORBytes(dst, a, b)
		return
	}
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
