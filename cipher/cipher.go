// Package cipher implements the AES mode driver: the literal
// buffer-size-bounded, in-place ECB and CBC entry points this core exposes
// to callers, built on top of the block primitive in package aes.
//
// See http://csrc.nist.gov/groups/ST/toolkit/BCM/current_modes.html and
// NIST Special Publication 800-38A for the modes themselves.
package cipher

// dup returns a fresh copy of p, used to snapshot a caller-owned IV before
// a CBC call starts mutating its own local copy.
func dup(p []byte) []byte {
	q := make([]byte, len(p))
	copy(q, p)
	return q
}
