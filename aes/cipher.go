// Package aes implements the AES (Rijndael) block cipher primitive: field
// arithmetic and lookup tables, the per-round block transform, and the key
// schedule, for the three FIPS-197 key sizes. It operates on single 16-byte
// blocks; composing blocks into ECB or CBC buffers is the job of the
// sibling cipher package.
package aes

import (
	"errors"
	"fmt"

	"github.com/avgbassi/uaes/trace"
)

// ErrInvalidArgument is the sentinel error for every rejected input this
// package reports: a nil buffer or key, a size outside 1..BlockSize, a bad
// key length, an unknown variant, or a buffer too short to hold BlockSize
// bytes.
var ErrInvalidArgument = errors.New("aes: invalid argument")

// KeySizeError reports that a caller-supplied key did not match any of the
// three supported AES key lengths. It wraps ErrInvalidArgument so callers
// can match on either the specific type or the sentinel.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("aes: invalid key size %d", int(k))
}

func (k KeySizeError) Unwrap() error { return ErrInvalidArgument }

// Cipher is a single-key, single-variant AES instance. It holds its variant,
// the expanded round-key schedule and an optional Observer; EncryptBlock/DecryptBlock
// never mutate any state but the caller-supplied buffers, so a *Cipher is
// safe for concurrent use by multiple goroutines.
type Cipher struct {
	variant Variant
	sched   []uint32

	// Observer, if set, is invoked between every round stage of every
	// EncryptBlock/DecryptBlock call. Nil (the default) costs nothing.
	Observer trace.Observer
}

// NewCipher builds a Cipher from key, inferring the variant from key's
// length (16, 24, or 32 bytes select AES-128, AES-192, or AES-256).
func NewCipher(key []byte) (*Cipher, error) {
	variant, ok := variantByKeyLen(len(key))
	if !ok {
		return nil, KeySizeError(len(key))
	}
	return NewCipherVariant(key, variant)
}

// NewCipherVariant builds a Cipher from key for an explicitly stated
// variant, rejecting a key whose length does not match that variant.
func NewCipherVariant(key []byte, variant Variant) (*Cipher, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidArgument, int(variant))
	}
	if len(key) != variant.KeySize() {
		return nil, KeySizeError(len(key))
	}
	p := variantParams[variant]
	return &Cipher{
		variant: variant,
		sched:   keyExpansion(key, p.Nk, p.Nb, p.Nr),
	}, nil
}

// Variant reports which AES variant this Cipher was built for.
func (c *Cipher) Variant() Variant { return c.variant }

// BlockSize returns the cipher's block size in bytes (always 16 for AES).
func (c *Cipher) BlockSize() int { return BlockSize }

// EncryptBlock encrypts the first BlockSize bytes of src into dst. dst and
// src must overlap entirely (in-place) or not at all; either slice being
// shorter than BlockSize is a programmer error and panics, matching the
// convention of general-purpose Go block-cipher types.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	var state [BlockSize]byte
	copy(state[:], src[:BlockSize])
	p := variantParams[c.variant]
	encryptBlock(state[:], c.sched, p.Nr, p.Nb, c.Observer)
	copy(dst[:BlockSize], state[:])
}

// DecryptBlock decrypts the first BlockSize bytes of src into dst, under
// the same aliasing and sizing rules as EncryptBlock.
func (c *Cipher) DecryptBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	var state [BlockSize]byte
	copy(state[:], src[:BlockSize])
	p := variantParams[c.variant]
	decryptBlock(state[:], c.sched, p.Nr, p.Nb, c.Observer)
	copy(dst[:BlockSize], state[:])
}

// Zero overwrites the round-key schedule in place. Long-lived callers that
// hold onto a *Cipher beyond a single call are encouraged, but not
// required, to call Zero when they are done with it; the cipher package's
// own entry points call it automatically on their call-local instances.
func (c *Cipher) Zero() {
	zeroSchedule(c.sched)
}

// EncryptBlock encrypts exactly one block in place: buffer[:BlockSize] is
// overwritten with the ciphertext. size (1..BlockSize) is the caller's
// logical (pre-padding) length; it is validated but does not change how
// many bytes are processed — the full aligned block is always transformed,
// per §4.4's block-walk rule. obs, if non-nil, observes every round stage of
// the transform, or is dispatched once with trace.StageInvalid if validation
// rejects the call.
func EncryptBlock(buffer, key []byte, size int, obs trace.Observer) error {
	c, err := checkSingleBlock(buffer, key, size, obs)
	if err != nil {
		return err
	}
	c.Observer = obs
	c.EncryptBlock(buffer, buffer)
	c.Zero()
	return nil
}

// DecryptBlock decrypts exactly one block in place, under the same
// contract as EncryptBlock.
func DecryptBlock(buffer, key []byte, size int, obs trace.Observer) error {
	c, err := checkSingleBlock(buffer, key, size, obs)
	if err != nil {
		return err
	}
	c.Observer = obs
	c.DecryptBlock(buffer, buffer)
	c.Zero()
	return nil
}

func checkSingleBlock(buffer, key []byte, size int, obs trace.Observer) (*Cipher, error) {
	if buffer == nil {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	if key == nil {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	if size <= 0 || size > BlockSize {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, fmt.Errorf("%w: size %d out of range (1..%d)", ErrInvalidArgument, size, BlockSize)
	}
	if len(buffer) < BlockSize {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, fmt.Errorf("%w: buffer shorter than block size", ErrInvalidArgument)
	}
	c, err := NewCipher(key)
	if err != nil {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}
	return c, nil
}
