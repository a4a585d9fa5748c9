// Cipher block chaining (CBC) mode.
//
// CBC provides confidentiality by xoring (chaining) each plaintext block
// with the previous ciphertext block before applying the block cipher.
//
// See NIST SP 800-38A, pp 10-11.
package cipher

import (
	"github.com/avgbassi/uaes/aes"
	"github.com/avgbassi/uaes/trace"
)

// EncryptCBC encrypts buffer[:ceil(size/BlockSize)*BlockSize] in place under
// CBC: block i is XORed with the ciphertext of block i-1 (iv standing in for
// block -1) before being encrypted, chaining every block's output into the
// next block's input. Changing a single byte anywhere in the plaintext, or
// in iv, changes every ciphertext block from that point on. iv must be
// exactly aes.BlockSize bytes and is read, never modified. obs, if non-nil,
// observes every round stage of every block, or is dispatched once with
// trace.StageInvalid if validation rejects the call.
func EncryptCBC(buffer, key, iv []byte, size int, variant aes.Variant, obs trace.Observer) error {
	c, err := checkBuffer(buffer, key, size, variant, obs)
	if err != nil {
		return err
	}
	defer c.Zero()
	if len(iv) != aes.BlockSize {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return invalidArgument("iv length %d, want %d", len(iv), aes.BlockSize)
	}

	prev := dup(iv)
	for off := 0; off < numBlocks(size)*aes.BlockSize; off += aes.BlockSize {
		block := buffer[off : off+aes.BlockSize]
		xorInto(block, block, prev)
		c.EncryptBlock(block, block)
		prev = block
	}
	return nil
}

// DecryptCBC decrypts buffer[:ceil(size/BlockSize)*BlockSize] in place under
// CBC, under the same contract as EncryptCBC. Each ciphertext block must be
// XORed with the *original* ciphertext of the block before it, so that
// block is saved off before it gets overwritten with plaintext.
func DecryptCBC(buffer, key, iv []byte, size int, variant aes.Variant, obs trace.Observer) error {
	c, err := checkBuffer(buffer, key, size, variant, obs)
	if err != nil {
		return err
	}
	defer c.Zero()
	if len(iv) != aes.BlockSize {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return invalidArgument("iv length %d, want %d", len(iv), aes.BlockSize)
	}

	prev := dup(iv)
	var saved [aes.BlockSize]byte
	for off := 0; off < numBlocks(size)*aes.BlockSize; off += aes.BlockSize {
		block := buffer[off : off+aes.BlockSize]
		copy(saved[:], block)
		c.DecryptBlock(block, block)
		xorInto(block, block, prev)
		copy(prev, saved[:])
	}
	return nil
}
