package cipher

import (
	"github.com/avgbassi/uaes/aes"
	"github.com/avgbassi/uaes/trace"
)

// EncryptECB encrypts buffer[:ceil(size/BlockSize)*BlockSize] in place under
// ECB: each block is encrypted independently under key, so identical
// plaintext blocks always produce identical ciphertext blocks. That locality
// is ECB's defining property and its defining weakness; callers wanting to
// hide repeated-block structure want EncryptCBC instead. obs, if non-nil,
// observes every round stage of every block, or is dispatched once with
// trace.StageInvalid if validation rejects the call.
func EncryptECB(buffer, key []byte, size int, variant aes.Variant, obs trace.Observer) error {
	c, err := checkBuffer(buffer, key, size, variant, obs)
	if err != nil {
		return err
	}
	defer c.Zero()
	for off := 0; off < numBlocks(size)*aes.BlockSize; off += aes.BlockSize {
		block := buffer[off : off+aes.BlockSize]
		c.EncryptBlock(block, block)
	}
	return nil
}

// DecryptECB decrypts buffer[:ceil(size/BlockSize)*BlockSize] in place under
// ECB, under the same contract as EncryptECB.
func DecryptECB(buffer, key []byte, size int, variant aes.Variant, obs trace.Observer) error {
	c, err := checkBuffer(buffer, key, size, variant, obs)
	if err != nil {
		return err
	}
	defer c.Zero()
	for off := 0; off < numBlocks(size)*aes.BlockSize; off += aes.BlockSize {
		block := buffer[off : off+aes.BlockSize]
		c.DecryptBlock(block, block)
	}
	return nil
}
