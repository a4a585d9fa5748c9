package cipher

import (
	"github.com/avgbassi/uaes/aes"
	"github.com/avgbassi/uaes/trace"
)

// numBlocks returns how many aes.BlockSize-aligned blocks a logical length
// of size bytes occupies, rounding up.
func numBlocks(size int) int {
	return (size + aes.BlockSize - 1) / aes.BlockSize
}

// checkBuffer runs the common validation rules shared by every mode entry
// point: non-nil buffer and key, size in range, a backing buffer large
// enough to hold the block-aligned walk, and a key that matches variant. On
// success it returns a call-local *aes.Cipher built from key, with obs
// already attached to it; the caller is responsible for zeroing it (via
// Cipher.Zero) once done. Validation runs to completion before anything is
// built, so a rejected call never touches the buffer and never allocates a
// schedule; obs, if non-nil, is dispatched exactly once with
// trace.StageInvalid on whichever check rejects the call.
func checkBuffer(buffer, key []byte, size int, variant aes.Variant, obs trace.Observer) (*aes.Cipher, error) {
	if buffer == nil {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, invalidArgument("nil buffer")
	}
	if key == nil {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, invalidArgument("nil key")
	}
	if size <= 0 || size > MaxBufferSize {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, invalidArgument("size %d out of range (1..%d)", size, MaxBufferSize)
	}
	if !variant.Valid() {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, invalidArgument("unknown variant %d", int(variant))
	}
	need := numBlocks(size) * aes.BlockSize
	if len(buffer) < need {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, invalidArgument("buffer too short: have %d, need %d", len(buffer), need)
	}
	c, err := aes.NewCipherVariant(key, variant)
	if err != nil {
		trace.Dispatch(obs, trace.StageInvalid, 0, nil)
		return nil, wrapAES(err)
	}
	c.Observer = obs
	return c, nil
}
