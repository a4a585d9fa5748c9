package aes

import "github.com/avgbassi/uaes/trace"

// BlockSize is the AES block size in bytes. It never varies with the key
// variant; only the number of rounds does.
const BlockSize = 16

// subBytes replaces each byte of the state with its S-box image.
func subBytes(state []byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

// invSubBytes replaces each byte of the state with its inverse S-box image.
func invSubBytes(state []byte) {
	for i := range state {
		state[i] = invSbox[state[i]]
	}
}

// shiftRows cyclically rotates row r of the column-major state left by r
// positions. Byte (row, col) lives at offset 4*col+row.
func shiftRows(state []byte) {
	var row [4]byte
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			row[c] = state[4*((c+r)%4)+r]
		}
		for c := 0; c < 4; c++ {
			state[4*c+r] = row[c]
		}
	}
}

// invShiftRows cyclically rotates row r right by r positions.
func invShiftRows(state []byte) {
	var row [4]byte
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			row[c] = state[4*((c-r+4)%4)+r]
		}
		for c := 0; c < 4; c++ {
			state[4*c+r] = row[c]
		}
	}
}

// mixColumns applies the fixed MDS matrix [[2,3,1,1],[1,2,3,1],[1,1,2,3],[3,1,1,2]]
// to each column of the state, in GF(2^8).
func mixColumns(state []byte) {
	for c := 0; c < 4; c++ {
		off := 4 * c
		a0, a1, a2, a3 := state[off], state[off+1], state[off+2], state[off+3]
		state[off+0] = gfMul(0x02, a0) ^ gfMul(0x03, a1) ^ a2 ^ a3
		state[off+1] = a0 ^ gfMul(0x02, a1) ^ gfMul(0x03, a2) ^ a3
		state[off+2] = a0 ^ a1 ^ gfMul(0x02, a2) ^ gfMul(0x03, a3)
		state[off+3] = gfMul(0x03, a0) ^ a1 ^ a2 ^ gfMul(0x02, a3)
	}
}

// invMixColumns applies the inverse MDS matrix
// [[0x0E,0x0B,0x0D,0x09],[0x09,0x0E,0x0B,0x0D],[0x0D,0x09,0x0E,0x0B],[0x0B,0x0D,0x09,0x0E]].
func invMixColumns(state []byte) {
	for c := 0; c < 4; c++ {
		off := 4 * c
		a0, a1, a2, a3 := state[off], state[off+1], state[off+2], state[off+3]
		state[off+0] = gfMul(0x0e, a0) ^ gfMul(0x0b, a1) ^ gfMul(0x0d, a2) ^ gfMul(0x09, a3)
		state[off+1] = gfMul(0x09, a0) ^ gfMul(0x0e, a1) ^ gfMul(0x0b, a2) ^ gfMul(0x0d, a3)
		state[off+2] = gfMul(0x0d, a0) ^ gfMul(0x09, a1) ^ gfMul(0x0e, a2) ^ gfMul(0x0b, a3)
		state[off+3] = gfMul(0x0b, a0) ^ gfMul(0x0d, a1) ^ gfMul(0x09, a2) ^ gfMul(0x0e, a3)
	}
}

// addRoundKey XORs the state with the four key-schedule words at round*Nb.
// Each 32-bit schedule word is applied to its state column in big-endian
// byte order (most significant byte to row 0).
func addRoundKey(state []byte, sched []uint32, round, nb int) {
	for c := 0; c < nb; c++ {
		w := sched[round*nb+c]
		state[4*c+0] ^= byte(w >> 24)
		state[4*c+1] ^= byte(w >> 16)
		state[4*c+2] ^= byte(w >> 8)
		state[4*c+3] ^= byte(w)
	}
}

// encryptBlock runs the forward cipher on a 16-byte state in place, per
// FIPS-197 §5.1, reporting each stage to obs (which may be nil).
func encryptBlock(state []byte, sched []uint32, nr, nb int, obs trace.Observer) {
	trace.Dispatch(obs, trace.StageInitial, 0, state)
	addRoundKey(state, sched, 0, nb)
	trace.Dispatch(obs, trace.StageAddRoundKey, 0, state)

	for round := 1; round < nr; round++ {
		subBytes(state)
		trace.Dispatch(obs, trace.StageSubBytes, round, state)
		shiftRows(state)
		trace.Dispatch(obs, trace.StageShiftRows, round, state)
		mixColumns(state)
		trace.Dispatch(obs, trace.StageMixColumns, round, state)
		addRoundKey(state, sched, round, nb)
		trace.Dispatch(obs, trace.StageAddRoundKey, round, state)
	}

	subBytes(state)
	trace.Dispatch(obs, trace.StageSubBytes, nr, state)
	shiftRows(state)
	trace.Dispatch(obs, trace.StageShiftRows, nr, state)
	addRoundKey(state, sched, nr, nb)
	trace.Dispatch(obs, trace.StageAddRoundKey, nr, state)
}

// decryptBlock runs the inverse cipher on a 16-byte state in place.
func decryptBlock(state []byte, sched []uint32, nr, nb int, obs trace.Observer) {
	trace.Dispatch(obs, trace.StageInitial, nr, state)
	addRoundKey(state, sched, nr, nb)
	trace.Dispatch(obs, trace.StageInvAddRoundKey, nr, state)

	for round := nr - 1; round > 0; round-- {
		invShiftRows(state)
		trace.Dispatch(obs, trace.StageInvShiftRows, round, state)
		invSubBytes(state)
		trace.Dispatch(obs, trace.StageInvSubBytes, round, state)
		addRoundKey(state, sched, round, nb)
		trace.Dispatch(obs, trace.StageInvAddRoundKey, round, state)
		invMixColumns(state)
		trace.Dispatch(obs, trace.StageInvMixColumns, round, state)
	}

	invShiftRows(state)
	trace.Dispatch(obs, trace.StageInvShiftRows, 0, state)
	invSubBytes(state)
	trace.Dispatch(obs, trace.StageInvSubBytes, 0, state)
	addRoundKey(state, sched, 0, nb)
	trace.Dispatch(obs, trace.StageInvAddRoundKey, 0, state)
}
