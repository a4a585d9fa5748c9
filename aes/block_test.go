package aes

import "testing"

func TestSubBytesInverse(t *testing.T) {
	var state [BlockSize]byte
	for i := range state {
		state[i] = byte(i * 17)
	}
	want := state
	subBytes(state[:])
	invSubBytes(state[:])
	if state != want {
		t.Errorf("invSubBytes(subBytes(state)) = %x, want %x", state, want)
	}
}

func TestShiftRowsInverse(t *testing.T) {
	var state [BlockSize]byte
	for i := range state {
		state[i] = byte(i + 1)
	}
	want := state
	shiftRows(state[:])
	invShiftRows(state[:])
	if state != want {
		t.Errorf("invShiftRows(shiftRows(state)) = %x, want %x", state, want)
	}
}

func TestMixColumnsInverse(t *testing.T) {
	var state [BlockSize]byte
	for i := range state {
		state[i] = byte(i * 53)
	}
	want := state
	mixColumns(state[:])
	invMixColumns(state[:])
	if state != want {
		t.Errorf("invMixColumns(mixColumns(state)) = %x, want %x", state, want)
	}
}

// TestShiftRowsKnownVector checks the documented row-rotation direction: row
// r moves left by r, using distinct values so a transposition would be
// caught.
func TestShiftRowsKnownVector(t *testing.T) {
	state := [BlockSize]byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}
	shiftRows(state[:])
	want := [BlockSize]byte{
		0, 5, 10, 15,
		4, 9, 14, 3,
		8, 13, 2, 7,
		12, 1, 6, 11,
	}
	if state != want {
		t.Errorf("shiftRows = %v, want %v", state, want)
	}
}

// TestFIPS197AllZero exercises the first-round stages on an all-zero state,
// whose output is easy to verify by hand: SubBytes maps 0 to the S-box's
// entry at index 0 (0x63), and ShiftRows and MixColumns are both no-ops on a
// uniform block.
func TestFIPS197AllZero(t *testing.T) {
	var state [BlockSize]byte
	subBytes(state[:])
	for _, b := range state {
		if b != 0x63 {
			t.Fatalf("subBytes(all-zero) contains %#x, want 0x63 throughout", b)
		}
	}
	shiftRows(state[:])
	for _, b := range state {
		if b != 0x63 {
			t.Fatalf("shiftRows of a uniform block changed a byte to %#x", b)
		}
	}
	mixColumns(state[:])
	for _, b := range state {
		if b != 0x63 {
			t.Fatalf("mixColumns of a uniform block changed a byte to %#x", b)
		}
	}
}

func TestEncryptDecryptBlockRoundTrip(t *testing.T) {
	sched := keyExpansion(make([]byte, 16), 4, 4, 10)
	var state [BlockSize]byte
	for i := range state {
		state[i] = byte(i * 29)
	}
	want := state
	encryptBlock(state[:], sched, 10, 4, nil)
	if state == want {
		t.Fatal("encryptBlock left the state unchanged")
	}
	decryptBlock(state[:], sched, 10, 4, nil)
	if state != want {
		t.Errorf("decryptBlock(encryptBlock(state)) = %x, want %x", state, want)
	}
}

func TestGFMulIdentity(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := gfMul(byte(a), 1); got != byte(a) {
			t.Errorf("gfMul(%#x, 1) = %#x, want %#x", a, got, a)
		}
		if got := gfMul(byte(a), 0); got != 0 {
			t.Errorf("gfMul(%#x, 0) = %#x, want 0", a, got)
		}
	}
}

func TestGFMulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			if x, y := gfMul(byte(a), byte(b)), gfMul(byte(b), byte(a)); x != y {
				t.Errorf("gfMul(%#x,%#x) = %#x, gfMul(%#x,%#x) = %#x", a, b, x, b, a, y)
			}
		}
	}
}
