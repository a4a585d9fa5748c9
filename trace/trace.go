// Package trace provides an optional, zero-overhead-when-disabled observer
// hook for the AES round function, plus read-only CPU capability detection
// for diagnostic use.
//
// None of this is part of the cryptographic contract: an Observer may
// inspect the state between round stages but must not influence the result
// of an encrypt or decrypt call. It is handed the live state slice, not a
// copy, so it must not write to it.
package trace

import "fmt"

// Stage identifies a point in the forward or inverse cipher at which an
// Observer is invoked.
type Stage int

const (
	// StageInitial fires once per block, before the first AddRoundKey
	// (round 0 when encrypting, round Nr when decrypting).
	StageInitial Stage = iota
	StageSubBytes
	StageShiftRows
	StageMixColumns
	StageAddRoundKey
	StageInvSubBytes
	StageInvShiftRows
	StageInvMixColumns
	StageInvAddRoundKey
	// StageInvalid fires when an aes or cipher package entry point rejects
	// its arguments, before the buffer is touched. It is dispatched with a
	// nil block.
	StageInvalid
)

func (s Stage) String() string {
	switch s {
	case StageInitial:
		return "initial"
	case StageSubBytes:
		return "sub_bytes"
	case StageShiftRows:
		return "shift_rows"
	case StageMixColumns:
		return "mix_columns"
	case StageAddRoundKey:
		return "add_round_key"
	case StageInvSubBytes:
		return "inv_sub_bytes"
	case StageInvShiftRows:
		return "inv_shift_rows"
	case StageInvMixColumns:
		return "inv_mix_columns"
	case StageInvAddRoundKey:
		return "inv_add_round_key"
	case StageInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Observer is invoked by the block transform after each stage completes. The
// block slice is exactly 16 bytes (nil for StageInvalid) and must not be
// retained or mutated by the Observer; it is reused by the caller on the very
// next stage.
type Observer interface {
	OnStage(stage Stage, round int, block []byte)
}

// NopObserver discards every call. It is the zero value's effective
// behavior; a nil Observer is also safe to invoke through Dispatch and
// behaves identically.
type NopObserver struct{}

// OnStage implements Observer.
func (NopObserver) OnStage(Stage, int, []byte) {}

// Dispatch calls obs.OnStage if obs is non-nil. The block transform calls
// this after every stage; when obs is nil the call compiles down to a single
// nil check, which is the "zero overhead when disabled" the design calls for.
func Dispatch(obs Observer, stage Stage, round int, block []byte) {
	if obs == nil {
		return
	}
	obs.OnStage(stage, round, block)
}
