package cipher

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error taxonomy this package reports
// through: every rejected call, regardless of mode or which argument is at
// fault, returns an error that wraps ErrInvalidArgument (and, where the
// underlying cause originated in package aes, aes.ErrInvalidArgument too).
var ErrInvalidArgument = errors.New("cipher: invalid argument")

// MaxBufferSize is the largest buffer any entry point in this package will
// operate on. It is a compile-time constant, not a runtime knob: every
// EncryptECB/DecryptECB/EncryptCBC/DecryptCBC call rejects size > MaxBufferSize
// outright.
const MaxBufferSize = 64

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func wrapAES(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
