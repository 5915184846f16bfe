package lzvar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWidth indicates the configured codeword width bounds are
	// unusable: out of range, inverted, or too narrow to represent the
	// alphabet plus the reserved codes.
	ErrInvalidWidth = errors.New("lzvar: invalid codeword width bounds")
	// ErrEmptyAlphabet indicates an alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("lzvar: alphabet is empty")
	// ErrAlphabetTooLarge indicates an alphabet beyond 65535 symbols.
	ErrAlphabetTooLarge = errors.New("lzvar: alphabet exceeds 65535 symbols")
	// ErrUnknownPolicy indicates an unrecognized eviction policy name or code.
	ErrUnknownPolicy = errors.New("lzvar: unknown eviction policy")
)

// AlphabetViolationError reports an input byte, seen during compression,
// that is not a symbol of the configured alphabet.
type AlphabetViolationError struct {
	Byte   byte
	Offset int64 // input offset of the offending byte
}

func (e *AlphabetViolationError) Error() string {
	return fmt.Sprintf("lzvar: input byte 0x%02x at offset %d is not in the alphabet", e.Byte, e.Offset)
}

// CorruptStreamError reports a compressed stream the decoder cannot replay:
// a codeword beyond the range of live codes, a malformed header, or a
// stream that ends before the EOF codeword.
type CorruptStreamError struct {
	Reason string
	Err    error // underlying I/O error, if any
}

func (e *CorruptStreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lzvar: corrupt stream: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("lzvar: corrupt stream: %s", e.Reason)
}

func (e *CorruptStreamError) Unwrap() error {
	return e.Err
}

func corruptf(format string, args ...any) error {
	return &CorruptStreamError{Reason: fmt.Sprintf(format, args...)}
}

func corruptRead(what string, err error) error {
	return &CorruptStreamError{Reason: "short read of " + what, Err: err}
}
