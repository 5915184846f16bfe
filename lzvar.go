package lzvar

import (
	"io"
)

// Reserved code layout. The alphabet occupies codes 0..len-1, EOF follows
// it, RESET exists only under the reset policy, and learned phrases start
// immediately after.

func eofCode(alphabetLen int) int {
	return alphabetLen
}

func resetCode(alphabetLen int) int {
	return alphabetLen + 1
}

func firstCode(alphabetLen int, p Policy) int {
	if p == PolicyReset {
		return alphabetLen + 2
	}
	return alphabetLen + 1
}

// An Encoder compresses byte streams over a fixed alphabet. It is cheap to
// construct; all per-pass state lives inside Compress, so one Encoder may
// run any number of sequential passes.
type Encoder struct {
	config   Config
	alphabet *Alphabet

	// test instrumentation, invoked on codebook mutations
	onInsert func(code int)
	onEvict  func(code int)
	onReset  func()
}

// NewEncoder creates an encoder for the given alphabet, validating the
// configured width bounds against it.
func NewEncoder(alphabet *Alphabet, opts ...Option) (*Encoder, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(alphabet.Len()); err != nil {
		return nil, err
	}
	return &Encoder{config: cfg, alphabet: alphabet}, nil
}

// A Decoder expands compressed streams. Every parameter it needs — width
// bounds, policy, alphabet — is replayed from the stream header, so a
// Decoder takes no configuration beyond an optional logger.
type Decoder struct {
	config Config

	onInsert func(code int)
	onEvict  func(code int)
	onReset  func()
}

// NewDecoder creates a decoder.
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{config: newConfig(opts...)}
}

// Compress is a convenience wrapper that runs a single compression pass.
func Compress(dst io.Writer, src io.Reader, alphabet *Alphabet, opts ...Option) error {
	enc, err := NewEncoder(alphabet, opts...)
	if err != nil {
		return err
	}
	return enc.Compress(dst, src)
}

// Expand is a convenience wrapper that runs a single expansion pass.
func Expand(dst io.Writer, src io.Reader, opts ...Option) error {
	return NewDecoder(opts...).Expand(dst, src)
}
