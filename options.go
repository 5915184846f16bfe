package lzvar

import (
	"fmt"

	"go.uber.org/zap"
)

// Policy selects what happens once the codebook is full.
type Policy uint8

const (
	// PolicyFreeze stops inserting: the codebook becomes immutable and
	// coding continues with the entries already learned.
	PolicyFreeze Policy = iota
	// PolicyReset emits the reserved RESET code and rebuilds the codebook
	// from the alphabet, returning the codeword width to its minimum.
	PolicyReset
	// PolicyLRU evicts the least recently used non-alphabet entry and
	// reuses its code for the new phrase.
	PolicyLRU
	// PolicyLFU evicts the least frequently used non-alphabet entry and
	// reuses its code for the new phrase.
	PolicyLFU
)

// ParsePolicy maps a policy name to its Policy value.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "freeze":
		return PolicyFreeze, nil
	case "reset":
		return PolicyReset, nil
	case "lru":
		return PolicyLRU, nil
	case "lfu":
		return PolicyLFU, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// String returns the policy name as used on the command line.
func (p Policy) String() string {
	switch p {
	case PolicyFreeze:
		return "freeze"
	case PolicyReset:
		return "reset"
	case PolicyLRU:
		return "lru"
	case PolicyLFU:
		return "lfu"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// valid reports whether p is one of the four defined policies. Used when
// replaying a header, where the byte comes off the wire.
func (p Policy) valid() bool {
	return p <= PolicyLFU
}

// Defaults shared with the command-line tool.
const (
	DefaultMinWidth = 9
	DefaultMaxWidth = 16

	// maxWidth caps codeword widths; 2^24 codebook entries is already far
	// beyond any useful configuration and keeps all code arithmetic in int.
	maxWidth = 24
)

// Config holds the tunable parameters of a compression pass.
type Config struct {
	MinWidth uint8 // starting codeword width in bits
	MaxWidth uint8 // widest codeword; the codebook holds at most 2^MaxWidth entries
	Policy   Policy
	Logger   *zap.Logger // optional trace logger, nil for none
}

// Option is a functional option for configuring the codec.
type Option func(*Config)

// WithWidthRange sets the minimum and maximum codeword widths in bits.
func WithWidthRange(min, max uint8) Option {
	return func(c *Config) {
		c.MinWidth = min
		c.MaxWidth = max
	}
}

// WithPolicy sets the eviction policy applied when the codebook fills.
func WithPolicy(p Policy) Option {
	return func(c *Config) {
		c.Policy = p
	}
}

// WithLogger installs a logger for step-level codec tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func newConfig(opts ...Option) Config {
	cfg := Config{
		MinWidth: DefaultMinWidth,
		MaxWidth: DefaultMaxWidth,
		Policy:   PolicyFreeze,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// validate checks the width bounds against the alphabet: every reserved
// code (alphabet, EOF, and RESET under the reset policy) must fit in a
// minimum-width codeword, or the first codewords of the stream could not
// be written.
func (c *Config) validate(alphabetLen int) error {
	if c.MinWidth == 0 || c.MinWidth > c.MaxWidth || c.MaxWidth > maxWidth {
		return fmt.Errorf("%w: minW=%d maxW=%d", ErrInvalidWidth, c.MinWidth, c.MaxWidth)
	}
	if !c.Policy.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, uint8(c.Policy))
	}
	first := firstCode(alphabetLen, c.Policy)
	if 1<<c.MinWidth < first {
		return fmt.Errorf("%w: minW=%d cannot represent %d reserved codes", ErrInvalidWidth, c.MinWidth, first)
	}
	return nil
}
