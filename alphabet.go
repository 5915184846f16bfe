package lzvar

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const maxAlphabetSize = 65535

// Alphabet is an ordered set of byte symbols. A symbol's position is its
// code: codes 0..Len()-1 are permanent and are never evicted or reassigned
// for the lifetime of a codebook.
type Alphabet struct {
	symbols []byte
	code    [256]int32 // symbol -> code, -1 if absent
}

// NewAlphabet builds an alphabet from symbols in order. Duplicates are
// ignored, first occurrence wins. The result must hold at least one and at
// most 65535 symbols.
func NewAlphabet(symbols []byte) (*Alphabet, error) {
	a := &Alphabet{}
	for i := range a.code {
		a.code[i] = -1
	}
	for _, s := range symbols {
		if a.code[s] >= 0 {
			continue
		}
		a.code[s] = int32(len(a.symbols))
		a.symbols = append(a.symbols, s)
	}
	if len(a.symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if len(a.symbols) > maxAlphabetSize {
		return nil, ErrAlphabetTooLarge
	}
	return a, nil
}

// ParseAlphabet reads an alphabet file: one symbol per line, of which only
// the first byte is used; carriage returns before the line break are
// stripped; empty lines are skipped; duplicates are ignored. CR and LF are
// always included ahead of the file's symbols so that line-structured
// input is encodable regardless of the file's contents.
func ParseAlphabet(r io.Reader) (*Alphabet, error) {
	symbols := []byte{'\r', '\n'}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Bytes()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		if len(line) == 0 {
			continue
		}
		symbols = append(symbols, line[0])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lzvar: reading alphabet: %w", err)
	}
	return NewAlphabet(symbols)
}

// LoadAlphabet reads an alphabet file from disk. See ParseAlphabet for the
// format.
func LoadAlphabet(path string) (*Alphabet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lzvar: loading alphabet: %w", err)
	}
	defer f.Close()
	return ParseAlphabet(f)
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of the symbols in code order.
func (a *Alphabet) Symbols() []byte {
	return append([]byte(nil), a.symbols...)
}

// Code returns the code of symbol s.
func (a *Alphabet) Code(s byte) (uint16, bool) {
	c := a.code[s]
	if c < 0 {
		return 0, false
	}
	return uint16(c), true
}

// Contains reports whether s is a symbol of the alphabet.
func (a *Alphabet) Contains(s byte) bool {
	return a.code[s] >= 0
}
