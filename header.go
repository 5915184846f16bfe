package lzvar

import (
	"github.com/icza/bitio"
)

// Stream header, written bit-exactly in this order:
//
//	minW         uint8
//	maxW         uint8
//	policy       uint8  (0=freeze 1=reset 2=lru 3=lfu)
//	alphabetSize uint16
//	symbols      alphabetSize × uint8, in code order
//
// Code assignment is positional, so the decoder must rebuild codes
// 0..alphabetSize-1 from the symbols exactly as serialized. There is no
// checksum and no recovery: a truncated or malformed header fails fast.
type header struct {
	minW    uint8
	maxW    uint8
	policy  Policy
	symbols []byte
}

func writeHeader(w *bitio.Writer, h header) error {
	w.TryWriteBits(uint64(h.minW), 8)
	w.TryWriteBits(uint64(h.maxW), 8)
	w.TryWriteBits(uint64(h.policy), 8)
	w.TryWriteBits(uint64(len(h.symbols)), 16)
	for _, s := range h.symbols {
		w.TryWriteBits(uint64(s), 8)
	}
	return w.TryError
}

func readHeader(r *bitio.Reader) (header, error) {
	var h header
	minW := r.TryReadBits(8)
	maxW := r.TryReadBits(8)
	policy := r.TryReadBits(8)
	size := r.TryReadBits(16)
	if r.TryError != nil {
		return h, corruptRead("header", r.TryError)
	}
	h.minW = uint8(minW)
	h.maxW = uint8(maxW)
	h.policy = Policy(policy)
	if !h.policy.valid() {
		return h, corruptf("policy code %d", policy)
	}
	if size == 0 {
		return h, corruptf("empty alphabet")
	}
	if h.minW == 0 || h.minW > h.maxW || h.maxW > maxWidth {
		return h, corruptf("width bounds minW=%d maxW=%d", h.minW, h.maxW)
	}
	if first := firstCode(int(size), h.policy); 1<<h.minW < first {
		return h, corruptf("minW=%d cannot represent %d reserved codes", h.minW, first)
	}
	h.symbols = make([]byte, size)
	for i := range h.symbols {
		h.symbols[i] = byte(r.TryReadBits(8))
	}
	if r.TryError != nil {
		return h, corruptRead("alphabet symbols", r.TryError)
	}
	return h, nil
}
