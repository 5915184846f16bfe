// Package lzvar implements an adaptive LZW-family dictionary codec with a
// bounded codebook and a pluggable eviction policy.
//
// # Overview
//
// The codec learns phrases over a caller-supplied byte alphabet while it
// runs, emitting variable-width codewords that start at a configurable
// minimum width and grow one bit at a time as the codebook fills. The
// codebook holds at most 2^maxW entries; what happens when it is full is
// governed by one of four policies:
//
//   - freeze: stop learning, keep coding with the entries already known
//   - reset:  emit a reserved RESET codeword and relearn from scratch
//   - lru:    evict the least recently used phrase and reuse its code
//   - lfu:    evict the least frequently used phrase and reuse its code
//
// Nothing about these decisions is carried on the wire. The decoder
// replays the encoder's state machine — insertions, width growth, and
// eviction choices — purely from the codewords it reads plus the stream
// header, so the two codebooks evolve in lockstep. This symmetry is the
// codec's central correctness contract: an off-by-one in width timing or
// eviction order corrupts output silently, without any bad codeword to
// trip over.
//
// # Stream format
//
// A compressed stream is a bit-level header (width bounds, policy,
// alphabet) followed by MSB-first codewords of the current width,
// terminated by a reserved EOF codeword. See the header documentation for
// the exact layout.
//
// # Usage
//
//	alphabet, err := lzvar.LoadAlphabet("ascii.txt")
//	enc, err := lzvar.NewEncoder(alphabet,
//		lzvar.WithWidthRange(9, 14),
//		lzvar.WithPolicy(lzvar.PolicyLRU))
//	err = enc.Compress(dst, src)
//
//	err = lzvar.Expand(dst, compressed) // parameters replay from the header
//
// The codec is a strictly single-threaded, single-pass transform: one
// Encoder or Decoder pass must not be shared across goroutines.
package lzvar
