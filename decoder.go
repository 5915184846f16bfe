package lzvar

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"go.uber.org/zap"

	"github.com/seiflotfy/lzvar/evict"
)

// decoderState mirrors encoderState: the code-indexed phrase table, the
// width controller, the next sequential code, and an eviction tracker fed
// the same event sequence the encoder's tracker saw, one step later.
type decoderState struct {
	dec     *Decoder
	r       *bitio.Reader
	entries [][]byte // code -> phrase; alphabet slots are never cleared
	tracker evict.Tracker
	width   widthController

	alphabetLen int
	nextCode    int
	maxCode     int
	eof         int
	reset       int
	first       int

	codesIn  int
	bytesOut int64
	resets   int
}

// Expand reads a compressed stream from src and writes the original bytes
// to dst. All codec parameters are taken from the stream header.
func (d *Decoder) Expand(dst io.Writer, src io.Reader) error {
	log := d.config.logger()

	br := bitio.NewReader(bufio.NewReader(src))
	h, err := readHeader(br)
	if err != nil {
		return err
	}
	alphabetLen := len(h.symbols)

	st := &decoderState{
		dec:         d,
		r:           br,
		width:       newWidthController(h.minW, h.maxW),
		alphabetLen: alphabetLen,
		maxCode:     1 << h.maxW,
		eof:         eofCode(alphabetLen),
		reset:       resetCode(alphabetLen),
		first:       firstCode(alphabetLen, h.policy),
		nextCode:    firstCode(alphabetLen, h.policy),
	}
	st.entries = make([][]byte, st.maxCode)
	for i, s := range h.symbols {
		st.entries[i] = []byte{s}
	}
	switch h.policy {
	case PolicyLRU:
		st.tracker = evict.NewLRU(st.maxCode)
	case PolicyLFU:
		st.tracker = evict.NewLFU(st.maxCode)
	}

	log.Debug("expand pass start",
		zap.Uint8("minW", h.minW),
		zap.Uint8("maxW", h.maxW),
		zap.Stringer("policy", h.policy),
		zap.Int("alphabet", alphabetLen),
	)

	out := bufio.NewWriter(dst)
	if err := st.run(h.policy, out); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("lzvar: writing output: %w", err)
	}

	log.Debug("expand pass done",
		zap.Int("codesIn", st.codesIn),
		zap.Int64("bytesOut", st.bytesOut),
		zap.Int("resets", st.resets),
	)
	return nil
}

func (st *decoderState) run(policy Policy, out *bufio.Writer) error {
	code, err := st.readCode()
	if err != nil {
		return err
	}
	if code == st.eof {
		return nil
	}
	if code >= st.alphabetLen {
		return corruptf("first codeword %d is not a literal", code)
	}
	prior := st.entries[code]
	st.write(out, prior)

	for {
		st.width.grow(st.nextCode)
		code, err = st.readCode()
		if err != nil {
			return err
		}
		if code == st.eof {
			return nil
		}

		if policy == PolicyReset && code == st.reset {
			// Rebuild start-of-stream state, then read one codeword as a
			// plain literal with no phrase learning for that step.
			for i := st.alphabetLen; i < st.maxCode; i++ {
				st.entries[i] = nil
			}
			st.nextCode = st.first
			st.width.reset()
			st.resets++
			if st.dec.onReset != nil {
				st.dec.onReset()
			}
			code, err = st.readCode()
			if err != nil {
				return err
			}
			if code == st.eof {
				return nil
			}
			if code >= st.alphabetLen {
				return corruptf("post-reset codeword %d is not a literal", code)
			}
			prior = st.entries[code]
			st.write(out, prior)
			continue
		}

		var s []byte
		if st.nextCode < st.maxCode {
			switch {
			case code < st.nextCode:
				s = st.entries[code]
				if s == nil {
					return corruptf("codeword %d resolves to no phrase", code)
				}
			case code == st.nextCode:
				// The entry the encoder bound one step ahead of us:
				// prior phrase extended by its own first symbol.
				s = extend(prior, prior[0])
			default:
				return corruptf("codeword %d beyond next code %d", code, st.nextCode)
			}
		} else {
			// Codebook full. Under eviction the encoder may have just
			// reassigned its victim's code; our tracker names the same
			// victim, and the phrase synthesizes exactly like the
			// classic not-yet-in-table case.
			if st.tracker != nil && code == st.tracker.Peek() {
				s = extend(prior, prior[0])
			} else {
				s = st.entries[code]
				if s == nil {
					return corruptf("codeword %d resolves to no phrase", code)
				}
			}
		}
		st.write(out, s)

		if st.nextCode < st.maxCode {
			st.entries[st.nextCode] = extend(prior, s[0])
			if st.tracker != nil {
				st.tracker.Add(st.nextCode)
			}
			if st.dec.onInsert != nil {
				st.dec.onInsert(st.nextCode)
			}
			st.nextCode++
		} else if st.tracker != nil && st.tracker.Len() > 0 {
			v := st.tracker.Evict()
			if st.dec.onEvict != nil {
				st.dec.onEvict(v)
			}
			st.entries[v] = extend(prior, s[0])
			st.tracker.Add(v)
			if st.dec.onInsert != nil {
				st.dec.onInsert(v)
			}
		}
		// Record the use after the insertion: the insertion we just made
		// is the one the encoder made before emitting this codeword, so
		// touching afterwards replays the encoder's event order exactly.
		if st.tracker != nil && code >= st.first {
			st.tracker.Touch(code)
		}
		prior = s
	}
}

func (st *decoderState) readCode() (int, error) {
	v, err := st.r.ReadBits(st.width.bits())
	if err != nil {
		return 0, corruptRead("codeword", err)
	}
	st.codesIn++
	return int(v), nil
}

func (st *decoderState) write(out *bufio.Writer, s []byte) {
	out.Write(s)
	st.bytesOut += int64(len(s))
}

// extend returns a fresh phrase of p followed by c. Entries must not alias
// each other: eviction overwrites slots in place.
func extend(p []byte, c byte) []byte {
	s := make([]byte, len(p)+1)
	copy(s, p)
	s[len(p)] = c
	return s
}
