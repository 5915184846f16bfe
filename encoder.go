package lzvar

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"go.uber.org/zap"

	"github.com/seiflotfy/lzvar/evict"
	"github.com/seiflotfy/lzvar/trie"
)

// encoderState is the per-pass state of the encoder state machine: the
// phrase trie, the width controller, the next sequential code, and the
// eviction tracker. It is created by Compress and discarded at EOF.
type encoderState struct {
	enc     *Encoder
	w       *bitio.Writer
	dict    *trie.Tree
	nodes   []*trie.Node // code -> trie node, for eviction; non-alphabet codes only
	tracker evict.Tracker
	width   widthController

	nextCode int
	maxCode  int
	eof      int
	reset    int
	first    int

	codesOut  int
	evictions int
	resets    int
}

// Compress reads raw bytes from src and writes the header followed by the
// codeword stream to dst. Any input byte outside the alphabet aborts the
// pass with an AlphabetViolationError.
func (e *Encoder) Compress(dst io.Writer, src io.Reader) error {
	cfg := e.config
	log := cfg.logger()
	alphabetLen := e.alphabet.Len()

	out := bufio.NewWriter(dst)
	st := &encoderState{
		enc:      e,
		w:        bitio.NewWriter(out),
		width:    newWidthController(cfg.MinWidth, cfg.MaxWidth),
		maxCode:  1 << cfg.MaxWidth,
		eof:      eofCode(alphabetLen),
		reset:    resetCode(alphabetLen),
		first:    firstCode(alphabetLen, cfg.Policy),
		nextCode: firstCode(alphabetLen, cfg.Policy),
	}
	st.seedDictionary()
	switch cfg.Policy {
	case PolicyLRU:
		st.tracker = evict.NewLRU(st.maxCode)
		st.nodes = make([]*trie.Node, st.maxCode)
	case PolicyLFU:
		st.tracker = evict.NewLFU(st.maxCode)
		st.nodes = make([]*trie.Node, st.maxCode)
	}

	log.Debug("compress pass start",
		zap.Uint8("minW", cfg.MinWidth),
		zap.Uint8("maxW", cfg.MaxWidth),
		zap.Stringer("policy", cfg.Policy),
		zap.Int("alphabet", alphabetLen),
	)

	if err := writeHeader(st.w, header{
		minW:    cfg.MinWidth,
		maxW:    cfg.MaxWidth,
		policy:  cfg.Policy,
		symbols: e.alphabet.symbols,
	}); err != nil {
		return fmt.Errorf("lzvar: writing header: %w", err)
	}

	in := bufio.NewReader(src)
	var cur *trie.Node
	var offset int64
	for {
		c, err := in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("lzvar: reading input: %w", err)
		}
		if !e.alphabet.Contains(c) {
			return &AlphabetViolationError{Byte: c, Offset: offset}
		}
		offset++

		if cur == nil {
			cur = st.dict.Root(c)
			continue
		}
		if next := cur.Next(c); next != nil {
			cur = next
			continue
		}
		if err := st.flush(cur, c); err != nil {
			return err
		}
		cur = st.dict.Root(c)
	}

	if cur != nil {
		st.emit(int(cur.Code()))
		st.touch(int(cur.Code()))
		st.width.grow(st.nextCode)
	}
	st.emit(st.eof)
	if st.w.TryError != nil {
		return fmt.Errorf("lzvar: writing stream: %w", st.w.TryError)
	}
	if err := st.w.Close(); err != nil {
		return fmt.Errorf("lzvar: writing stream: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("lzvar: writing stream: %w", err)
	}

	log.Debug("compress pass done",
		zap.Int64("symbolsIn", offset),
		zap.Int("codesOut", st.codesOut),
		zap.Int("evictions", st.evictions),
		zap.Int("resets", st.resets),
	)
	return nil
}

// seedDictionary (re)builds the trie from the alphabet. Alphabet codes are
// root nodes and are never tombstoned.
func (st *encoderState) seedDictionary() {
	st.dict = trie.New()
	for i, s := range st.enc.alphabet.symbols {
		st.dict.PutRoot(s, uint32(i))
	}
}

// flush emits the code of the current phrase and learns the phrase
// extended by c: at the next sequential code while the codebook has room,
// otherwise per the eviction policy. The width check runs between
// emission and insertion so that both sides observe it against the same
// nextCode value.
func (st *encoderState) flush(cur *trie.Node, c byte) error {
	code := int(cur.Code())
	st.emit(code)
	st.touch(code)

	if st.nextCode < st.maxCode {
		st.width.grow(st.nextCode)
		n := st.dict.Put(cur, c, uint32(st.nextCode))
		if st.nodes != nil {
			st.nodes[st.nextCode] = n
		}
		if st.tracker != nil {
			st.tracker.Add(st.nextCode)
		}
		if st.enc.onInsert != nil {
			st.enc.onInsert(st.nextCode)
		}
		st.nextCode++
		return st.writeErr()
	}

	switch st.enc.config.Policy {
	case PolicyReset:
		st.width.grow(st.nextCode)
		st.emit(st.reset)
		st.seedDictionary()
		st.nextCode = st.first
		st.width.reset()
		st.resets++
		if st.enc.onReset != nil {
			st.enc.onReset()
		}
	case PolicyLRU, PolicyLFU:
		if st.tracker.Len() > 0 {
			v := st.tracker.Evict()
			st.nodes[v].Delete()
			if st.enc.onEvict != nil {
				st.enc.onEvict(v)
			}
			n := st.dict.Put(cur, c, uint32(v))
			st.nodes[v] = n
			st.tracker.Add(v)
			if st.enc.onInsert != nil {
				st.enc.onInsert(v)
			}
			st.evictions++
		}
	case PolicyFreeze:
		// Codebook is immutable from here on.
	}
	return st.writeErr()
}

// emit writes code at the current width.
func (st *encoderState) emit(code int) {
	st.w.TryWriteBits(uint64(code), st.width.bits())
	st.codesOut++
}

// touch records a use of an emitted non-alphabet phrase code. Alphabet
// codes are never tracked.
func (st *encoderState) touch(code int) {
	if st.tracker != nil && code >= st.first {
		st.tracker.Touch(code)
	}
}

func (st *encoderState) writeErr() error {
	if st.w.TryError != nil {
		return fmt.Errorf("lzvar: writing stream: %w", st.w.TryError)
	}
	return nil
}
