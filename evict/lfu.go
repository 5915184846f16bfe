package evict

// LFU tracks use counts with frequency-bucketed lists threaded through
// code-indexed arrays. Each bucket is singly anchored in heads and doubly
// linked through prev/next with -1 terminators; minFreq names the lowest
// occupied bucket.
//
// Tie-break within a bucket: entries are pushed to the bucket front on
// every Add and promotion, and the victim is taken from the front, so among
// equal-frequency entries the one most recently added or promoted to that
// frequency is evicted first. The rule is arbitrary but must be identical
// on the encode and decode sides.
type LFU struct {
	freq    []uint32
	prev    []int32
	next    []int32
	heads   map[uint32]int32
	minFreq uint32
	size    int
}

// NewLFU creates an LFU tracker for codes in [0, capacity).
func NewLFU(capacity int) *LFU {
	return &LFU{
		freq:  make([]uint32, capacity),
		prev:  make([]int32, capacity),
		next:  make([]int32, capacity),
		heads: make(map[uint32]int32),
	}
}

// Add begins tracking code with frequency 1. A fresh entry always defines
// (or re-lowers) the minimum frequency.
func (l *LFU) Add(code int) {
	l.freq[code] = 1
	l.pushFront(1, int32(code))
	l.minFreq = 1
	l.size++
}

// Touch promotes code to the next frequency bucket.
func (l *LFU) Touch(code int) {
	f := l.freq[code]
	if f == 0 {
		return
	}
	l.remove(f, int32(code))
	if f == l.minFreq {
		if _, ok := l.heads[f]; !ok {
			l.minFreq = f + 1
		}
	}
	l.freq[code] = f + 1
	l.pushFront(f+1, int32(code))
}

// Peek returns the front of the lowest occupied bucket without removing it,
// or -1 if nothing is tracked.
func (l *LFU) Peek() int {
	if l.size == 0 {
		return -1
	}
	// minFreq never overshoots the true minimum, so this walk terminates.
	f := l.minFreq
	for {
		if h, ok := l.heads[f]; ok {
			l.minFreq = f
			return int(h)
		}
		f++
	}
}

// Evict removes and returns the least frequently used code, or -1 if
// nothing is tracked.
func (l *LFU) Evict() int {
	v := l.Peek()
	if v < 0 {
		return -1
	}
	l.remove(l.freq[v], int32(v))
	l.freq[v] = 0
	l.size--
	return v
}

// Len returns the number of tracked codes.
func (l *LFU) Len() int {
	return l.size
}

// Reset forgets all tracked codes.
func (l *LFU) Reset() {
	for i := range l.freq {
		l.freq[i] = 0
	}
	l.heads = make(map[uint32]int32)
	l.minFreq = 0
	l.size = 0
}

func (l *LFU) pushFront(f uint32, code int32) {
	l.prev[code] = -1
	l.next[code] = -1
	if h, ok := l.heads[f]; ok {
		l.next[code] = h
		l.prev[h] = code
	}
	l.heads[f] = code
}

func (l *LFU) remove(f uint32, code int32) {
	p, n := l.prev[code], l.next[code]
	if p >= 0 {
		l.next[p] = n
	}
	if n >= 0 {
		l.prev[n] = p
	}
	if h, ok := l.heads[f]; ok && h == code {
		if n >= 0 {
			l.heads[f] = n
		} else {
			delete(l.heads, f)
		}
	}
}
