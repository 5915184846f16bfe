package evict

// LRU tracks recency with a doubly-linked list threaded through two
// code-indexed arrays. Index capacity acts as the list sentinel:
// next[sentinel] is the most recently used code, prev[sentinel] the least.
type LRU struct {
	prev    []int32
	next    []int32
	tracked []bool
	size    int
}

// NewLRU creates an LRU tracker for codes in [0, capacity).
func NewLRU(capacity int) *LRU {
	l := &LRU{
		prev:    make([]int32, capacity+1),
		next:    make([]int32, capacity+1),
		tracked: make([]bool, capacity),
	}
	l.Reset()
	return l
}

func (l *LRU) sentinel() int32 {
	return int32(len(l.prev) - 1)
}

// Add begins tracking code at the most-recent end.
func (l *LRU) Add(code int) {
	l.tracked[code] = true
	l.linkFront(int32(code))
	l.size++
}

// Touch moves code to the most-recent end.
func (l *LRU) Touch(code int) {
	if !l.tracked[code] {
		return
	}
	l.unlink(int32(code))
	l.linkFront(int32(code))
}

// Peek returns the least recently used code without removing it.
func (l *LRU) Peek() int {
	if l.size == 0 {
		return -1
	}
	return int(l.prev[l.sentinel()])
}

// Evict removes and returns the least recently used code.
func (l *LRU) Evict() int {
	v := l.Peek()
	if v < 0 {
		return -1
	}
	l.unlink(int32(v))
	l.tracked[v] = false
	l.size--
	return v
}

// Len returns the number of tracked codes.
func (l *LRU) Len() int {
	return l.size
}

// Reset forgets all tracked codes.
func (l *LRU) Reset() {
	s := l.sentinel()
	l.prev[s] = s
	l.next[s] = s
	for i := range l.tracked {
		l.tracked[i] = false
	}
	l.size = 0
}

func (l *LRU) linkFront(code int32) {
	s := l.sentinel()
	first := l.next[s]
	l.prev[code] = s
	l.next[code] = first
	l.prev[first] = code
	l.next[s] = code
}

func (l *LRU) unlink(code int32) {
	p, n := l.prev[code], l.next[code]
	l.next[p] = n
	l.prev[n] = p
}
