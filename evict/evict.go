// Package evict implements the eviction policy engine for lzvar codebooks.
//
// A Tracker observes "usage" events for the non-alphabet entries of a
// codebook and, when the codebook is full, names the entry whose code
// should be reassigned. The encoder and decoder feed their trackers the
// same event sequence in the same order, so both sides compute identical
// eviction decisions without exchanging them; any divergence here silently
// corrupts the stream.
//
// Trackers are arenas indexed by the integer code itself: recency and
// frequency links are stored as code-sized index arrays rather than heap
// nodes, so a tracker for a 2^maxW codebook is a handful of flat
// allocations made once per pass.
package evict

// Tracker records usage of codebook entries and selects eviction victims.
// Codes must be smaller than the capacity the tracker was created with.
// Alphabet and reserved codes are never handed to a Tracker.
type Tracker interface {
	// Add begins tracking a freshly inserted code.
	Add(code int)
	// Touch records a use of an already tracked code.
	Touch(code int)
	// Peek returns the code that Evict would remove, or -1 if none.
	Peek() int
	// Evict stops tracking the victim and returns its code, or -1 if none.
	Evict() int
	// Len returns the number of tracked codes.
	Len() int
	// Reset forgets all tracked codes.
	Reset()
}
