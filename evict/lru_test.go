package evict

import (
	"math/rand"
	"testing"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/stretchr/testify/require"
)

func TestLRUEmpty(t *testing.T) {
	l := NewLRU(8)
	require.Equal(t, 0, l.Len())
	require.Equal(t, -1, l.Peek())
	require.Equal(t, -1, l.Evict())
}

func TestLRUOrder(t *testing.T) {
	l := NewLRU(8)
	l.Add(3)
	l.Add(4)
	l.Add(5)
	require.Equal(t, 3, l.Len())

	// Oldest insertion is the victim.
	require.Equal(t, 3, l.Peek())

	// Touch rescues the oldest; the next-oldest becomes the victim.
	l.Touch(3)
	require.Equal(t, 4, l.Peek())
	require.Equal(t, 4, l.Evict())
	require.Equal(t, 5, l.Evict())
	require.Equal(t, 3, l.Evict())
	require.Equal(t, 0, l.Len())
	require.Equal(t, -1, l.Evict())
}

func TestLRUTouchUntracked(t *testing.T) {
	l := NewLRU(8)
	l.Add(3)
	l.Touch(7) // never added: no-op
	require.Equal(t, 1, l.Len())
	require.Equal(t, 3, l.Peek())
}

func TestLRUReuseAfterEvict(t *testing.T) {
	l := NewLRU(8)
	l.Add(3)
	l.Add(4)
	require.Equal(t, 3, l.Evict())

	// The evicted code's slot is immediately reusable.
	l.Add(3)
	require.Equal(t, 4, l.Peek())
	l.Touch(4)
	require.Equal(t, 3, l.Peek())
}

func TestLRUReset(t *testing.T) {
	l := NewLRU(8)
	l.Add(3)
	l.Add(4)
	l.Reset()
	require.Equal(t, 0, l.Len())
	require.Equal(t, -1, l.Peek())
	l.Add(5)
	require.Equal(t, 5, l.Evict())
}

// TestLRUAgainstSimpleLRU drives the tracker and hashicorp's simplelru with
// the same random operation stream and checks that they always agree on the
// victim. The oracle cache is sized so it never evicts on its own.
func TestLRUAgainstSimpleLRU(t *testing.T) {
	const capacity = 64
	rng := rand.New(rand.NewSource(1))

	l := NewLRU(capacity)
	oracle, err := simplelru.NewLRU[int, struct{}](capacity, nil)
	require.NoError(t, err)

	tracked := make(map[int]bool)
	var codes []int

	for step := 0; step < 5000; step++ {
		switch op := rng.Intn(4); {
		case op == 0 && len(tracked) < capacity:
			code := rng.Intn(capacity)
			for tracked[code] {
				code = (code + 1) % capacity
			}
			l.Add(code)
			oracle.Add(code, struct{}{})
			tracked[code] = true
			codes = append(codes, code)
		case op <= 2 && len(codes) > 0:
			code := codes[rng.Intn(len(codes))]
			l.Touch(code)
			if tracked[code] {
				oracle.Get(code)
			}
		case len(tracked) > 0:
			key, _, ok := oracle.GetOldest()
			require.True(t, ok)
			require.Equal(t, key, l.Peek(), "step %d: victim disagreement", step)
			require.Equal(t, key, l.Evict())
			oracle.RemoveOldest()
			delete(tracked, key)
		}
		require.Equal(t, oracle.Len(), l.Len(), "step %d", step)
	}
}
