package variantgen

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random-choice source used for template selection, hint
// sampling and temperature choice. Injected so tests can substitute a
// fixed sequence. Implementations must be safe for concurrent use:
// chunk generation calls it from multiple goroutines.
type Rand interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int

	// Perm returns a random permutation of [0, n).
	Perm(n int) []int
}

// lockedRand wraps *rand.Rand with a mutex. rand.Rand itself is not
// safe for concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a concurrency-safe Rand seeded from the given pair.
func NewRand(seed1, seed2 uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// DefaultRand returns a concurrency-safe Rand with a random seed.
func DefaultRand() Rand {
	return NewRand(rand.Uint64(), rand.Uint64())
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRand) Perm(n int) []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Perm(n)
}
