package fallback

import (
	"math/rand/v2"
	"sync"
)

// RandomSource is the randomness used by the generator. *rand.Rand from
// math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// lockedSource serializes access to a *rand.Rand, which is not safe for
// concurrent use.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// NewRandomSource returns an unseeded PCG source that is safe for
// concurrent use.
func NewRandomSource() RandomSource {
	return &lockedSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a deterministic source for tests.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// uniform draws from [lo, hi).
func uniform(src RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// randInt draws from [lo, hi], both ends inclusive.
func randInt(src RandomSource, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
