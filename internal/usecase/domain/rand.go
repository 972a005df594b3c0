package domain

import (
	"math/rand"
	"sync"
	"time"
)

// Rand supplies presentation-only randomness (receipt id, terminal id,
// footer phrase, fallback surcharge) so tests can pin it. Correctness
// invariants never depend on it.
type Rand interface {
	Intn(n int) int
}

type systemRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newSystemRand() *systemRand {
	return &systemRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *systemRand) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}
