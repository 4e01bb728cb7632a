package catalog

import "math/rand"

// Selector is the event selection policy. It is injected into the catalog so
// tests can pin the strategy.
type Selector interface {
	Pick(day, poolSize int) int
}

// DailySelector picks deterministically by day number modulo pool size.
type DailySelector struct{}

func (DailySelector) Pick(day, poolSize int) int {
	if poolSize <= 0 {
		return 0
	}
	return (day - 1) % poolSize
}

// RandomSelector picks uniformly from the pool using a seeded source, so a
// fixed seed reproduces a full run.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a selector seeded with the given value.
func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSelector) Pick(_, poolSize int) int {
	if poolSize <= 0 {
		return 0
	}
	return s.rng.Intn(poolSize)
}
