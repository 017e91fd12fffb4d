// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"jungle-defense/internal/defs"
)

// PRNGService wraps a seeded generator so every random decision of a session
// comes from one reproducible source.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a generator from seed. A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the effective seed, useful for logging a session.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 returns a value in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Spread returns a value in [-amount, amount).
func (s *PRNGService) Spread(amount float64) float64 {
	if amount == 0 {
		return 0
	}
	return (s.rng.Float64()*2 - 1) * amount
}

// ChooseWeighted picks an attacker id from a spawn table: it sums the weights,
// draws a number below the sum and walks the entries to the one it falls in.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].AttackerID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.AttackerID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].AttackerID
}
