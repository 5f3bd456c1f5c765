package session

import (
	"math/rand/v2"

	"blizhe/internal/domain"
)

// Select picks the ordered question sequence for one session: it
// filters the pool, shuffles the eligible set with an unbiased
// Fisher–Yates permutation, and returns the first cfg.Count entries.
// The pool is never mutated. The result length is
// min(cfg.Count, eligible count).
func Select(pool []domain.Question, cfg domain.SessionConfig) []domain.Question {
	return selectWith(pool, cfg, rand.IntN)
}

// selectWith allows tests to substitute the random source.
func selectWith(pool []domain.Question, cfg domain.SessionConfig, intN func(int) int) []domain.Question {
	eligible := Eligible(pool, cfg)

	shuffled := make([]domain.Question, len(eligible))
	copy(shuffled, eligible)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if cfg.Count < len(shuffled) {
		return shuffled[:cfg.Count]
	}
	return shuffled
}
