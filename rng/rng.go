// Package rng provides the process-scoped random source used across the
// generation engine: a single lazily-seeded generator (no locks — the
// library is single-threaded per generation) plus a Fisher-Yates
// permutation utility.
package rng

import (
	"math/rand"
	"time"
)

var (
	source *rand.Rand
	seeded bool
)

// Seed fixes the process-scoped source so a generation run is
// reproducible. Callers may call this before Generate to control
// reproducibility.
func Seed(seed int64) {
	source = rand.New(rand.NewSource(seed))
	seeded = true
}

// EnsureSeeded seeds the source from the current time if it has not
// already been seeded (process-scope lazy init).
func EnsureSeeded() {
	if !seeded {
		Seed(time.Now().UnixNano())
	}
}

// UniformInclusive draws a uniform integer in [0, hi], matching the
// spec's `uniform_int(0, i)` (inclusive upper bound — this is what
// distinguishes Fisher-Yates from Sattolo's shuffle, which forbids
// fixed points by drawing from [0, i-1]).
func UniformInclusive(hi int) int {
	EnsureSeeded()
	if hi <= 0 {
		return 0
	}
	return source.Intn(hi + 1)
}
