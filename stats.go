package sudokugen

import (
	"time"

	"github.com/chaLords/sudokugen/forced"
)

// GenerationStats is owned by the caller and filled in by Generate:
// counters per elimination phase, plus attempt count and wall-clock
// duration.
type GenerationStats struct {
	Attempts int

	Phase1Removed int

	Phase2Rounds  int
	Phase2Removed int

	Phase3Removed int
	Phase3Target  int
	Phase3Tried   int

	ClassificationCounts map[forced.Classification]int

	Duration time.Duration
}
