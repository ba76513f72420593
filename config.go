package sudokugen

import "github.com/chaLords/sudokugen/events"

// HeuristicStrategy is reserved for future cell-selection strategies
// beyond MRV.
type HeuristicStrategy int

// MRVStrategy is the only strategy currently implemented.
const MRVStrategy HeuristicStrategy = 0

// GenerationConfig is caller-provided and read-only during a run.
type GenerationConfig struct {
	// Callback, if non-nil, receives every lifecycle event emitted during
	// Generate. A nil Callback makes event emission a no-op.
	Callback events.Callback
	// UserData is an opaque value threaded through to Callback.
	UserData any
	// MaxAttempts bounds how many times Generate retries completion
	// before giving up. 0 means a single attempt.
	MaxAttempts int
	// UseAC3 selects CompleteAC3HB over CompleteBacktracking.
	UseAC3 bool
	// UseHeuristics enables MRV ordering. AC3HB always uses MRV; this
	// flag is carried for API completeness and currently has no effect
	// beyond selecting the engine via UseAC3.
	UseHeuristics bool
	// HeuristicStrategy is reserved for extension; only MRVStrategy is
	// implemented.
	HeuristicStrategy HeuristicStrategy
}

// DefaultConfig returns the documented defaults: one attempt, AC3HB
// completion with MRV enabled.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		MaxAttempts:       1,
		UseAC3:            true,
		UseHeuristics:     true,
		HeuristicStrategy: MRVStrategy,
	}
}
