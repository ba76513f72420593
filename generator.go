// Package sudokugen is the root facade tying every leaf package into
// the generator orchestration: board creation, diagonal prefill,
// completion engine selection, the three elimination phases, difficulty
// evaluation, and lifecycle event emission, all driven by a
// caller-supplied GenerationConfig and reported into a caller-owned
// GenerationStats.
package sudokugen

import (
	"time"

	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/completion"
	"github.com/chaLords/sudokugen/difficulty"
	"github.com/chaLords/sudokugen/elimination"
	"github.com/chaLords/sudokugen/events"
	"github.com/chaLords/sudokugen/forced"
	"github.com/chaLords/sudokugen/rng"
	"github.com/chaLords/sudokugen/xerrors"
)

// Generate produces a unique-solution puzzle on b. It returns true on
// success; on failure (after config.MaxAttempts tries)
// it returns false with b left either freshly initialized or
// diagonal-prefilled, never a partial puzzle. config and stats may be
// nil; a nil config uses DefaultConfig, a nil stats simply discards
// counters.
func Generate(b *board.Board, config *GenerationConfig, stats *GenerationStats) (bool, error) {
	if b == nil {
		return false, xerrors.New(xerrors.InvalidArgument, "sudokugen.Generate", nil)
	}
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if stats == nil {
		stats = &GenerationStats{}
	}
	start := time.Now()
	defer func() { stats.Duration = time.Since(start) }()

	rng.EnsureSeeded()
	dispatcher := events.NewDispatcher(cfg.Callback, cfg.UserData)
	dispatcher.Emit(events.Data{Type: events.GenerationStart, Board: b})

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		stats.Attempts++

		if err := b.Init(); err != nil {
			return false, err
		}

		dispatcher.Emit(events.Data{Type: events.DiagonalFillStart, Board: b})
		if err := completion.DiagonalPrefill(b); err != nil {
			return false, err
		}
		dispatcher.Emit(events.Data{Type: events.DiagonalFillComplete, Board: b})

		reg := forced.NewRegistry()
		dispatcher.Emit(events.Data{Type: events.BacktrackStart, Board: b})
		completed, err := runCompletion(b, &cfg, reg)
		if err != nil {
			return false, err
		}
		if !completed {
			continue
		}
		dispatcher.Emit(events.Data{Type: events.BacktrackComplete, Board: b})

		ok, err := runElimination(b, reg, difficulty.Medium, dispatcher, stats)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}

		stats.ClassificationCounts = reg.Stats()
		dispatcher.Emit(events.Data{Type: events.GenerationComplete, Board: b})
		return true, nil
	}

	dispatcher.Emit(events.Data{Type: events.GenerationFailed, Board: b})
	return false, nil
}

// GenerateWithDifficulty is Generate steered toward a target difficulty
// tier: Phase 3's protection policy uses diff instead of the neutral
// Medium default. This shapes which cells Phase 3 is permitted to
// clear; it does not guarantee an exact clue count.
func GenerateWithDifficulty(b *board.Board, diff difficulty.Difficulty, config *GenerationConfig, stats *GenerationStats) (bool, error) {
	if b == nil {
		return false, xerrors.New(xerrors.InvalidArgument, "sudokugen.GenerateWithDifficulty", nil)
	}
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if stats == nil {
		stats = &GenerationStats{}
	}
	start := time.Now()
	defer func() { stats.Duration = time.Since(start) }()

	rng.EnsureSeeded()
	dispatcher := events.NewDispatcher(cfg.Callback, cfg.UserData)
	dispatcher.Emit(events.Data{Type: events.GenerationStart, Board: b})

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		stats.Attempts++

		if err := b.Init(); err != nil {
			return false, err
		}

		dispatcher.Emit(events.Data{Type: events.DiagonalFillStart, Board: b})
		if err := completion.DiagonalPrefill(b); err != nil {
			return false, err
		}
		dispatcher.Emit(events.Data{Type: events.DiagonalFillComplete, Board: b})

		reg := forced.NewRegistry()
		dispatcher.Emit(events.Data{Type: events.BacktrackStart, Board: b})
		completed, err := runCompletion(b, &cfg, reg)
		if err != nil {
			return false, err
		}
		if !completed {
			continue
		}
		dispatcher.Emit(events.Data{Type: events.BacktrackComplete, Board: b})

		ok, err := runElimination(b, reg, diff, dispatcher, stats)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}

		stats.ClassificationCounts = reg.Stats()
		dispatcher.Emit(events.Data{Type: events.GenerationComplete, Board: b})
		return true, nil
	}

	dispatcher.Emit(events.Data{Type: events.GenerationFailed, Board: b})
	return false, nil
}

func runCompletion(b *board.Board, cfg *GenerationConfig, reg *forced.Registry) (bool, error) {
	if cfg.UseAC3 {
		state, err := completion.CompleteAC3HB(b, reg, completion.DefaultMaxDepth(b.K()), completion.DefaultTimeout)
		if err != nil {
			return false, err
		}
		return state == completion.Completed, nil
	}
	return completion.CompleteBacktracking(b)
}

func runElimination(b *board.Board, reg *forced.Registry, diff difficulty.Difficulty, dispatcher *events.Dispatcher, stats *GenerationStats) (bool, error) {
	dispatcher.Emit(events.Data{Type: events.Phase1Start, Board: b})
	if err := elimination.Phase1(b); err != nil {
		return false, err
	}
	stats.Phase1Removed = b.TotalCells() - b.Clues()
	dispatcher.Emit(events.Data{Type: events.Phase1Complete, Board: b, CellsRemoved: stats.Phase1Removed})

	dispatcher.Emit(events.Data{Type: events.Phase2Start, Board: b})
	p2, err := elimination.Phase2(b)
	if err != nil {
		return false, err
	}
	stats.Phase2Rounds = p2.Rounds
	stats.Phase2Removed = p2.Removed
	dispatcher.Emit(events.Data{Type: events.Phase2Complete, Board: b, Round: p2.Rounds, CellsRemoved: p2.Removed})

	dispatcher.Emit(events.Data{Type: events.Phase3Start, Board: b})
	p3, err := elimination.Phase3(b, reg, diff)
	if err != nil {
		return false, err
	}
	stats.Phase3Removed = p3.Removed
	stats.Phase3Target = p3.Target
	stats.Phase3Tried = p3.Tried
	dispatcher.Emit(events.Data{Type: events.Phase3Complete, Board: b, CellsRemoved: p3.Removed})

	return true, nil
}
