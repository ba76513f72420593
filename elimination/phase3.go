package elimination

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/counter"
	"github.com/chaLords/sudokugen/difficulty"
	"github.com/chaLords/sudokugen/forced"
	"github.com/chaLords/sudokugen/rng"
	"github.com/chaLords/sudokugen/xerrors"
)

// Phase3Result reports what a Phase3 run removed.
type Phase3Result struct {
	Removed int
	Target  int
	Tried   int
}

// Phase3 performs verified free elimination under the Forced-Cells
// Registry's protection policy: it shuffles the filled-cell coordinates,
// then for each one not protected at the target difficulty, tentatively
// clears it and runs a bounded solution count. The removal commits only
// if the puzzle still has exactly one solution; otherwise the value is
// restored. It stops once Target = difficulty.Target(k) cells have been
// removed or the candidate list is exhausted.
func Phase3(b *board.Board, reg *forced.Registry, diff difficulty.Difficulty) (Phase3Result, error) {
	if b == nil {
		return Phase3Result{}, xerrors.New(xerrors.InvalidArgument, "elimination.Phase3", nil)
	}
	if reg == nil {
		return Phase3Result{}, xerrors.New(xerrors.InvalidArgument, "elimination.Phase3", nil)
	}
	rng.EnsureSeeded()

	result := Phase3Result{Target: difficulty.Target(b.K())}
	n := b.N()

	candidates := make([]board.Position, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v, err := b.Get(r, c); err != nil {
				return result, err
			} else if v != 0 {
				candidates = append(candidates, board.Position{Row: r, Col: c})
			}
		}
	}
	shuffleCandidates(candidates)

	for _, pos := range candidates {
		if result.Removed >= result.Target {
			break
		}
		if reg.ShouldProtect(pos, diff) {
			continue
		}
		result.Tried++

		v, err := b.GetPos(pos)
		if err != nil {
			return result, err
		}
		if v == 0 {
			continue
		}
		if err := b.SetPos(pos, 0); err != nil {
			return result, err
		}

		solutions, err := counter.CountSolutions(b, 2)
		if err != nil {
			return result, err
		}
		if solutions == 1 {
			result.Removed++
			continue
		}
		if err := b.SetPos(pos, v); err != nil {
			return result, err
		}
	}

	return result, b.UpdateStats()
}

func shuffleCandidates(positions []board.Position) {
	ints := make([]int, len(positions))
	for i := range ints {
		ints[i] = i
	}
	rng.Shuffle(ints)
	shuffled := make([]board.Position, len(positions))
	for i, idx := range ints {
		shuffled[i] = positions[idx]
	}
	copy(positions, shuffled)
}
