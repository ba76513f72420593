// Package counter provides a bounded exhaustive solution counter used
// by Phase 3 uniqueness checks: a backtracker generalized to arbitrary
// k that exits early once it hits a caller-supplied limit.
package counter

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/validator"
	"github.com/chaLords/sudokugen/xerrors"
)

// CountSolutions returns the number of distinct completions of b, capped
// at limit (the search stops as soon as limit is reached, so a caller
// checking for uniqueness should pass limit=2). b is left exactly as
// found: the search mutates it during recursion but restores every
// assignment before returning.
func CountSolutions(b *board.Board, limit int) (int, error) {
	if b == nil {
		return 0, xerrors.New(xerrors.InvalidArgument, "counter.CountSolutions", nil)
	}
	if limit <= 0 {
		return 0, xerrors.New(xerrors.InvalidArgument, "counter.CountSolutions", nil)
	}
	count := 0
	if err := countHelper(b, &count, limit); err != nil {
		return 0, err
	}
	return count, nil
}

// HasUniqueSolution reports whether b has exactly one completion.
func HasUniqueSolution(b *board.Board) (bool, error) {
	n, err := CountSolutions(b, 2)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func countHelper(b *board.Board, count *int, limit int) error {
	if *count >= limit {
		return nil
	}
	pos, found, err := validator.FindEmpty(b)
	if err != nil {
		return err
	}
	if !found {
		*count++
		return nil
	}
	n := b.N()
	for v := 1; v <= n; v++ {
		ok, err := validator.IsSafe(b, pos, v)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := b.SetPos(pos, v); err != nil {
			return err
		}
		if err := countHelper(b, count, limit); err != nil {
			b.SetPos(pos, 0)
			return err
		}
		if err := b.SetPos(pos, 0); err != nil {
			return err
		}
		if *count >= limit {
			return nil
		}
	}
	return nil
}
