package completion

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/rng"
	"github.com/chaLords/sudokugen/validator"
	"github.com/chaLords/sudokugen/xerrors"
)

// CompleteBacktracking fills every empty cell of b with a randomized
// backtracker: find the next empty cell, try its candidate values in a
// random permutation, recurse, unplace on failure. It is the simpler of
// the two completion engines — no constraint propagation, just is_safe
// checks.
func CompleteBacktracking(b *board.Board) (bool, error) {
	if b == nil {
		return false, xerrors.New(xerrors.InvalidArgument, "completion.CompleteBacktracking", nil)
	}
	rng.EnsureSeeded()
	ok, err := backtrackStep(b)
	if err != nil {
		return false, err
	}
	if ok {
		b.UpdateStats()
	}
	return ok, nil
}

func backtrackStep(b *board.Board) (bool, error) {
	pos, found, err := validator.FindEmpty(b)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	order := make([]int, b.N())
	rng.Permutation(order, 1)

	for _, v := range order {
		safe, err := validator.IsSafe(b, pos, v)
		if err != nil {
			return false, err
		}
		if !safe {
			continue
		}
		if err := b.SetPos(pos, v); err != nil {
			return false, err
		}
		ok, err := backtrackStep(b)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if err := b.SetPos(pos, 0); err != nil {
			return false, err
		}
	}
	return false, nil
}
