// Package validator provides stateless Sudoku legality checks over a
// board.Board: row/column/block conflict detection at a position, a
// full-board consistency scan, and the next-empty-cell scan used by the
// backtracking completers. Complexity is O(N³) worst case — acceptable
// at these puzzle sizes.
package validator

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/xerrors"
)

// IsSafe returns true iff v does not already appear in row, column or
// block of pos.
func IsSafe(b *board.Board, pos board.Position, v int) (bool, error) {
	if b == nil {
		return false, xerrors.New(xerrors.InvalidArgument, "validator.IsSafe", nil)
	}
	n := b.N()
	for c := 0; c < n; c++ {
		if c == pos.Col {
			continue
		}
		val, err := b.Get(pos.Row, c)
		if err != nil {
			return false, err
		}
		if val == v {
			return false, nil
		}
	}
	for r := 0; r < n; r++ {
		if r == pos.Row {
			continue
		}
		val, err := b.Get(r, pos.Col)
		if err != nil {
			return false, err
		}
		if val == v {
			return false, nil
		}
	}
	for _, bp := range b.CellsInBlock(b.BlockIndex(pos.Row, pos.Col)) {
		if bp == pos {
			continue
		}
		val, err := b.GetPos(bp)
		if err != nil {
			return false, err
		}
		if val == v {
			return false, nil
		}
	}
	return true, nil
}

// FindEmpty scans row-major and returns the first empty cell's position.
// The second return is false if the board has no empty cell.
func FindEmpty(b *board.Board) (board.Position, bool, error) {
	if b == nil {
		return board.Position{}, false, xerrors.New(xerrors.InvalidArgument, "validator.FindEmpty", nil)
	}
	n := b.N()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v, err := b.Get(r, c)
			if err != nil {
				return board.Position{}, false, err
			}
			if v == 0 {
				return board.Position{Row: r, Col: c}, true, nil
			}
		}
	}
	return board.Position{}, false, nil
}

// ValidateBoard checks every filled cell: temporarily treating it as
// empty, it must still be IsSafe to place there. Empty cells are
// skipped.
func ValidateBoard(b *board.Board) (bool, error) {
	if b == nil {
		return false, xerrors.New(xerrors.InvalidArgument, "validator.ValidateBoard", nil)
	}
	n := b.N()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v, err := b.Get(r, c)
			if err != nil {
				return false, err
			}
			if v == 0 {
				continue
			}
			ok, err := IsSafe(b, board.Position{Row: r, Col: c}, v)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}
