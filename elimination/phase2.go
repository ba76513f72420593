package elimination

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/rng"
	"github.com/chaLords/sudokugen/validator"
	"github.com/chaLords/sudokugen/xerrors"
)

// Phase2Result reports what a Phase2 run removed.
type Phase2Result struct {
	Removed int
	Rounds  int
}

// Phase2 iterates rounds of no-alternatives removal until a round
// removes nothing. Cells are visited row-major within a round — the
// fixed-point property (a round that removes zero cells ends the loop)
// holds under any visiting order. A filled cell (r,c)=v is cleared when
// no empty cell anywhere in its row, column or block could legally hold
// v; if every such cell already has some other candidate claim,
// removing (r,c) introduces no new ambiguity.
func Phase2(b *board.Board) (Phase2Result, error) {
	if b == nil {
		return Phase2Result{}, xerrors.New(xerrors.InvalidArgument, "elimination.Phase2", nil)
	}
	rng.EnsureSeeded()
	var result Phase2Result

	for {
		removedThisRound := 0
		n := b.N()
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				v, err := b.Get(r, c)
				if err != nil {
					return result, err
				}
				if v == 0 {
					continue
				}
				// Clear the cell before scanning for alternatives: otherwise
				// its own value would shadow every other cell in its row/
				// column/block and hasAlternative would never find one.
				if err := b.Set(r, c, 0); err != nil {
					return result, err
				}
				hasAlt, err := hasAlternative(b, board.Position{Row: r, Col: c}, v)
				if err != nil {
					return result, err
				}
				if hasAlt {
					if err := b.Set(r, c, v); err != nil {
						return result, err
					}
					continue
				}
				removedThisRound++
			}
		}
		result.Removed += removedThisRound
		result.Rounds++
		if removedThisRound == 0 {
			break
		}
	}
	return result, b.UpdateStats()
}

// hasAlternative reports whether v could legally be placed in some
// other, currently empty, cell sharing pos's row, column or block.
func hasAlternative(b *board.Board, pos board.Position, v int) (bool, error) {
	n := b.N()
	for c := 0; c < n; c++ {
		if c == pos.Col {
			continue
		}
		if ok, err := emptyAndSafe(b, board.Position{Row: pos.Row, Col: c}, v); err != nil {
			return false, err
		} else if ok {
			return true, nil
		}
	}
	for r := 0; r < n; r++ {
		if r == pos.Row {
			continue
		}
		if ok, err := emptyAndSafe(b, board.Position{Row: r, Col: pos.Col}, v); err != nil {
			return false, err
		} else if ok {
			return true, nil
		}
	}
	for _, bp := range b.CellsInBlock(b.BlockIndex(pos.Row, pos.Col)) {
		if bp == pos {
			continue
		}
		if ok, err := emptyAndSafe(b, bp, v); err != nil {
			return false, err
		} else if ok {
			return true, nil
		}
	}
	return false, nil
}

func emptyAndSafe(b *board.Board, pos board.Position, v int) (bool, error) {
	cur, err := b.GetPos(pos)
	if err != nil {
		return false, err
	}
	if cur != 0 {
		return false, nil
	}
	return validator.IsSafe(b, pos, v)
}
