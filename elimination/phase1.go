// Package elimination implements the three-phase clue-removal pipeline
// that runs after completion: regional seeding, no-alternatives
// removal, and verified free elimination under the Forced-Cells
// Registry's protection policy.
package elimination

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/rng"
	"github.com/chaLords/sudokugen/xerrors"
)

// Phase1 shuffles the block order and clears exactly one uniformly
// random filled cell from each of the N blocks, removing N cells total.
func Phase1(b *board.Board) error {
	if b == nil {
		return xerrors.New(xerrors.InvalidArgument, "elimination.Phase1", nil)
	}
	rng.EnsureSeeded()
	n := b.N()

	blockOrder := make([]int, n)
	rng.Permutation(blockOrder, 0)

	for _, blockIdx := range blockOrder {
		cells := b.CellsInBlock(blockIdx)
		filled := make([]board.Position, 0, len(cells))
		for _, pos := range cells {
			v, err := b.GetPos(pos)
			if err != nil {
				return err
			}
			if v != 0 {
				filled = append(filled, pos)
			}
		}
		if len(filled) == 0 {
			continue
		}
		pick := filled[rng.UniformInclusive(len(filled)-1)]
		if err := b.SetPos(pick, 0); err != nil {
			return err
		}
	}
	return b.UpdateStats()
}
