package completion

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/rng"
	"github.com/chaLords/sudokugen/xerrors"
)

// DiagonalPrefill fills the k diagonal blocks (index i*(k+1) for
// i=0..k-1) with independent random permutations of 1..N. Those blocks
// share no row, column or block with each other, so every placement is
// trivially valid — this seed reduces the symmetry subsequent
// completion has to break. Produces N*k filled cells and transitions
// Idle -> Prefilled.
func DiagonalPrefill(b *board.Board) error {
	if b == nil {
		return xerrors.New(xerrors.InvalidArgument, "completion.DiagonalPrefill", nil)
	}
	rng.EnsureSeeded()
	k := b.K()
	perm := make([]int, b.N())
	for i := 0; i < k; i++ {
		blockIndex := i * (k + 1)
		rng.Permutation(perm, 1)
		for cellIdx, pos := range b.CellsInBlock(blockIndex) {
			if err := b.SetPos(pos, perm[cellIdx]); err != nil {
				return err
			}
		}
	}
	return b.UpdateStats()
}
