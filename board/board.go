// Package board implements the Board entity: a dynamically sized N×N
// Latin-square grid (N = k²) plus cached clue/empty counts. It is pure
// data with invariant maintenance — it does not check Sudoku legality,
// that is the validator package's job.
package board

import (
	"strings"

	"github.com/chaLords/sudokugen/xerrors"
)

// MinK and MaxK bound the supported subgrid order.
const (
	MinK = 2
	MaxK = 5
)

// Position is a 0-based (row, col) coordinate, always < N.
type Position struct {
	Row int
	Col int
}

// Board is an N×N grid of symbols, 0 meaning empty and 1..N a placed
// value, backed by a single contiguous row-stride buffer rather than an
// array of row pointers — better cache locality and simpler ownership.
type Board struct {
	k     int
	n     int
	cells []int
	clues int
	empty int
}

// New creates an empty Board of order k (subgrid side length). k must be
// in [MinK, MaxK].
func New(k int) (*Board, error) {
	if k < MinK || k > MaxK {
		return nil, xerrors.New(xerrors.InvalidArgument, "board.New", nil)
	}
	n := k * k
	b := &Board{k: k, n: n, cells: make([]int, n*n)}
	b.Init()
	return b, nil
}

// Init zeroes every cell and resets the cached clue/empty counts.
func (b *Board) Init() error {
	if b == nil {
		return xerrors.New(xerrors.InvalidArgument, "board.Init", nil)
	}
	for i := range b.cells {
		b.cells[i] = 0
	}
	b.clues = 0
	b.empty = b.n * b.n
	return nil
}

// K returns the subgrid order.
func (b *Board) K() int {
	if b == nil {
		return 0
	}
	return b.k
}

// N returns the board side length (N = k²).
func (b *Board) N() int {
	if b == nil {
		return 0
	}
	return b.n
}

// SubgridSize is an alias for K.
func (b *Board) SubgridSize() int { return b.K() }

// BoardSize is an alias for N.
func (b *Board) BoardSize() int { return b.N() }

// TotalCells returns N².
func (b *Board) TotalCells() int {
	if b == nil {
		return 0
	}
	return b.n * b.n
}

// Clues returns the cached count of filled cells.
func (b *Board) Clues() int {
	if b == nil {
		return 0
	}
	return b.clues
}

// Empty returns the cached count of empty cells.
func (b *Board) Empty() int {
	if b == nil {
		return 0
	}
	return b.empty
}

func (b *Board) inRange(r, c int) bool {
	return r >= 0 && r < b.n && c >= 0 && c < b.n
}

func (b *Board) index(r, c int) int { return r*b.n + c }

// Get returns the value at (row, col).
func (b *Board) Get(row, col int) (int, error) {
	if b == nil {
		return 0, xerrors.New(xerrors.InvalidArgument, "board.Get", nil)
	}
	if !b.inRange(row, col) {
		return 0, xerrors.New(xerrors.InvalidArgument, "board.Get", nil)
	}
	return b.cells[b.index(row, col)], nil
}

// GetPos is Get taking a Position.
func (b *Board) GetPos(pos Position) (int, error) { return b.Get(pos.Row, pos.Col) }

// Set writes value at (row, col). It fails when the board is nil, the
// position is out of range, or value is outside [0, N]. It does not
// check Sudoku legality and does not update the clue/empty cache — call
// UpdateStats to reconcile those after a batch of Set calls.
func (b *Board) Set(row, col, value int) error {
	if b == nil {
		return xerrors.New(xerrors.InvalidArgument, "board.Set", nil)
	}
	if !b.inRange(row, col) {
		return xerrors.New(xerrors.InvalidArgument, "board.Set", nil)
	}
	if value < 0 || value > b.n {
		return xerrors.New(xerrors.InvalidArgument, "board.Set", nil)
	}
	b.cells[b.index(row, col)] = value
	return nil
}

// SetPos is Set taking a Position.
func (b *Board) SetPos(pos Position, value int) error { return b.Set(pos.Row, pos.Col, value) }

// UpdateStats rescans the grid and recomputes clues/empty. Set does not
// auto-update these, by design, so callers can batch mutations.
func (b *Board) UpdateStats() error {
	if b == nil {
		return xerrors.New(xerrors.InvalidArgument, "board.UpdateStats", nil)
	}
	clues := 0
	for _, v := range b.cells {
		if v != 0 {
			clues++
		}
	}
	b.clues = clues
	b.empty = b.n*b.n - clues
	return nil
}

// BlockIndex returns the block index (0..N) containing (row, col).
func (b *Board) BlockIndex(row, col int) int {
	return (row/b.k)*b.k + col/b.k
}

// CellsInBlock returns every Position belonging to block index i, in
// row-major order within the block.
func (b *Board) CellsInBlock(i int) []Position {
	base := NewSubGrid(b.k, i)
	cells := make([]Position, 0, b.n)
	for c := 0; c < b.n; c++ {
		cells = append(cells, base.Position(c))
	}
	return cells
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	nb := &Board{k: b.k, n: b.n, clues: b.clues, empty: b.empty}
	nb.cells = make([]int, len(b.cells))
	copy(nb.cells, b.cells)
	return nb
}

// Snapshot returns a copy of the raw cell buffer, for callers that need
// to roll back a batch of mutations without cloning the whole Board.
func (b *Board) Snapshot() []int {
	if b == nil {
		return nil
	}
	snap := make([]int, len(b.cells))
	copy(snap, b.cells)
	return snap
}

// Restore replaces the cell buffer from a prior Snapshot and recomputes
// the clue/empty cache.
func (b *Board) Restore(snap []int) error {
	if b == nil {
		return xerrors.New(xerrors.InvalidArgument, "board.Restore", nil)
	}
	if len(snap) != len(b.cells) {
		return xerrors.New(xerrors.InvalidArgument, "board.Restore", nil)
	}
	copy(b.cells, snap)
	return b.UpdateStats()
}

// String renders the grid row-major, one row per line, '.' for empty
// cells and base-36 digits for values above 9 — a minimal debug view,
// not a rich pretty-printer.
func (b *Board) String() string {
	if b == nil {
		return "<nil board>"
	}
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	var sb strings.Builder
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			v := b.cells[b.index(r, c)]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(alphabet[v])
			}
			if c != b.n-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
