package completion

import (
	"time"

	"github.com/chaLords/sudokugen/ac3"
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/constraint"
	"github.com/chaLords/sudokugen/forced"
	"github.com/chaLords/sudokugen/heuristics"
	"github.com/chaLords/sudokugen/rng"
	"github.com/chaLords/sudokugen/xerrors"
)

// DefaultMaxDepth returns a recursion-depth bound sized to k; smaller
// boards get a tighter bound since their search trees are shallower
// anyway.
func DefaultMaxDepth(k int) int {
	switch {
	case k <= 3:
		return 100
	case k == 4:
		return 130
	default:
		return 150
	}
}

// DefaultTimeout is the default wall-clock bound for a completion
// attempt.
const DefaultTimeout = 60 * time.Second

// CompleteAC3HB fills every empty cell of b using AC-3 propagation
// interleaved with MRV-ordered backtracking. Every cell it assigns —
// whether forced by a pre-branch naked/hidden single
// settle pass or chosen by branching — is recorded in reg with a
// classification and depth, feeding the Forced-Cells Registry that
// Phase 3 elimination later consults. maxDepth and timeout bound the
// search so an intractable instance (most commonly k=5) fails cleanly
// instead of running away.
func CompleteAC3HB(b *board.Board, reg *forced.Registry, maxDepth int, timeout time.Duration) (State, error) {
	if b == nil {
		return Failed, xerrors.New(xerrors.InvalidArgument, "completion.CompleteAC3HB", nil)
	}
	if reg == nil {
		return Failed, xerrors.New(xerrors.InvalidArgument, "completion.CompleteAC3HB", nil)
	}
	rng.EnsureSeeded()

	net, err := constraint.Build(b)
	if err != nil {
		return Failed, err
	}
	if ok, _ := ac3.EnforceConsistency(net); !ok {
		return Failed, nil
	}

	givens := make(map[board.Position]bool)
	n := b.N()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v, _ := b.Get(r, c); v != 0 {
				givens[board.Position{Row: r, Col: c}] = true
			}
		}
	}

	deadline := time.Now().Add(timeout)
	state, err := acStep(net, reg, givens, 0, maxDepth, deadline)
	if err != nil {
		return Failed, err
	}
	if state == Completed {
		if err := net.ApplyToBoard(b); err != nil {
			return Failed, err
		}
		if err := b.UpdateStats(); err != nil {
			return Failed, err
		}
	}
	return state, nil
}

// settled reports whether pos is already fixed — either an original
// clue or a cell the registry has already classified in this branch —
// so neither the settle pass nor MRV branching needs to touch it again.
func settled(reg *forced.Registry, givens map[board.Position]bool, pos board.Position) bool {
	return givens[pos] || reg.IsRegistered(pos)
}

func acStep(net *constraint.Network, reg *forced.Registry, givens map[board.Position]bool, depth, maxDepth int, deadline time.Time) (State, error) {
	if time.Now().After(deadline) {
		return TimedOut, nil
	}
	if depth > maxDepth {
		return Failed, nil
	}

	ok, err := settle(net, reg, givens, depth)
	if err != nil {
		return Failed, err
	}
	if !ok {
		return Failed, nil
	}

	pos, found := heuristics.MRV(net)
	if !found {
		return Completed, nil
	}

	values := net.GetDomain(pos).ToSlice(net.N())
	rng.Shuffle(values)

	for _, v := range values {
		domainSnapshot := net.Snapshot()
		regSnapshot := reg.Snapshot()

		net.AssignValue(pos, v)
		consistent, stats := ac3.PropagateFrom(net, pos, v)

		classification := forced.Backtracked
		if stats.ValuesRemoved > 0 {
			classification = forced.Propagated
		}
		reg.Register(pos, v, classification, depth)

		if consistent {
			sub, err := acStep(net, reg, givens, depth+1, maxDepth, deadline)
			if err != nil {
				return Failed, err
			}
			if sub == Completed {
				return Completed, nil
			}
			if sub == TimedOut {
				return TimedOut, nil
			}
		}

		net.Restore(domainSnapshot)
		reg.Restore(regSnapshot)
	}

	return Failed, nil
}

// settle repeatedly assigns cells forced by the naked-single rule (a
// cell whose own domain has collapsed to one candidate) and the
// hidden-single rule (a value that has only one legal cell left
// somewhere in one of its row/column/block regions, even though that
// cell's own domain still has other candidates), propagating after
// each, until neither rule fires or the network goes inconsistent.
// Settling before MRV branches keeps naked/hidden singles out of the
// classification lattice's Propagated/Backtracked tiers, preserving its
// ascending-difficulty ordering.
func settle(net *constraint.Network, reg *forced.Registry, givens map[board.Position]bool, depth int) (bool, error) {
	for {
		changed := false

		for r := 0; r < net.N(); r++ {
			for c := 0; c < net.N(); c++ {
				pos := board.Position{Row: r, Col: c}
				if settled(reg, givens, pos) {
					continue
				}
				v, ok := net.GetDomain(pos).Only()
				if !ok {
					continue
				}
				reg.Register(pos, v, forced.NakedSingle, depth)
				consistent, _ := ac3.PropagateFrom(net, pos, v)
				if !consistent {
					return false, nil
				}
				changed = true
			}
		}

		hiddenPos, hiddenVal, found := findHiddenSingle(net, reg, givens)
		if found {
			net.AssignValue(hiddenPos, hiddenVal)
			reg.Register(hiddenPos, hiddenVal, forced.HiddenSingle, depth)
			consistent, _ := ac3.PropagateFrom(net, hiddenPos, hiddenVal)
			if !consistent {
				return false, nil
			}
			changed = true
		}

		if !changed {
			return true, nil
		}
	}
}

// findHiddenSingle scans every row, column and block region for a value
// that has exactly one remaining candidate cell in that region.
func findHiddenSingle(net *constraint.Network, reg *forced.Registry, givens map[board.Position]bool) (board.Position, int, bool) {
	n := net.N()
	k := net.K()

	regionOf := func(positions []board.Position) (board.Position, int, bool) {
		for v := 1; v <= n; v++ {
			count := 0
			var only board.Position
			for _, pos := range positions {
				if settled(reg, givens, pos) {
					continue
				}
				if net.HasValue(pos, v) {
					count++
					only = pos
				}
			}
			if count == 1 {
				return only, v, true
			}
		}
		return board.Position{}, 0, false
	}

	for r := 0; r < n; r++ {
		row := make([]board.Position, n)
		for c := 0; c < n; c++ {
			row[c] = board.Position{Row: r, Col: c}
		}
		if pos, v, ok := regionOf(row); ok {
			return pos, v, true
		}
	}
	for c := 0; c < n; c++ {
		col := make([]board.Position, n)
		for r := 0; r < n; r++ {
			col[r] = board.Position{Row: r, Col: c}
		}
		if pos, v, ok := regionOf(col); ok {
			return pos, v, true
		}
	}
	for i := 0; i < n; i++ {
		block := board.NewSubGrid(k, i)
		cells := make([]board.Position, n)
		for j := 0; j < n; j++ {
			cells[j] = block.Position(j)
		}
		if pos, v, ok := regionOf(cells); ok {
			return pos, v, true
		}
	}
	return board.Position{}, 0, false
}
