// Package ac3 implements Mackworth's AC-3 arc-consistency algorithm over
// a constraint.Network: queue initialization, the revise operator,
// full and incremental (propagate-from-assignment) enforcement, and
// singleton detection.
package ac3

import (
	"time"

	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/constraint"
)

// Stats records the propagation metrics a caller may want to report.
type Stats struct {
	Revisions     int
	ValuesRemoved int
	Propagations  int
	TimeMs        int64
	Consistent    bool
}

type arc struct {
	Xi, Xj board.Position
}

// revise removes v from domain(Xi) when domain(Xj) has collapsed to the
// singleton {v} — the only way the all-different constraint between two
// peers can force an elimination. Returns whether Xi's domain changed.
func revise(net *constraint.Network, xi, xj board.Position) bool {
	v, ok := net.GetDomain(xj).Only()
	if !ok {
		return false
	}
	return net.RemoveValue(xi, v)
}

// ReviseArc exposes revise as a standalone callable operation.
func ReviseArc(net *constraint.Network, xi, xj board.Position) bool {
	return revise(net, xi, xj)
}

func allArcs(net *constraint.Network) []arc {
	n := net.N()
	arcs := make([]arc, 0, n*n*3)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			xi := board.Position{Row: r, Col: c}
			for _, xj := range net.Neighbors(xi) {
				arcs = append(arcs, arc{Xi: xi, Xj: xj})
			}
		}
	}
	return arcs
}

// run drains queue, applying revise to each arc and re-enqueuing
// dependents on change. If stopOnSingleton is set, it additionally
// returns early, with singleton=true, the moment
// any domain becomes a singleton (FindSingles semantics); otherwise it
// always drains to a fixed point (EnforceConsistency / PropagateFrom
// semantics).
func run(net *constraint.Network, queue []arc, stopOnSingleton bool) (singleton bool, stats Stats) {
	start := time.Now()
	stats.Consistent = true
	head := 0
	for head < len(queue) {
		a := queue[head]
		head++
		stats.Propagations++
		stats.Revisions++
		if revise(net, a.Xi, a.Xj) {
			stats.ValuesRemoved++
			if net.DomainEmpty(a.Xi) {
				stats.Consistent = false
				stats.TimeMs = time.Since(start).Milliseconds()
				return false, stats
			}
			if stopOnSingleton && net.DomainSize(a.Xi) == 1 {
				stats.TimeMs = time.Since(start).Milliseconds()
				return true, stats
			}
			for _, xk := range net.Neighbors(a.Xi) {
				if xk == a.Xj {
					continue
				}
				queue = append(queue, arc{Xi: xk, Xj: a.Xi})
			}
		}
	}
	stats.TimeMs = time.Since(start).Milliseconds()
	return false, stats
}

// EnforceConsistency drains the full arc queue to a fixed point,
// returning false (INCONSISTENT) the moment any domain empties.
func EnforceConsistency(net *constraint.Network) (bool, Stats) {
	_, stats := run(net, allArcs(net), false)
	return stats.Consistent, stats
}

// PropagateFrom seeds the queue with only the arcs (Xk → pos) for Xk in
// pos's peers — the incremental propagation to run right after an
// assignment.
func PropagateFrom(net *constraint.Network, pos board.Position, v int) (bool, Stats) {
	neighbors := net.Neighbors(pos)
	queue := make([]arc, 0, len(neighbors))
	for _, xk := range neighbors {
		queue = append(queue, arc{Xi: xk, Xj: pos})
	}
	_, stats := run(net, queue, false)
	return stats.Consistent, stats
}

// FindSingles runs the same enforcement loop but returns true as soon as
// at least one domain has become a singleton, without necessarily
// reaching a full fixed point. A non-given cell already collapsed to a
// singleton before this call runs — for instance by Build's own initial
// forward checking — counts too, not only singletons produced by this
// run's own revisions.
func FindSingles(net *constraint.Network) (bool, Stats) {
	if net.UnassignedSingleton() {
		return true, Stats{Consistent: true}
	}
	return run(net, allArcs(net), true)
}
