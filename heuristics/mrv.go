// Package heuristics provides cell-selection ordering for the
// completion engines. Currently only minimum-remaining-values;
// HeuristicStrategy in GenerationConfig is reserved for future
// additions.
package heuristics

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/constraint"
)

// MRV returns the cell with the smallest domain size greater than 1,
// ties broken by row-major order. The second return is false if no such
// cell exists (every domain is already a singleton or empty).
func MRV(net *constraint.Network) (board.Position, bool) {
	n := net.N()
	best := board.Position{Row: -1, Col: -1}
	bestSize := n + 1
	found := false
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			pos := board.Position{Row: r, Col: c}
			size := net.DomainSize(pos)
			if size > 1 && size < bestSize {
				bestSize = size
				best = pos
				found = true
			}
		}
	}
	return best, found
}
