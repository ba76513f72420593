package constraint

import "github.com/chaLords/sudokugen/board"

// peerCache holds the precomputed, deduplicated peer list for every cell
// of a k-ordered board: row peers ∪ column peers ∪ block peers, self
// excluded. Peer lists depend only on k, not on a board's contents, so
// they are computed once per k and shared across every Network built for
// that order, instead of a compile-time [81][]int global table fixed to
// a 9x9 grid.
var peerCache = map[int][][]board.Position{}

func peersForK(k int) [][]board.Position {
	if cached, ok := peerCache[k]; ok {
		return cached
	}
	n := k * k
	table := make([][]board.Position, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			idx := r*n + c
			seen := make(map[board.Position]bool)
			var list []board.Position
			add := func(p board.Position) {
				if p.Row == r && p.Col == c {
					return
				}
				if !seen[p] {
					seen[p] = true
					list = append(list, p)
				}
			}
			for cc := 0; cc < n; cc++ {
				add(board.Position{Row: r, Col: cc})
			}
			for rr := 0; rr < n; rr++ {
				add(board.Position{Row: rr, Col: c})
			}
			blockRow, blockCol := (r/k)*k, (c/k)*k
			for rr := blockRow; rr < blockRow+k; rr++ {
				for cc := blockCol; cc < blockCol+k; cc++ {
					add(board.Position{Row: rr, Col: cc})
				}
			}
			table[idx] = list
		}
	}
	peerCache[k] = table
	return table
}
