// Package constraint implements the ConstraintNetwork entity: a
// per-cell bitset Domain plus precomputed neighbor (peer) lists,
// supporting remove/assign/restore and domain queries.
package constraint

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/xerrors"
)

// Network is a ConstraintNetwork built from a board.Board snapshot.
type Network struct {
	k       int
	n       int
	domains []Domain
	peers   [][]board.Position
	given   []bool
}

// Build constructs a Network from b: every filled cell gets a singleton
// domain, every empty cell starts as the full domain with its row/
// column/block peers' already-placed values removed (initial forward
// checking).
func Build(b *board.Board) (*Network, error) {
	if b == nil {
		return nil, xerrors.New(xerrors.InvalidArgument, "constraint.Build", nil)
	}
	k, n := b.K(), b.N()
	net := &Network{
		k:       k,
		n:       n,
		domains: make([]Domain, n*n),
		peers:   peersForK(k),
		given:   make([]bool, n*n),
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v, err := b.Get(r, c)
			if err != nil {
				return nil, err
			}
			idx := r*n + c
			if v != 0 {
				net.domains[idx] = Domain(0).Set(v)
				net.given[idx] = true
			} else {
				net.domains[idx] = FullDomain(n)
			}
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v, _ := b.Get(r, c)
			if v == 0 {
				continue
			}
			for _, p := range net.Neighbors(board.Position{Row: r, Col: c}) {
				net.domains[net.idx(p)] = net.domains[net.idx(p)].Clear(v)
			}
		}
	}
	return net, nil
}

func (net *Network) idx(pos board.Position) int { return pos.Row*net.n + pos.Col }

// N returns the board side length this network was built for.
func (net *Network) N() int { return net.n }

// K returns the subgrid order this network was built for.
func (net *Network) K() int { return net.k }

// GetDomain returns the current Domain of pos.
func (net *Network) GetDomain(pos board.Position) Domain { return net.domains[net.idx(pos)] }

// HasValue reports whether v is still a candidate at pos.
func (net *Network) HasValue(pos board.Position, v int) bool {
	return net.domains[net.idx(pos)].Has(v)
}

// DomainSize returns the popcount of pos's domain.
func (net *Network) DomainSize(pos board.Position) int {
	return net.domains[net.idx(pos)].Popcount()
}

// DomainEmpty reports a dead-end domain at pos.
func (net *Network) DomainEmpty(pos board.Position) bool {
	return net.domains[net.idx(pos)].IsEmpty()
}

// RemoveValue removes v from pos's domain, returning whether it had
// been present.
func (net *Network) RemoveValue(pos board.Position, v int) bool {
	i := net.idx(pos)
	if !net.domains[i].Has(v) {
		return false
	}
	net.domains[i] = net.domains[i].Clear(v)
	return true
}

// IsGiven reports whether pos held a clue at Build time.
func (net *Network) IsGiven(pos board.Position) bool {
	return net.given[net.idx(pos)]
}

// AssignValue collapses pos's domain to the singleton {v}.
func (net *Network) AssignValue(pos board.Position, v int) {
	net.domains[net.idx(pos)] = Domain(0).Set(v)
}

// UnassignedSingleton scans for a non-given cell whose domain has
// already collapsed to one candidate — true the moment forward checking
// (at Build time or since) has forced a cell, independent of whether
// this call's own propagation produced it.
func (net *Network) UnassignedSingleton() bool {
	for r := 0; r < net.n; r++ {
		for c := 0; c < net.n; c++ {
			idx := r*net.n + c
			if net.given[idx] {
				continue
			}
			if net.domains[idx].Popcount() == 1 {
				return true
			}
		}
	}
	return false
}

// RestoreDomain resets pos's domain to the full 1..N set.
func (net *Network) RestoreDomain(pos board.Position) {
	net.domains[net.idx(pos)] = FullDomain(net.n)
}

// Neighbors returns pos's precomputed, deduplicated peer list (row ∪
// column ∪ block, self excluded).
func (net *Network) Neighbors(pos board.Position) []board.Position {
	return net.peers[net.idx(pos)]
}

// TotalPossibilities sums the popcount of every cell's domain.
func (net *Network) TotalPossibilities() int {
	total := 0
	for _, d := range net.domains {
		total += d.Popcount()
	}
	return total
}

// Snapshot copies every domain, for rollback during backtracking.
func (net *Network) Snapshot() []Domain {
	snap := make([]Domain, len(net.domains))
	copy(snap, net.domains)
	return snap
}

// Restore replaces every domain from a prior Snapshot.
func (net *Network) Restore(snap []Domain) {
	copy(net.domains, snap)
}

// ApplyToBoard writes every singleton domain back onto b, used when a
// completion engine finishes solving via the network.
func (net *Network) ApplyToBoard(b *board.Board) error {
	for r := 0; r < net.n; r++ {
		for c := 0; c < net.n; c++ {
			pos := board.Position{Row: r, Col: c}
			if v, ok := net.GetDomain(pos).Only(); ok {
				if err := b.SetPos(pos, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
