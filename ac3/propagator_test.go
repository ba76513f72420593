package ac3

import (
	"testing"

	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/constraint"
)

func TestEnforceConsistencyPropagatesPlacedValue(t *testing.T) {
	b, _ := board.New(3)
	b.Set(0, 0, 5)
	b.UpdateStats()
	net, _ := constraint.Build(b)

	ok, stats := EnforceConsistency(net)
	if !ok || !stats.Consistent {
		t.Fatalf("a single placed value should keep the network consistent, stats=%+v", stats)
	}

	origin := board.Position{Row: 0, Col: 0}
	if v, isSingle := net.GetDomain(origin).Only(); !isSingle || v != 5 {
		t.Errorf("origin domain should remain {5}, got %v", net.GetDomain(origin))
	}
	for _, p := range net.Neighbors(origin) {
		if net.HasValue(p, 5) {
			t.Errorf("peer %+v of the placed cell should not have 5 as a candidate", p)
		}
	}
}

// TestEnforceConsistencyForcesLastDigit covers a full row minus one
// cell: that forces the last cell's domain to the single remaining
// digit.
func TestEnforceConsistencyForcesLastDigit(t *testing.T) {
	b, _ := board.New(3)
	for c := 0; c < 8; c++ {
		b.Set(0, c, c+1)
	}
	b.UpdateStats()
	net, _ := constraint.Build(b)

	ok, _ := EnforceConsistency(net)
	if !ok {
		t.Fatal("board should remain consistent")
	}
	last := board.Position{Row: 0, Col: 8}
	if v, isSingle := net.GetDomain(last).Only(); !isSingle || v != 9 {
		t.Errorf("last cell of the row should be forced to 9, got %v", net.GetDomain(last))
	}
}

func TestFindSinglesReturnsTrueOnFirstSingleton(t *testing.T) {
	b, _ := board.New(3)
	for c := 0; c < 8; c++ {
		b.Set(0, c, c+1)
	}
	b.UpdateStats()
	net, _ := constraint.Build(b)

	found, _ := FindSingles(net)
	if !found {
		t.Error("FindSingles should detect the forced last cell of the row")
	}
}

func TestEnforceConsistencyDetectsInconsistency(t *testing.T) {
	b, _ := board.New(2)
	net, _ := constraint.Build(b)
	pos := board.Position{Row: 0, Col: 0}

	// Drain the domain to empty directly to simulate an unsolvable state.
	for v := 1; v <= net.N(); v++ {
		net.RemoveValue(pos, v)
	}
	ok, stats := EnforceConsistency(net)
	if ok || stats.Consistent {
		t.Error("an empty domain should be reported as INCONSISTENT")
	}
}

func TestPropagateFromOnlyTouchesPeers(t *testing.T) {
	b, _ := board.New(3)
	net, _ := constraint.Build(b)
	pos := board.Position{Row: 0, Col: 0}
	net.AssignValue(pos, 7)

	ok, stats := PropagateFrom(net, pos, 7)
	if !ok {
		t.Fatalf("propagation from a fresh board should stay consistent, stats=%+v", stats)
	}
	for _, p := range net.Neighbors(pos) {
		if net.HasValue(p, 7) {
			t.Errorf("peer %+v should have had 7 removed", p)
		}
	}
	far := board.Position{Row: 8, Col: 8}
	if !net.HasValue(far, 7) {
		t.Error("a non-peer cell should be untouched by propagate_from")
	}
}

func TestReviseArc(t *testing.T) {
	b, _ := board.New(2)
	net, _ := constraint.Build(b)
	xi := board.Position{Row: 0, Col: 0}
	xj := board.Position{Row: 0, Col: 1}
	net.AssignValue(xj, 2)
	if changed := ReviseArc(net, xi, xj); !changed {
		t.Error("revising against a singleton peer holding a shared candidate should change Xi")
	}
	if net.HasValue(xi, 2) {
		t.Error("2 should have been removed from Xi's domain")
	}
}
