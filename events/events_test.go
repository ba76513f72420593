package events

import (
	"testing"

	"github.com/chaLords/sudokugen/board"
)

func TestEmitNoCallbackIsNoOp(t *testing.T) {
	d := NewDispatcher(nil, nil)
	// Should not panic.
	d.Emit(Data{Type: GenerationStart})
}

func TestEmitNilDispatcherIsNoOp(t *testing.T) {
	var d *Dispatcher
	d.Emit(Data{Type: GenerationStart})
}

func TestEmitInvokesCallbackWithUserData(t *testing.T) {
	var gotType Type
	var gotUserData any
	cb := func(data Data, userData any) {
		gotType = data.Type
		gotUserData = userData
	}
	d := NewDispatcher(cb, "marker")
	d.Emit(Data{Type: Phase1Removed, Pos: board.Position{Row: 1, Col: 2}, Value: 5})

	if gotType != Phase1Removed {
		t.Errorf("want Phase1Removed, got %v", gotType)
	}
	if gotUserData != "marker" {
		t.Errorf("want user data %q, got %v", "marker", gotUserData)
	}
}

func TestEmitOrderingIsStrict(t *testing.T) {
	var order []Type
	cb := func(data Data, userData any) {
		order = append(order, data.Type)
	}
	d := NewDispatcher(cb, nil)
	d.Emit(Data{Type: GenerationStart})
	d.Emit(Data{Type: DiagonalFillStart})
	d.Emit(Data{Type: DiagonalFillComplete})
	d.Emit(Data{Type: GenerationComplete})

	want := []Type{GenerationStart, DiagonalFillStart, DiagonalFillComplete, GenerationComplete}
	if len(order) != len(want) {
		t.Fatalf("want %d events, got %d", len(want), len(order))
	}
	for i, ty := range want {
		if order[i] != ty {
			t.Errorf("event %d: want %v, got %v", i, ty, order[i])
		}
	}
}

func TestEveryTypeHasAStringer(t *testing.T) {
	types := []Type{
		GenerationStart, GenerationComplete, GenerationFailed,
		DiagonalFillStart, DiagonalFillComplete,
		BacktrackStart, BacktrackComplete,
		Phase1Start, Phase1Complete, Phase1CellSelected, Phase1Removed,
		Phase2Start, Phase2Complete, Phase2RoundStart, Phase2RoundComplete, Phase2CellTested, Phase2Removed, Phase2Kept,
		Phase3Start, Phase3Complete, Phase3CellTested, Phase3Removed, Phase3Kept,
		AC3Start, AC3Revision, AC3ValueRemoved, AC3Complete, AC3DeadEnd,
		HeuristicSelect,
	}
	seen := make(map[string]bool)
	for _, ty := range types {
		s := ty.String()
		if s == "unknown" || s == "" {
			t.Errorf("type %d has no distinct String()", ty)
		}
		if seen[s] {
			t.Errorf("duplicate String() value %q", s)
		}
		seen[s] = true
	}
}
