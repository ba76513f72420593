package completion

import (
	"testing"
	"time"

	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/forced"
	"github.com/chaLords/sudokugen/validator"
)

func TestCompleteBacktrackingFillsEmptyBoard(t *testing.T) {
	b, _ := board.New(2)
	ok, err := CompleteBacktracking(b)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected CompleteBacktracking to succeed on an empty board")
	}
	valid, err := validator.ValidateBoard(b)
	if err != nil {
		t.Fatal(err)
	}
	if !valid {
		t.Error("completed board should have no conflicts")
	}
	if b.Empty() != 0 {
		t.Errorf("expected 0 empty cells, got %d", b.Empty())
	}
}

func TestCompleteBacktrackingRespectsPrefilledCells(t *testing.T) {
	b, _ := board.New(2)
	b.Set(0, 0, 3)
	b.UpdateStats()

	ok, err := CompleteBacktracking(b)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected success")
	}
	v, _ := b.Get(0, 0)
	if v != 3 {
		t.Errorf("prefilled cell should survive completion, got %d", v)
	}
}

func TestCompleteBacktrackingNilBoard(t *testing.T) {
	if _, err := CompleteBacktracking(nil); err == nil {
		t.Error("nil board should fail")
	}
}

func TestDiagonalPrefillFillsKBlocksAndSkipsNone(t *testing.T) {
	b, _ := board.New(3)
	if err := DiagonalPrefill(b); err != nil {
		t.Fatal(err)
	}
	if b.Clues() != b.N()*b.K() {
		t.Errorf("diagonal prefill should fill N*k=%d cells, got %d", b.N()*b.K(), b.Clues())
	}
	valid, err := validator.ValidateBoard(b)
	if err != nil {
		t.Fatal(err)
	}
	if !valid {
		t.Error("diagonal blocks never conflict, prefill should always validate")
	}
}

func TestDiagonalPrefillThenBacktrackingCompletes(t *testing.T) {
	b, _ := board.New(2)
	if err := DiagonalPrefill(b); err != nil {
		t.Fatal(err)
	}
	ok, err := CompleteBacktracking(b)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected completion to succeed after diagonal prefill")
	}
}

func TestDiagonalPrefillNilBoard(t *testing.T) {
	if err := DiagonalPrefill(nil); err == nil {
		t.Error("nil board should fail")
	}
}

func TestCompleteAC3HBFillsEmptyBoard(t *testing.T) {
	b, _ := board.New(2)
	reg := forced.NewRegistry()

	state, err := CompleteAC3HB(b, reg, DefaultMaxDepth(2), DefaultTimeout)
	if err != nil {
		t.Fatal(err)
	}
	if state != Completed {
		t.Fatalf("expected Completed, got %v", state)
	}
	valid, err := validator.ValidateBoard(b)
	if err != nil {
		t.Fatal(err)
	}
	if !valid {
		t.Error("completed board should have no conflicts")
	}
	if b.Empty() != 0 {
		t.Errorf("expected a fully filled board, got %d empty", b.Empty())
	}
}

func TestCompleteAC3HBRegistersEveryNonGivenCell(t *testing.T) {
	b, _ := board.New(2)
	reg := forced.NewRegistry()

	state, err := CompleteAC3HB(b, reg, DefaultMaxDepth(2), DefaultTimeout)
	if err != nil {
		t.Fatal(err)
	}
	if state != Completed {
		t.Fatalf("expected Completed, got %v", state)
	}
	stats := reg.Stats()
	total := 0
	for _, n := range stats {
		total += n
	}
	if total != b.TotalCells() {
		t.Errorf("every cell of an empty-start board should end up registered, got %d of %d", total, b.TotalCells())
	}
}

func TestCompleteAC3HBTimesOutGracefully(t *testing.T) {
	b, _ := board.New(3)
	reg := forced.NewRegistry()

	state, err := CompleteAC3HB(b, reg, DefaultMaxDepth(3), 0)
	if err != nil {
		t.Fatal(err)
	}
	if state != TimedOut {
		t.Errorf("a zero-duration timeout should report TimedOut immediately, got %v", state)
	}
}

func TestCompleteAC3HBNilArgs(t *testing.T) {
	if _, err := CompleteAC3HB(nil, forced.NewRegistry(), 10, time.Second); err == nil {
		t.Error("nil board should fail")
	}
	b, _ := board.New(2)
	if _, err := CompleteAC3HB(b, nil, 10, time.Second); err == nil {
		t.Error("nil registry should fail")
	}
}

func TestStateTerminal(t *testing.T) {
	terminal := []State{Completed, Failed, TimedOut}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%v should be terminal", s)
		}
	}
	nonTerminal := []State{Idle, Prefilled, Completing}
	for _, s := range nonTerminal {
		if s.Terminal() {
			t.Errorf("%v should not be terminal", s)
		}
	}
}
