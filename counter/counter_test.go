package counter

import (
	"testing"

	"github.com/chaLords/sudokugen/board"
)

func filled4x4() *board.Board {
	b, _ := board.New(2)
	grid := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	for r, row := range grid {
		for c, v := range row {
			b.Set(r, c, v)
		}
	}
	b.UpdateStats()
	return b
}

func TestCountSolutionsCompleteBoardIsOne(t *testing.T) {
	b := filled4x4()
	n, err := CountSolutions(b, 10)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("a fully solved board has exactly one completion, got %d", n)
	}
}

func TestCountSolutionsRestoresBoard(t *testing.T) {
	b := filled4x4()
	before := b.Snapshot()
	b.Set(0, 0, 0)
	b.UpdateStats()

	if _, err := CountSolutions(b, 10); err != nil {
		t.Fatal(err)
	}

	v, _ := b.Get(0, 0)
	if v != 0 {
		t.Errorf("CountSolutions must restore the cell it emptied, got %d", v)
	}
	after := b.Snapshot()
	after[0] = 0
	for i := range before {
		if i == 0 {
			continue
		}
		if before[i] != after[i] {
			t.Fatalf("board mutated beyond the cleared cell at index %d", i)
		}
	}
}

func TestCountSolutionsStopsAtLimit(t *testing.T) {
	b, _ := board.New(2)
	b.UpdateStats()
	n, err := CountSolutions(b, 1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("an empty board has many completions; limit=1 should stop at 1, got %d", n)
	}
}

func TestHasUniqueSolution(t *testing.T) {
	b := filled4x4()
	b.Set(0, 0, 0)
	b.UpdateStats()

	unique, err := HasUniqueSolution(b)
	if err != nil {
		t.Fatal(err)
	}
	if !unique {
		t.Error("clearing a single cell from a valid 4x4 Latin square should leave a unique completion")
	}
}

func TestCountSolutionsNilBoard(t *testing.T) {
	if _, err := CountSolutions(nil, 1); err == nil {
		t.Error("nil board should fail")
	}
}

func TestCountSolutionsInvalidLimit(t *testing.T) {
	b := filled4x4()
	if _, err := CountSolutions(b, 0); err == nil {
		t.Error("limit<=0 should fail")
	}
}
