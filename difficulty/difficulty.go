// Package difficulty classifies a puzzle by its proportional clue count
// and supplies the per-k Phase 3 target rate.
package difficulty

import (
	"math"

	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/xerrors"
)

// Difficulty is one of Easy, Medium, Hard or Expert.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// ToString is an explicit-call alias for String.
func ToString(d Difficulty) string { return d.String() }

// roundHalfEven computes the threshold rounding ⌊n·p+0.5⌋, which for
// k=3 reduces to the classical 45/35/25 clue thresholds.
func roundHalfEven(n int, p float64) int {
	return int(math.Floor(float64(n)*p + 0.5))
}

// Evaluate classifies b by clues/N²:
//
//	Easy   if c/n >= 0.55
//	Medium if 0.43 <= c/n < 0.55
//	Hard   if 0.31 <= c/n < 0.43
//	Expert otherwise
//
// Each ratio is first turned into a whole clue count with
// roundHalfEven (45/35/25 for k=3), and c is compared against those
// counts, so a board at a rounded threshold (e.g. 25 clues for k=3,
// 25/81 < 0.31) lands in the higher tier.
func Evaluate(b *board.Board) (Difficulty, error) {
	if b == nil {
		return Easy, xerrors.New(xerrors.InvalidArgument, "difficulty.Evaluate", nil)
	}
	total := b.TotalCells()
	clues := b.Clues()
	easyThreshold := roundHalfEven(total, 0.55)
	mediumThreshold := roundHalfEven(total, 0.43)
	hardThreshold := roundHalfEven(total, 0.31)

	switch {
	case clues >= easyThreshold:
		return Easy, nil
	case clues >= mediumThreshold:
		return Medium, nil
	case clues >= hardThreshold:
		return Hard, nil
	default:
		return Expert, nil
	}
}

// Rate returns the Phase 3 proportional elimination target for subgrid
// order k: 30.864% for k<=3, 27% for k=4, 23% for k=5.
func Rate(k int) float64 {
	switch {
	case k <= 3:
		return 0.30864
	case k == 4:
		return 0.27
	default:
		return 0.23
	}
}

// Target returns the Phase 3 clue-removal target T = ⌈N²·p⌉ for a board
// of the given k.
func Target(k int) int {
	n := k * k
	total := n * n
	p := Rate(k)
	return int(math.Ceil(float64(total) * p))
}
