package sudokugen

import (
	"github.com/chaLords/sudokugen/ac3"
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/completion"
	"github.com/chaLords/sudokugen/constraint"
	"github.com/chaLords/sudokugen/counter"
	"github.com/chaLords/sudokugen/difficulty"
	"github.com/chaLords/sudokugen/forced"
	"github.com/chaLords/sudokugen/validator"
)

// This file is a thin facade: every exported name below delegates
// straight to the leaf package that actually implements it. Callers who
// only need board/validation/completion primitives — without the full
// Generate orchestration — can use these directly instead of importing
// each leaf package.

// NewBoard matches board_create(k).
func NewBoard(k int) (*board.Board, error) { return board.New(k) }

// EvaluateDifficulty matches evaluate_difficulty(b).
func EvaluateDifficulty(b *board.Board) (difficulty.Difficulty, error) { return difficulty.Evaluate(b) }

// DifficultyToString matches difficulty_to_string(d).
func DifficultyToString(d difficulty.Difficulty) string { return difficulty.ToString(d) }

// CompleteBacktracking matches complete_backtracking(b).
func CompleteBacktracking(b *board.Board) (bool, error) { return completion.CompleteBacktracking(b) }

// CompleteAC3HB matches complete_ac3hb(b), using the default depth and
// timeout bounds for b's order.
func CompleteAC3HB(b *board.Board, reg *forced.Registry) (bool, error) {
	maxDepth := 0
	if b != nil {
		maxDepth = completion.DefaultMaxDepth(b.K())
	}
	state, err := completion.CompleteAC3HB(b, reg, maxDepth, completion.DefaultTimeout)
	return state == completion.Completed, err
}

// IsSafePosition matches is_safe_position(b, pos, v).
func IsSafePosition(b *board.Board, pos board.Position, v int) (bool, error) {
	return validator.IsSafe(b, pos, v)
}

// ValidateBoard matches validate_board(b).
func ValidateBoard(b *board.Board) (bool, error) { return validator.ValidateBoard(b) }

// FindEmptyCell matches find_empty_cell(b, &pos).
func FindEmptyCell(b *board.Board) (board.Position, bool, error) { return validator.FindEmpty(b) }

// CountSolutionsExact matches count_solutions_exact(b, limit).
func CountSolutionsExact(b *board.Board, limit int) (int, error) {
	return counter.CountSolutions(b, limit)
}

// NewConstraintNetwork matches the ConstraintNetwork "create" operation.
func NewConstraintNetwork(b *board.Board) (*constraint.Network, error) { return constraint.Build(b) }

// EnforceConsistency matches enforce_consistency(net, &stats).
func EnforceConsistency(net *constraint.Network) (bool, ac3.Stats) { return ac3.EnforceConsistency(net) }

// PropagateFrom matches propagate_from(net, r, c, v, &stats).
func PropagateFrom(net *constraint.Network, pos board.Position, v int) (bool, ac3.Stats) {
	return ac3.PropagateFrom(net, pos, v)
}

// FindSingles matches find_singles(net, &stats).
func FindSingles(net *constraint.Network) (bool, ac3.Stats) { return ac3.FindSingles(net) }

// ReviseArc matches revise_arc(net, xi, xj).
func ReviseArc(net *constraint.Network, xi, xj board.Position) bool {
	return ac3.ReviseArc(net, xi, xj)
}

// NewForcedCellsRegistry matches the ForcedCellsRegistry "create"
// operation.
func NewForcedCellsRegistry() *forced.Registry { return forced.NewRegistry() }

// CalculateDifficultyScore matches calculate_difficulty_score(classification, depth).
func CalculateDifficultyScore(c forced.Classification, depth int) int { return forced.Score(c, depth) }
