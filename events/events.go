// Package events implements a single-callback observability hook for
// the generation engine: a synchronous callback invoked in strict
// program order, disabled entirely when no callback is registered.
package events

import "github.com/chaLords/sudokugen/board"

// Type enumerates every event the generation lifecycle can emit.
type Type int

const (
	GenerationStart Type = iota
	GenerationComplete
	GenerationFailed

	DiagonalFillStart
	DiagonalFillComplete

	BacktrackStart
	BacktrackComplete

	Phase1Start
	Phase1Complete
	Phase1CellSelected
	Phase1Removed

	Phase2Start
	Phase2Complete
	Phase2RoundStart
	Phase2RoundComplete
	Phase2CellTested
	Phase2Removed
	Phase2Kept

	Phase3Start
	Phase3Complete
	Phase3CellTested
	Phase3Removed
	Phase3Kept

	AC3Start
	AC3Revision
	AC3ValueRemoved
	AC3Complete
	AC3DeadEnd

	HeuristicSelect
)

func (t Type) String() string {
	switch t {
	case GenerationStart:
		return "generation_start"
	case GenerationComplete:
		return "generation_complete"
	case GenerationFailed:
		return "generation_failed"
	case DiagonalFillStart:
		return "diagonal_fill_start"
	case DiagonalFillComplete:
		return "diagonal_fill_complete"
	case BacktrackStart:
		return "backtrack_start"
	case BacktrackComplete:
		return "backtrack_complete"
	case Phase1Start:
		return "phase1_start"
	case Phase1Complete:
		return "phase1_complete"
	case Phase1CellSelected:
		return "phase1_cell_selected"
	case Phase1Removed:
		return "phase1_removed"
	case Phase2Start:
		return "phase2_start"
	case Phase2Complete:
		return "phase2_complete"
	case Phase2RoundStart:
		return "phase2_round_start"
	case Phase2RoundComplete:
		return "phase2_round_complete"
	case Phase2CellTested:
		return "phase2_cell_tested"
	case Phase2Removed:
		return "phase2_removed"
	case Phase2Kept:
		return "phase2_kept"
	case Phase3Start:
		return "phase3_start"
	case Phase3Complete:
		return "phase3_complete"
	case Phase3CellTested:
		return "phase3_cell_tested"
	case Phase3Removed:
		return "phase3_removed"
	case Phase3Kept:
		return "phase3_kept"
	case AC3Start:
		return "ac3_start"
	case AC3Revision:
		return "ac3_revision"
	case AC3ValueRemoved:
		return "ac3_value_removed"
	case AC3Complete:
		return "ac3_complete"
	case AC3DeadEnd:
		return "ac3_dead_end"
	case HeuristicSelect:
		return "heuristic_select"
	default:
		return "unknown"
	}
}

// BoardView is a read-only window onto a Board, valid only for the
// duration of one callback invocation — the callback must not retain
// it or mutate the underlying Board.
type BoardView interface {
	Get(row, col int) (int, error)
	N() int
	K() int
	Clues() int
	Empty() int
}

// Data is the payload delivered to a Callback: event type, a read-only
// board view, phase/round numbers, cumulative removal count, and (for
// cell events) the affected position and value.
type Data struct {
	Type         Type
	Board        BoardView
	Phase        int
	Round        int
	CellsRemoved int
	Pos          board.Position
	Value        int
}

// Callback is the synchronous event sink signature: fn(data, userData).
// It must return promptly and must not mutate Data.Board.
type Callback func(data Data, userData any)

// Dispatcher wraps an optional Callback plus its opaque user pointer.
// A Dispatcher with no Callback registered makes Emit a no-op.
type Dispatcher struct {
	callback Callback
	userData any
}

// NewDispatcher builds a Dispatcher around a possibly-nil callback.
func NewDispatcher(cb Callback, userData any) *Dispatcher {
	return &Dispatcher{callback: cb, userData: userData}
}

// Emit invokes the registered callback synchronously, or does nothing
// if none is registered.
func (d *Dispatcher) Emit(data Data) {
	if d == nil || d.callback == nil {
		return
	}
	d.callback(data, d.userData)
}
