// Package forced implements the Forced-Cells Registry: per-cell
// provenance (value, classification, generation depth, difficulty
// score) plus the protection policy Phase 3 consults before clearing a
// cell.
package forced

import (
	"github.com/chaLords/sudokugen/board"
	"github.com/chaLords/sudokugen/difficulty"
)

// Entry is one cell's provenance record.
type Entry struct {
	Pos            board.Position
	Value          int
	Classification Classification
	Depth          int
	Score          int
}

// Registry holds at most one active entry per cell.
type Registry struct {
	entries map[board.Position]Entry
	counts  map[Classification]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[board.Position]Entry),
		counts:  make(map[Classification]int),
	}
}

// Register records (or replaces) the entry for pos.
func (r *Registry) Register(pos board.Position, value int, c Classification, depth int) {
	if old, ok := r.entries[pos]; ok {
		r.counts[old.Classification]--
	}
	entry := Entry{Pos: pos, Value: value, Classification: c, Depth: depth, Score: Score(c, depth)}
	r.entries[pos] = entry
	r.counts[c]++
}

// RegisterBacktracked is a convenience wrapper for the common case of
// registering a branch-chosen value.
func (r *Registry) RegisterBacktracked(pos board.Position, value, depth int) {
	r.Register(pos, value, Backtracked, depth)
}

// IsRegistered reports whether pos has an active entry.
func (r *Registry) IsRegistered(pos board.Position) bool {
	_, ok := r.entries[pos]
	return ok
}

// GetInfo returns pos's entry, if any.
func (r *Registry) GetInfo(pos board.Position) (Entry, bool) {
	e, ok := r.entries[pos]
	return e, ok
}

// GetType returns pos's classification, if registered.
func (r *Registry) GetType(pos board.Position) (Classification, bool) {
	e, ok := r.entries[pos]
	if !ok {
		return 0, false
	}
	return e.Classification, true
}

// Unregister removes pos's entry, if any, and adjusts the aggregate
// counts. AC3HB does not use it: it rolls a failed branch back with
// Snapshot/Restore instead.
func (r *Registry) Unregister(pos board.Position) {
	old, ok := r.entries[pos]
	if !ok {
		return
	}
	r.counts[old.Classification]--
	delete(r.entries, pos)
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.entries = make(map[board.Position]Entry)
	r.counts = make(map[Classification]int)
}

// Stats returns the aggregate count per classification.
func (r *Registry) Stats() map[Classification]int {
	out := make(map[Classification]int, len(r.counts))
	for c, n := range r.counts {
		out[c] = n
	}
	return out
}

// Snapshot copies every entry, for a caller (the AC3HB backtracker) that
// needs to roll the registry back to an earlier point alongside a
// ConstraintNetwork domain rollback.
func (r *Registry) Snapshot() map[board.Position]Entry {
	snap := make(map[board.Position]Entry, len(r.entries))
	for pos, e := range r.entries {
		snap[pos] = e
	}
	return snap
}

// Restore replaces the registry's entries from a prior Snapshot and
// recomputes the aggregate counts.
func (r *Registry) Restore(snap map[board.Position]Entry) {
	r.entries = make(map[board.Position]Entry, len(snap))
	r.counts = make(map[Classification]int)
	for pos, e := range snap {
		r.entries[pos] = e
		r.counts[e.Classification]++
	}
}

// protectionSet lists, per difficulty, which classifications Phase 3
// must not clear. Hard protects every classification; Expert — the more
// aggressive tier — does not protect Backtracked, since Expert puzzles
// are allowed to require the solver to guess.
var protectionSet = map[difficulty.Difficulty]map[Classification]bool{
	difficulty.Easy: {
		Propagated:  true,
		Backtracked: true,
	},
	difficulty.Medium: {
		HiddenSingle: true,
		Propagated:   true,
		Backtracked:  true,
	},
	difficulty.Hard: {
		NakedSingle:  true,
		HiddenSingle: true,
		Propagated:   true,
		Backtracked:  true,
	},
	difficulty.Expert: {
		NakedSingle:  true,
		HiddenSingle: true,
		Propagated:   true,
	},
}

// ShouldProtect reports whether Phase 3 must leave pos alone under the
// given difficulty's protection policy. An unregistered cell is never
// protected.
func (r *Registry) ShouldProtect(pos board.Position, d difficulty.Difficulty) bool {
	c, ok := r.GetType(pos)
	if !ok {
		return false
	}
	return protectionSet[d][c]
}

// ProtectionThreshold returns the weakest (lowest-score) classification
// that difficulty d protects, or (0, false) if it protects none — a
// convenience for callers that want a single cutoff rather than a set
// membership test.
func ProtectionThreshold(d difficulty.Difficulty) (Classification, bool) {
	set := protectionSet[d]
	best := Classification(-1)
	found := false
	for c := range set {
		if !found || c < best {
			best = c
			found = true
		}
	}
	return best, found
}
