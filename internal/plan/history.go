package plan

import "github.com/enesk/study-planner/internal/model"

// History is a bounded in-memory undo/redo stack over weekly plan
// snapshots, used by the weekly planning page. It never persists
// anything itself; callers restore the returned snapshot through the
// WeeklyStore.
type History struct {
	limit  int
	past   [][]model.WeeklyPlan
	future [][]model.WeeklyPlan
}

// NewHistory creates a history keeping at most limit undo states.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 30
	}
	return &History{limit: limit}
}

// Push records the state that existed before a mutation and clears the
// redo stack, matching the usual editor semantics.
func (h *History) Push(before []model.WeeklyPlan) {
	h.past = append(h.past, clonePlans(before))
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.future = nil
}

// Undo exchanges the current state for the most recent past one. The
// second return is false when there is nothing to undo.
func (h *History) Undo(current []model.WeeklyPlan) ([]model.WeeklyPlan, bool) {
	if len(h.past) == 0 {
		return nil, false
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, clonePlans(current))
	return prev, true
}

// Redo exchanges the current state for the most recently undone one.
func (h *History) Redo(current []model.WeeklyPlan) ([]model.WeeklyPlan, bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	next := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, clonePlans(current))
	return next, true
}

// CanUndo reports whether an undo state is available.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo state is available.
func (h *History) CanRedo() bool { return len(h.future) > 0 }
