package resume

// DefaultHistoryLimit bounds the undo stack depth.
const DefaultHistoryLimit = 100

// history keeps two stacks of document snapshots, most-recent-last. The
// past stack is bounded: once full, the oldest snapshot is evicted to admit
// a new one. The future stack is cleared whenever a new mutation is
// recorded, so redo never replays across divergent edits.
type history struct {
	limit  int
	past   []Document
	future []Document
}

func newHistory(limit int) *history {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &history{limit: limit}
}

// record pushes the pre-mutation state and invalidates the redo stack.
func (h *history) record(prev Document) {
	h.past = append(h.past, prev)
	if len(h.past) > h.limit {
		h.past = append(h.past[:0], h.past[1:]...)
	}
	h.future = h.future[:0]
}

// undo trades the current state for the most recent past state. Returns
// false when there is nothing to undo.
func (h *history) undo(current Document) (Document, bool) {
	if len(h.past) == 0 {
		return Document{}, false
	}
	restored := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current)
	return restored, true
}

// redo trades the current state for the most recently undone state.
// Returns false when there is nothing to redo.
func (h *history) redo(current Document) (Document, bool) {
	if len(h.future) == 0 {
		return Document{}, false
	}
	restored := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current)
	if len(h.past) > h.limit {
		h.past = append(h.past[:0], h.past[1:]...)
	}
	return restored, true
}

// clear drops both stacks.
func (h *history) clear() {
	h.past = h.past[:0]
	h.future = h.future[:0]
}
