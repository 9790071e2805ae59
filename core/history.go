package core

import "sync"

// History is the ordered, append-only record of turns shared across agents
// within one panel session. It strictly grows: no turn is ever removed or
// edited. It is safe for concurrent access, although the pipeline itself is
// strictly sequential.
//
// Contract:
//   - Append never fails and never reorders
//   - Snapshot returns a defensive copy to avoid external mutation
//   - There is no trimming or windowing; bounding history is a caller concern.
type History struct {
	mu    sync.RWMutex
	turns []Turn
}

// NewHistory creates an empty conversation history.
func NewHistory() *History {
	return &History{}
}

// Append adds a turn to the end of the history.
func (h *History) Append(t Turn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = append(h.turns, t)
}

// Snapshot returns a copy of the full turn sequence to prevent callers from
// mutating internal state. The copy is what agents receive as context.
func (h *History) Snapshot() []Turn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	turns := make([]Turn, len(h.turns))
	copy(turns, h.turns)
	return turns
}

// Len returns the number of turns recorded so far.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.turns)
}
