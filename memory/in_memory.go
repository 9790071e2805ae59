package memory

import (
	"sync"

	"github.com/hupe1980/panelmesh/core"
)

// InMemoryStore is a volatile, process-local MemoryStore. It keeps records in
// insertion order and ranks recall with the same word-overlap scoring as
// JSONLStore. Safe for concurrent access; best suited for tests and demos.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []core.QA
}

var _ core.MemoryStore = (*InMemoryStore)(nil)

// NewInMemoryStore constructs an empty in-memory memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Append stores a question/answer pair at the end of the record sequence.
func (s *InMemoryStore) Append(question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, core.QA{Question: question, Answer: answer})
	return nil
}

// Recall ranks all stored records against the query by word overlap.
func (s *InMemoryStore) Recall(query string, limit int) ([]core.QA, error) {
	s.mu.RLock()
	records := make([]core.QA, len(s.records))
	copy(records, s.records)
	s.mu.RUnlock()

	return rank(records, query, limit), nil
}

// Len returns the number of stored records.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
