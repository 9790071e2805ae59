package core

// QA is a recalled question/answer pair returned by MemoryStore.Recall.
type QA struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// MemoryStore defines the durable question/answer memory used to give later
// panel rounds continuity. Implementations can back retrieval with any
// heuristic; the reference implementations use lexical word overlap.
//
// Contract:
//   - Append adds exactly one record per completed decision round; records
//     are never mutated or deleted and storage order is write order.
//   - Recall returns at most limit records ranked by descending relevance,
//     ties broken by insertion order. An empty store, an empty query or a
//     query with no positive-scoring record yields an empty result, not an
//     error.
type MemoryStore interface {
	Append(question, answer string) error
	Recall(query string, limit int) ([]QA, error)
}
