// Package memory provides MemoryStore implementations for durable
// question/answer recall. JSONLStore persists one JSON record per line in an
// append-only file and is the production choice; InMemoryStore keeps records
// in a slice and is intended for tests and demos.
//
// Both stores rank recall results by lexical word overlap between the query
// and each stored question: the score is the size of the intersection of the
// case-insensitive whitespace-delimited token sets. The raw overlap count is
// used as-is, with no normalization by question length or term frequency.
package memory
